// Package match implements the track-to-timestamp matching engine.
//
// Given an immutable track.Store and a query timestamp, Resolve decides
// between an exact hit, linear interpolation between the two bracketing
// samples, and a typed rejection. The engine is pure and stateless: the
// same store and query always produce the same result, and concurrent
// calls are safe.
//
// # Policy
//
// A query within one second of a stored sample, inside track coverage,
// resolves to that sample (ExactFix). A query outside the track's time
// coverage is rejected (OutOfRange) no matter how close it is to the
// first or last sample: the engine interpolates between two real
// samples and never extrapolates past the ends. A query whose
// bracketing samples are further away than the tolerance on either side
// is rejected (GapTooLarge) rather than bridged.
//
// # Limitations
//
// Longitude is interpolated linearly. A track segment crossing the
// antimeridian interpolates the long way around instead of the shortest
// arc, so position accuracy near +/-180 degrees is poor. Pole-adjacent
// segments share the same caveat.
package match
