// Package metadata reads capture timestamps and reads/writes GPS
// positions in photo files and their sidecars.
//
// Three adapter families cover the supported targets:
//
//   - Embedded EXIF (.jpg, .jpeg, .tif, .tiff): timestamps and
//     existing positions are read from the EXIF block; positions are
//     written through an exiftool subprocess.
//   - Generic XMP sidecars (.xmp, and RAW files addressed through
//     their <file>.<ext>.xmp sidecar): read and written in place. A
//     missing sidecar is created with a minimal document.
//   - darktable sidecars: recognized by the darktable XML namespace.
//     Writes patch the GPS attributes of the existing rdf:Description
//     and leave every other byte of the document alone, so the edit
//     history darktable keeps in the sidecar survives. A missing
//     darktable sidecar is never created; darktable owns sidecar
//     creation.
//
// Registry.ForFile picks the family for a target path.
package metadata
