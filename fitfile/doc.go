// Package fitfile reads track points from Garmin FIT activity files.
package fitfile
