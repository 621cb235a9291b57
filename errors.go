// Package mtdata locates the magnetotelluric sample-data tree shipped
// with this repository. Each supported instrument or file-format family
// (NIMS, ZEN, Metronix, Phoenix, LEMI, MiniSEED, USGS ASCII, ...) lives
// in its own subdirectory of a single base directory, and most families
// ship their files inside a zip archive that is extracted in place on
// first access.
//
// A Registry is an immutable view over one base directory. It is built
// once, performs no I/O at construction, and is safe for concurrent use.
// Paths describe where data should be; whether the files are actually
// present is checked separately by Verify and the checksum manifest.
package mtdata

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to
// distinguish configuration mistakes (ErrUnknownKey) from fixture-tree
// damage (ErrMissingDir, ErrEmptyDir, ErrBadArchive, ErrBadManifest).
var (
	ErrUnknownKey  = errors.New("unknown data family")
	ErrMissingDir  = errors.New("data directory missing")
	ErrEmptyDir    = errors.New("data directory empty")
	ErrBadArchive  = errors.New("invalid zip archive")
	ErrUnsafePath  = errors.New("archive entry escapes data directory")
	ErrChecksum    = errors.New("checksum mismatch")
	ErrBadManifest = errors.New("corrupt manifest")
)
