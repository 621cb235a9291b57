// Data-tree verification.
//
// The registry never checks the filesystem on its own (paths are pure
// arithmetic), so existence checking is an explicit call. Run Verify at
// startup for an eager, clearly-attributed error instead of a
// file-not-found deep inside a consuming test.
package mtdata

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Verify checks that every registered directory exists and holds at
// least one entry, and that every declared archive still on disk is a
// readable zip. All families are checked before reporting; the returned
// error joins every problem found.
func (r *Registry) Verify() error {
	var errs []error
	for _, f := range families {
		dir := r.dirs[f.Key]

		entries, err := os.ReadDir(dir)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %s", ErrMissingDir, f.Key, dir))
			continue
		}
		if len(entries) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s: %s", ErrEmptyDir, f.Key, dir))
			continue
		}

		if f.Archive == "" {
			continue
		}
		archive := filepath.Join(dir, f.Archive)
		if _, err := os.Stat(archive); err != nil {
			// Already extracted and removed; the loose files above
			// are all that matters.
			continue
		}
		if err := checkArchive(archive); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Key, err))
		}
	}
	return errors.Join(errs...)
}

// checkArchive reports whether the archive opens as a zip and lists at
// least one entry. Contents are not extracted or digested here.
func checkArchive(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadArchive, filepath.Base(path), err)
	}
	defer zr.Close()

	if len(zr.File) == 0 {
		return fmt.Errorf("%w: %s: no entries", ErrBadArchive, filepath.Base(path))
	}
	return nil
}
