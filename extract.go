// Lazy archive extraction.
//
// Families that ship their files zipped are unpacked in place the first
// time Path is asked for them. Extraction is idempotent — entries that
// already exist on disk are skipped — so repeated calls, and calls
// racing from parallel test processes, never trip over each other. An
// exclusive flock on the archive serialises extractors across
// processes, and os.Root confines every write to the family directory.
package mtdata

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Path returns the directory for key, extracting the family's archive
// first if one is declared and present on disk. Families without an
// archive, and families whose archive has already been removed after
// extraction, return their directory as-is.
func (r *Registry) Path(key string) (string, error) {
	f, ok := r.family(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	dir := r.dirs[key]
	if f.Archive == "" {
		return dir, nil
	}

	archive := filepath.Join(dir, f.Archive)
	if _, err := os.Stat(archive); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Nothing to unpack; the directory may already hold the
			// loose files.
			return dir, nil
		}
		return "", err
	}

	if err := extract(dir, f.Archive); err != nil {
		return "", fmt.Errorf("extract %s: %w", f.Archive, err)
	}
	return dir, nil
}

// extract unpacks dir/name into dir. The flock is held on the archive
// file itself for the whole extraction, so two processes unpacking the
// same family run one after the other and the skip-existing check in
// extractEntry sees a consistent tree.
func extract(dir, name string) error {
	archive := filepath.Join(dir, name)

	handle, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer handle.Close()

	lock := &fileLock{f: handle}
	if err := lock.Lock(LockExclusive); err != nil {
		return err
	}
	defer lock.Unlock()

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArchive, err)
	}
	defer zr.Close()
	zr.RegisterDecompressor(zip.Deflate, flate.NewReader)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return err
	}
	defer root.Close()

	for _, f := range zr.File {
		if err := extractEntry(root, f); err != nil {
			return err
		}
	}
	return nil
}

// extractEntry writes one archive entry inside root. Entries already on
// disk are left untouched.
func extractEntry(root *os.Root, f *zip.File) error {
	rel := strings.TrimSuffix(f.Name, "/")
	if !fs.ValidPath(rel) {
		return fmt.Errorf("%w: %q", ErrUnsafePath, f.Name)
	}
	rel = filepath.FromSlash(rel)

	if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
		return root.MkdirAll(rel, 0o755)
	}

	if parent := filepath.Dir(rel); parent != "." {
		if err := root.MkdirAll(parent, 0o755); err != nil {
			return err
		}
	}

	if _, err := root.Stat(rel); err == nil {
		return nil
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadArchive, f.Name, err)
	}
	defer src.Close()

	dst, err := root.Create(rel)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("%w: %s: %v", ErrBadArchive, f.Name, err)
	}
	return dst.Close()
}
