// Checksum manifest for the data tree.
//
// The manifest records a size and digest for every file under the
// registered directories, so CI can detect fixture drift — a truncated
// binary, a re-zipped archive, a file that went missing — without
// knowing anything about the vendor formats themselves.
package mtdata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

// ManifestName is the manifest filename, stored at the base directory.
const ManifestName = "manifest.json"

// Manifest is the on-disk manifest format.
type Manifest struct {
	Generated int64   `json:"generated"` // Unix milliseconds
	Algorithm int     `json:"algorithm"` // AlgXXHash3, AlgFNV1a, AlgBlake2b
	Files     []Entry `json:"files"`
}

// Entry records one file. Path is slash-separated and relative to the
// base directory, so manifests travel between hosts and platforms.
type Entry struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	Sum  string `json:"sum"`
}

// Mismatch describes one file that deviates from the manifest.
type Mismatch struct {
	Path   string
	Reason string
}

// WriteManifest digests every file under the registered directories and
// writes the manifest at the base. alg selects the digest algorithm,
// AlgXXHash3 when zero. Directories that do not exist yet are skipped;
// Verify is the tool for flagging those.
func (r *Registry) WriteManifest(alg int) error {
	if alg == 0 {
		alg = AlgXXHash3
	}
	if newDigest(alg) == nil {
		return fmt.Errorf("%w: unknown digest algorithm %d", ErrBadManifest, alg)
	}

	m := Manifest{
		Generated: time.Now().UnixMilli(),
		Algorithm: alg,
	}

	for _, f := range families {
		dir := r.dirs[f.Key]
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if d.IsDir() {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return err
			}
			sum, err := digestFile(p, alg)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(r.base, p)
			if err != nil {
				return err
			}
			m.Files = append(m.Files, Entry{
				Path: filepath.ToSlash(rel),
				Size: info.Size(),
				Sum:  sum,
			})
			return nil
		})
		if err != nil {
			return fmt.Errorf("manifest %s: %w", f.Key, err)
		}
	}

	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.base, ManifestName), append(buf, '\n'), 0o644)
}

// CheckManifest re-digests every manifest entry against the tree. A
// non-nil error means the manifest itself could not be read or parsed;
// fixture drift comes back as Mismatch entries with a nil error.
func (r *Registry) CheckManifest() ([]Mismatch, error) {
	buf, err := os.ReadFile(filepath.Join(r.base, ManifestName))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(buf, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	if newDigest(m.Algorithm) == nil {
		return nil, fmt.Errorf("%w: unknown digest algorithm %d", ErrBadManifest, m.Algorithm)
	}

	var bad []Mismatch
	for _, e := range m.Files {
		p := filepath.Join(r.base, filepath.FromSlash(e.Path))

		info, err := os.Stat(p)
		if err != nil {
			bad = append(bad, Mismatch{e.Path, "missing"})
			continue
		}
		if info.Size() != e.Size {
			bad = append(bad, Mismatch{e.Path, fmt.Sprintf("size %d, want %d", info.Size(), e.Size)})
			continue
		}

		sum, err := digestFile(p, m.Algorithm)
		if err != nil {
			bad = append(bad, Mismatch{e.Path, err.Error()})
			continue
		}
		if sum != e.Sum {
			bad = append(bad, Mismatch{e.Path, ErrChecksum.Error()})
		}
	}
	return bad, nil
}
