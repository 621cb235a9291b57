// Digest algorithms for manifest entries.
//
// Every manifest sum is a 16 hex character digest of the file content.
// Three algorithms are supported, selectable when the manifest is
// written; CheckManifest reads the choice back from the manifest.
package mtdata

import (
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"os"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Digest algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// newDigest returns a 64-bit hasher for the algorithm, or nil if the
// algorithm is unknown.
func newDigest(alg int) hash.Hash {
	switch alg {
	case AlgXXHash3:
		return xxh3.New()
	case AlgFNV1a:
		return fnv.New64a()
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		return h
	default:
		return nil
	}
}

// digestFile streams the file at path through the selected algorithm
// and returns the 16 hex character digest.
func digestFile(path string, alg int) (string, error) {
	h := newDigest(alg)
	if h == nil {
		return "", fmt.Errorf("%w: unknown digest algorithm %d", ErrBadManifest, alg)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum(nil)), nil
}
