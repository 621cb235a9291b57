// Registry construction and path resolution.
//
// The families table is the single source of truth: the lookup map,
// Keys, Enumerate, and the direct-access fields on Registry are all
// derived from it at construction. Adding a data family is one table
// row plus one field — nothing else to keep in sync.
package mtdata

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// BaseEnv overrides the base directory used by Default.
const BaseEnv = "MTDATA_BASE"

// Family describes one vendor or file-format grouping of sample data.
type Family struct {
	Key     string // lookup key, e.g. "zen"
	Rel     string // subdirectory relative to the base, slash-separated
	Archive string // zip archive inside the directory, "" if the family ships loose files
}

// families registers every supported data family. Table order is the
// order Keys and Enumerate report. The miniseed archive keeps its
// historical name rather than the {key}_test_data.zip convention.
var families = []Family{
	{"nims", "nims", "nims_test_data.zip"},
	{"zen", "zen", "zen_test_data.zip"},
	{"metronix", "metronix", "metronix_test_data.zip"},
	{"phoenix", "phoenix", "phoenix_test_data.zip"},
	{"phoenix_mtu", "phoenix_mtu", "phoenix_mtu_test_data.zip"},
	{"lemi424", "lemi/424", "lemi424_test_data.zip"},
	{"lemi423", "lemi/423", "lemi423_test_data.zip"},
	{"miniseed", "miniseed", "test_stream.zip"},
	{"usgs_ascii", "usgs_ascii", "usgs_ascii_test_data.zip"},
	{"stationxml", "stationxml", ""},
	{"calibration", "calibration_files", ""},
	{"mth5", "mth5", ""},
}

// Registry resolves family keys to absolute directories under a fixed
// base. It is read-only after New returns and safe for concurrent use.
type Registry struct {
	base string
	dirs map[string]string

	// Direct-access paths, one per family. Each equals the Resolve
	// result for the matching key, for callers who know the family at
	// write time and prefer a field reference over a string lookup.
	NIMS        string
	ZEN         string
	Metronix    string
	Phoenix     string
	PhoenixMTU  string
	LEMI424     string
	LEMI423     string
	MiniSEED    string
	USGSASCII   string
	StationXML  string
	Calibration string
	MTH5        string
}

// New builds a registry over base. No filesystem access happens here;
// the paths are computed, not checked. Use Verify to confirm the tree
// is actually populated.
func New(base string) *Registry {
	r := &Registry{
		base: base,
		dirs: make(map[string]string, len(families)),
	}
	for _, f := range families {
		r.dirs[f.Key] = filepath.Join(base, filepath.FromSlash(f.Rel))
	}

	r.NIMS = r.dirs["nims"]
	r.ZEN = r.dirs["zen"]
	r.Metronix = r.dirs["metronix"]
	r.Phoenix = r.dirs["phoenix"]
	r.PhoenixMTU = r.dirs["phoenix_mtu"]
	r.LEMI424 = r.dirs["lemi424"]
	r.LEMI423 = r.dirs["lemi423"]
	r.MiniSEED = r.dirs["miniseed"]
	r.USGSASCII = r.dirs["usgs_ascii"]
	r.StationXML = r.dirs["stationxml"]
	r.Calibration = r.dirs["calibration"]
	r.MTH5 = r.dirs["mth5"]

	return r
}

// Default returns a registry over the data tree shipped with this
// package. MTDATA_BASE overrides the location, which lets test
// environments point at a relocated or trimmed tree.
func Default() *Registry {
	if base := os.Getenv(BaseEnv); base != "" {
		return New(base)
	}
	_, file, _, _ := runtime.Caller(0)
	return New(filepath.Join(filepath.Dir(file), "data"))
}

// Base returns the base directory the registry was built over.
func (r *Registry) Base() string {
	return r.base
}

// Resolve returns the directory registered for key. Unknown keys fail
// with ErrUnknownKey — a configuration error on the caller's side, not
// a transient condition.
func (r *Registry) Resolve(key string) (string, error) {
	dir, ok := r.dirs[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return dir, nil
}

// family returns the table row for key.
func (r *Registry) family(key string) (Family, bool) {
	for _, f := range families {
		if f.Key == key {
			return f, true
		}
	}
	return Family{}, false
}
