package mtdata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestWriteCheckClean(t *testing.T) {
	r := populatedRegistry(t)

	if err := r.WriteManifest(0); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	if _, err := os.Stat(filepath.Join(r.Base(), ManifestName)); err != nil {
		t.Fatalf("manifest file: %v", err)
	}

	bad, err := r.CheckManifest()
	if err != nil {
		t.Fatalf("CheckManifest: %v", err)
	}
	if len(bad) != 0 {
		t.Errorf("clean tree reported %d mismatches: %v", len(bad), bad)
	}
}

func TestManifestDetectsTamper(t *testing.T) {
	r := populatedRegistry(t)
	if err := r.WriteManifest(0); err != nil {
		t.Fatal(err)
	}

	// Same size, different bytes: only the digest can catch this.
	target := filepath.Join(r.Calibration, "sample.dat")
	orig, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	tampered := make([]byte, len(orig))
	for i := range tampered {
		tampered[i] = orig[i] ^ 0xFF
	}
	if err := os.WriteFile(target, tampered, 0o644); err != nil {
		t.Fatal(err)
	}

	bad, err := r.CheckManifest()
	if err != nil {
		t.Fatalf("CheckManifest: %v", err)
	}
	if len(bad) != 1 {
		t.Fatalf("mismatches = %v, want exactly one", bad)
	}
	if bad[0].Path != "calibration_files/sample.dat" {
		t.Errorf("mismatch path = %q", bad[0].Path)
	}
	if bad[0].Reason != ErrChecksum.Error() {
		t.Errorf("mismatch reason = %q", bad[0].Reason)
	}
}

func TestManifestDetectsMissingFile(t *testing.T) {
	r := populatedRegistry(t)
	if err := r.WriteManifest(0); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(r.StationXML, "sample.dat")); err != nil {
		t.Fatal(err)
	}

	bad, err := r.CheckManifest()
	if err != nil {
		t.Fatal(err)
	}
	if len(bad) != 1 || bad[0].Reason != "missing" {
		t.Errorf("mismatches = %v, want one missing entry", bad)
	}
}

func TestManifestDetectsResize(t *testing.T) {
	r := populatedRegistry(t)
	if err := r.WriteManifest(0); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(r.MTH5, "sample.dat")
	if err := os.WriteFile(target, []byte("truncated payload of another length"), 0o644); err != nil {
		t.Fatal(err)
	}

	bad, err := r.CheckManifest()
	if err != nil {
		t.Fatal(err)
	}
	if len(bad) != 1 {
		t.Fatalf("mismatches = %v, want exactly one", bad)
	}
}

func TestManifestCorrupt(t *testing.T) {
	r := populatedRegistry(t)
	if err := os.WriteFile(filepath.Join(r.Base(), ManifestName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := r.CheckManifest()
	if !errors.Is(err, ErrBadManifest) {
		t.Fatalf("CheckManifest = %v, want ErrBadManifest", err)
	}
}

func TestManifestAbsent(t *testing.T) {
	r := populatedRegistry(t)
	if _, err := r.CheckManifest(); err == nil {
		t.Fatal("CheckManifest with no manifest = nil, want error")
	}
}

func TestManifestUnknownAlgorithm(t *testing.T) {
	r := populatedRegistry(t)
	if err := r.WriteManifest(99); !errors.Is(err, ErrBadManifest) {
		t.Fatalf("WriteManifest(99) = %v, want ErrBadManifest", err)
	}
}

func TestManifestAlgorithms(t *testing.T) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		r := populatedRegistry(t)
		if err := r.WriteManifest(alg); err != nil {
			t.Fatalf("WriteManifest(%d): %v", alg, err)
		}
		bad, err := r.CheckManifest()
		if err != nil {
			t.Fatalf("CheckManifest(%d): %v", alg, err)
		}
		if len(bad) != 0 {
			t.Errorf("alg %d: clean tree reported %v", alg, bad)
		}
	}
}
