package mtdata

import (
	"os"
	"path/filepath"
	"testing"
)

func testFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.dat")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDigestStable(t *testing.T) {
	path := testFile(t, "magnetotelluric time series")

	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		a, err := digestFile(path, alg)
		if err != nil {
			t.Fatalf("alg %d: %v", alg, err)
		}
		b, err := digestFile(path, alg)
		if err != nil {
			t.Fatalf("alg %d second call: %v", alg, err)
		}
		if a != b {
			t.Errorf("alg %d: %q then %q", alg, a, b)
		}
		if len(a) != 16 {
			t.Errorf("alg %d: digest %q is %d chars, want 16", alg, a, len(a))
		}
	}
}

func TestDigestAlgorithmsDistinct(t *testing.T) {
	path := testFile(t, "magnetotelluric time series")

	sums := make(map[string]int)
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		sum, err := digestFile(path, alg)
		if err != nil {
			t.Fatal(err)
		}
		if prev, ok := sums[sum]; ok {
			t.Errorf("alg %d collides with alg %d: %q", alg, prev, sum)
		}
		sums[sum] = alg
	}
}

func TestDigestContentSensitive(t *testing.T) {
	a, err := digestFile(testFile(t, "recording a"), AlgXXHash3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := digestFile(testFile(t, "recording b"), AlgXXHash3)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("different content, same digest %q", a)
	}
}

func TestDigestUnknownAlgorithm(t *testing.T) {
	if _, err := digestFile(testFile(t, "x"), 99); err == nil {
		t.Fatal("digestFile(alg=99) = nil, want error")
	}
}

func TestDigestMissingFile(t *testing.T) {
	if _, err := digestFile(filepath.Join(t.TempDir(), "absent"), AlgXXHash3); err == nil {
		t.Fatal("digestFile(missing) = nil, want error")
	}
}
