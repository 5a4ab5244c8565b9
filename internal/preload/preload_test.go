package preload

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.jpg"))
	writeFile(t, filepath.Join(dir, "a.png"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "sub", "c.gif"))

	preloads, err := Scan(ScanConfig{Dir: dir})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(preloads) != 3 {
		t.Fatalf("expected 3 preloads, got %d", len(preloads))
	}

	// Deterministic order by path.
	wantBases := []string{"a.png", "b.jpg", "c.gif"}
	for i, want := range wantBases {
		if got := filepath.Base(preloads[i].Path); got != want {
			t.Errorf("preload %d = %q, want %q", i, got, want)
		}
	}

	if preloads[0].MediaType != "image/png" {
		t.Errorf("media type = %q, want image/png", preloads[0].MediaType)
	}
}

func TestScanExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.png"))
	writeFile(t, filepath.Join(dir, "drafts", "skip.png"))

	preloads, err := Scan(ScanConfig{
		Dir:     dir,
		Exclude: []string{"drafts/**"},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(preloads) != 1 || filepath.Base(preloads[0].Path) != "keep.png" {
		t.Fatalf("expected only keep.png, got %v", preloads)
	}
}

func TestScanIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"))
	writeFile(t, filepath.Join(dir, "b.jpg"))

	preloads, err := Scan(ScanConfig{
		Dir:     dir,
		Include: []string{"**/*.png", "*.png"},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(preloads) != 1 || filepath.Base(preloads[0].Path) != "a.png" {
		t.Fatalf("expected only a.png, got %v", preloads)
	}
}

func TestScanMissingDir(t *testing.T) {
	preloads, err := Scan(ScanConfig{Dir: filepath.Join(t.TempDir(), "nope")})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(preloads) != 0 {
		t.Fatalf("expected empty set for missing dir, got %d", len(preloads))
	}
}

func TestMatchFilters(t *testing.T) {
	if !MatchesInclude("any/path.png", nil) {
		t.Error("empty include patterns should match everything")
	}
	if MatchesExclude("any/path.png", nil) {
		t.Error("empty exclude patterns should match nothing")
	}
	if !MatchesExclude("drafts/a.png", []string{"drafts/**"}) {
		t.Error("expected drafts/** to exclude drafts/a.png")
	}
	if !MatchesInclude("deep/nested/a.png", []string{"**/*.png"}) {
		t.Error("expected **/*.png to include nested files")
	}
}
