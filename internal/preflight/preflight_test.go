package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"beatinfo/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_Empty(t *testing.T) {
	if result := CheckDirectoryAccess("test", ""); result.Passed || result.Detail != "not configured" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRunAll(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CustomSongsDir = filepath.Join(base, "songs")
	cfg.Paths.CustomWIPSongsDir = filepath.Join(base, "wip")
	cfg.Paths.LockDir = filepath.Join(base, "locks")
	if err := os.MkdirAll(cfg.Paths.CustomSongsDir, 0o755); err != nil {
		t.Fatal(err)
	}

	results := RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("songs dir should pass: %s", results[0].Detail)
	}
	if results[1].Passed || results[2].Passed {
		t.Fatalf("missing directories should fail: %+v", results[1:])
	}

	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
