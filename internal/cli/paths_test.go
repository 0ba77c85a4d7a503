package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", "knapsack"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, "knapsack"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestWriteFile(t *testing.T) {
	var buf syncBuffer
	if err := writeFile(&buf, []byte("digraph {}"), ""); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "digraph {}" {
		t.Errorf("stdout = %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "tree.dot")
	if err := writeFile(&buf, []byte("x"), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "x" {
		t.Errorf("file = %q, %v", data, err)
	}
}
