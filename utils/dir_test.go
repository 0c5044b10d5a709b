package utils

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRandomDirPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TORCHEEG_HOME", root)

	p1 := RandomDirPath("model_selection")
	p2 := RandomDirPath("model_selection")

	if p1 == p2 {
		t.Errorf("RandomDirPath returned the same path twice: %s", p1)
	}
	for _, p := range []string{p1, p2} {
		if filepath.Dir(p) != root {
			t.Errorf("path %s not under cache root %s", p, root)
		}
		if !strings.HasPrefix(filepath.Base(p), "model_selection_") {
			t.Errorf("path %s missing dir prefix", p)
		}
	}
}

func TestCacheRootFallsBackToHome(t *testing.T) {
	t.Setenv("TORCHEEG_HOME", "")

	root := CacheRoot()
	if !strings.HasSuffix(root, ".torcheeg") {
		t.Errorf("CacheRoot() = %s, want a .torcheeg directory", root)
	}
}
