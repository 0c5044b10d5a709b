// Package utils provides small filesystem helpers shared across the library.
package utils

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// homeDirEnv overrides the default cache root, mainly for tests.
const homeDirEnv = "TORCHEEG_HOME"

// CacheRoot returns the directory under which generated artifacts
// (split information, downloads) are placed. Defaults to ~/.torcheeg.
func CacheRoot() string {
	if root := os.Getenv(homeDirEnv); root != "" {
		return root
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".torcheeg"
	}
	return filepath.Join(home, ".torcheeg")
}

// RandomDirPath returns a fresh, presumably unused directory path under the
// cache root. The directory is not created; the name combines a timestamp
// with a random suffix so concurrent runs do not collide in practice, but
// no collision check is performed.
func RandomDirPath(dirPrefix string) string {
	name := dirPrefix + "_" + time.Now().Format("2006_01_02_15_04_05") + "_" + uuid.NewString()[:8]
	return filepath.Join(CacheRoot(), name)
}
