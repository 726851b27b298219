package config

import (
	"os"
	"path/filepath"
)

// FindEnvFile looks for name (default .env) in the working directory and its
// parents. The search ends at the module root, the first directory holding a
// go.mod, so an env file above the checkout is never picked up.
func FindEnvFile(name string) (string, error) {
	if name == "" {
		name = ".env"
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if path := filepath.Join(dir, name); isFile(path) {
			return path, nil
		}
		if isFile(filepath.Join(dir, "go.mod")) {
			return "", os.ErrNotExist
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
