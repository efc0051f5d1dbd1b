// Package config holds filesystem helpers for configured paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves the shell-style shorthands allowed in configured
// file paths: a leading ~ becomes the user's home directory, and $VAR
// references are substituted from the environment. A shorthand that
// cannot be resolved is left in place.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	} else if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}

	return os.ExpandEnv(path)
}
