// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/tinct-ui/tinct/constant"
	"github.com/tinct-ui/tinct/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "TINCT_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths elsewhere.
// Direct override: the resolution can be explicitly specified via the TINCT_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Tinct))
}

// Cache resolves the absolute path to the application's persistent cache directory.
// Compliance: adheres to the XDG_CACHE_HOME specification or platform-specific equivalent.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Tinct))
}

// Logs resolves the absolute path to the directory used for application diagnostic and audit logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Themes resolves the absolute path to the directory holding theme documents.
func Themes() string {
	return ensureDir(filepath.Join(Config(), "themes"))
}

// Mappings resolves the absolute path to the directory holding computed mapping documents.
func Mappings() string {
	return ensureDir(filepath.Join(Config(), "mappings"))
}

// Documents resolves the absolute path to the parsed-document cache file.
func Documents() string {
	return filepath.Join(Cache(), "documents.json")
}

// Temp resolves a unique, volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Tinct))
}
