package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "ASSETNORM_CONFIG"
	// ConfigFileName is the config file name looked up in the working directory
	ConfigFileName = "assetnorm.yaml"
	// ConfigDirName is the config directory name under XDG and /etc
	ConfigDirName = "assetnorm"
)

// configExtensions are tried in this order in every search location.
// LoadFromPath decodes .toml as TOML and the rest as YAML.
var configExtensions = []string{".yaml", ".yml", ".toml"}

// SearchPaths returns every config file location in priority order:
//
//  1. $ASSETNORM_CONFIG, when set
//  2. ./assetnorm.{yaml,yml,toml}
//  3. $XDG_CONFIG_HOME/assetnorm/config.{yaml,yml,toml}
//  4. ~/.config/assetnorm/config.{yaml,yml,toml}
//  5. /etc/assetnorm/config.{yaml,yml,toml}
func SearchPaths() []string {
	var paths []string
	if path := os.Getenv(EnvConfigPath); path != "" {
		paths = append(paths, path)
	}

	paths = append(paths, withExtensions(strings.TrimSuffix(ConfigFileName, filepath.Ext(ConfigFileName)))...)
	for _, dir := range configDirs() {
		paths = append(paths, withExtensions(filepath.Join(dir, "config"))...)
	}
	return paths
}

// FindConfigPath returns the first existing file from SearchPaths as an
// absolute path, or empty string if none exists
func FindConfigPath() string {
	for _, path := range SearchPaths() {
		if !fileExists(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

// DefaultConfigPath returns where a new config file in format ("yaml" or
// "toml") should go: the per-user config directory when one is known,
// otherwise the working directory
func DefaultConfigPath(format string) string {
	ext := ".yaml"
	if strings.EqualFold(format, "toml") {
		ext = ".toml"
	}

	if dirs := configDirs(); len(dirs) > 1 {
		return filepath.Join(dirs[0], "config"+ext)
	}
	return strings.TrimSuffix(ConfigFileName, filepath.Ext(ConfigFileName)) + ext
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir(configPath string) error {
	dir := filepath.Dir(configPath)
	return os.MkdirAll(dir, 0755)
}

// configDirs lists the user directories first, then the system one
func configDirs() []string {
	var dirs []string
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		dirs = append(dirs, filepath.Join(xdgHome, ConfigDirName))
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", ConfigDirName))
	}
	return append(dirs, filepath.Join("/etc", ConfigDirName))
}

func withExtensions(base string) []string {
	paths := make([]string, 0, len(configExtensions))
	for _, ext := range configExtensions {
		paths = append(paths, base+ext)
	}
	return paths
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
