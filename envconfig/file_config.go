package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config represents the TOML configuration structure
type Config struct {
	Library struct {
		Path        string   `toml:"path"`
		SearchPaths []string `toml:"search_paths"`
	} `toml:"library"`

	Logging struct {
		Debug bool   `toml:"debug"`
		Trace bool   `toml:"trace"`
		Level string `toml:"level"`
	} `toml:"logging"`
}

var (
	configOnce sync.Once
	config     *Config
	configPath string
)

// GetConfigPaths returns the list of possible config file paths for the current OS
func GetConfigPaths() []string {
	if path := strings.Trim(os.Getenv("RAYLIB_CONFIG"), "\"' "); path != "" {
		return []string{path}
	}

	var paths []string

	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			paths = append(paths, filepath.Join(appData, "raylib", "config.toml"))
		}
		if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
			paths = append(paths, filepath.Join(userProfile, ".raylib", "config.toml"))
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			paths = append(paths,
				filepath.Join(home, "Library", "Application Support", "raylib", "config.toml"),
				filepath.Join(home, ".config", "raylib", "config.toml"),
				filepath.Join(home, ".raylib", "config.toml"),
			)
		}
	default: // Linux and others
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			paths = append(paths, filepath.Join(xdgConfig, "raylib", "config.toml"))
		}
		home, err := os.UserHomeDir()
		if err == nil {
			paths = append(paths,
				filepath.Join(home, ".config", "raylib", "config.toml"),
				filepath.Join(home, ".raylib", "config.toml"),
			)
		}
	}

	return paths
}

// loadConfigFile loads the first available configuration file
func loadConfigFile() (*Config, string, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			var cfg Config
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, "", fmt.Errorf("error parsing config file %s: %w", path, err)
			}
			return &cfg, path, nil
		}
	}
	return nil, "", nil
}

// ReloadConfigFile forgets the cached config file so the next lookup reads
// it again.
func ReloadConfigFile() {
	configOnce = sync.Once{}
	config, configPath = nil, ""
}

// ConfigPath returns the path of the config file in use, or "" if none was
// found.
func ConfigPath() string {
	GetConfigValue("")
	return configPath
}

// GetConfigValue returns the value for a given environment variable key from the config file
func GetConfigValue(key string) string {
	configOnce.Do(func() {
		var err error
		config, configPath, err = loadConfigFile()
		if err != nil {
			slog.Warn("failed to load config file", "error", err)
		} else if config != nil {
			slog.Debug("loaded config file", "path", configPath)
		}
	})

	if config == nil {
		return ""
	}

	switch key {
	case "RAYLIB_LIBRARY":
		return config.Library.Path
	case "RAYLIB_LIBRARY_PATH":
		return strings.Join(config.Library.SearchPaths, string(filepath.ListSeparator))
	case "RAYLIB_DEBUG":
		if config.Logging.Debug {
			return strconv.FormatBool(config.Logging.Debug)
		}
	case "RAYLIB_TRACE":
		if config.Logging.Trace {
			return strconv.FormatBool(config.Logging.Trace)
		}
	case "RAYLIB_LOG_LEVEL":
		return config.Logging.Level
	}

	return ""
}

// GenerateExampleConfig returns a commented example TOML configuration
func GenerateExampleConfig() string {
	return `# raylib bindings configuration file
# Environment variables take precedence over every value here.

[library]
# Path to the raylib shared library (RAYLIB_LIBRARY)
path = "/usr/local/lib/libraylib.so"
# Directories searched for the library when path is unset (RAYLIB_LIBRARY_PATH)
search_paths = ["/usr/local/lib", "/opt/raylib/lib"]

[logging]
# Enable debug logging (default: false)
debug = false
# Log every symbol bind and callback transition (default: false)
trace = false
# Native trace log level: all, trace, debug, info, warning, error, fatal, none
level = "warning"
`
}
