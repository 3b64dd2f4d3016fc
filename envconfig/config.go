package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// Set via RAYLIB_DEBUG in the environment
	Debug bool
	// Set via RAYLIB_TRACE in the environment
	Trace bool
	// Set via RAYLIB_LIBRARY in the environment
	Library string
	// Set via RAYLIB_LIBRARY_PATH in the environment
	LibraryPath []string
	// Set via RAYLIB_LOG_LEVEL in the environment. Negative when unset.
	LogLevel int
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"RAYLIB_DEBUG":        {"RAYLIB_DEBUG", Debug, "Show additional debug information (e.g. RAYLIB_DEBUG=1)"},
		"RAYLIB_TRACE":        {"RAYLIB_TRACE", Trace, "Log every symbol bind and callback transition"},
		"RAYLIB_LIBRARY":      {"RAYLIB_LIBRARY", Library, "Path to the raylib shared library"},
		"RAYLIB_LIBRARY_PATH": {"RAYLIB_LIBRARY_PATH", LibraryPath, "Directories searched for the raylib shared library"},
		"RAYLIB_LOG_LEVEL":    {"RAYLIB_LOG_LEVEL", LogLevel, "Native trace log level applied after load (all, trace, debug, info, warning, error, fatal, none)"},
		"RAYLIB_CONFIG":       {"RAYLIB_CONFIG", ConfigPath(), "Path to the TOML config file"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value. Unset or empty variables fall back
// to the config file.
func clean(key string) string {
	if v := strings.Trim(os.Getenv(key), "\"' "); v != "" {
		return v
	}
	return GetConfigValue(key)
}

// logLevels maps RAYLIB_LOG_LEVEL names onto raylib's TraceLogLevel values.
var logLevels = map[string]int{
	"all":     0,
	"trace":   1,
	"debug":   2,
	"info":    3,
	"warning": 4,
	"warn":    4,
	"error":   5,
	"fatal":   6,
	"none":    7,
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	ReloadConfigFile()

	Debug = false
	if debug := clean("RAYLIB_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	Trace = false
	if trace := clean("RAYLIB_TRACE"); trace != "" {
		d, err := strconv.ParseBool(trace)
		if err == nil {
			Trace = d
		}
	}

	Library = clean("RAYLIB_LIBRARY")

	LibraryPath = nil
	if paths := clean("RAYLIB_LIBRARY_PATH"); paths != "" {
		for _, p := range filepath.SplitList(paths) {
			if p = strings.TrimSpace(p); p != "" {
				LibraryPath = append(LibraryPath, p)
			}
		}
	}

	LogLevel = -1
	if level := clean("RAYLIB_LOG_LEVEL"); level != "" {
		if l, ok := logLevels[strings.ToLower(level)]; ok {
			LogLevel = l
		} else if l, err := strconv.Atoi(level); err == nil && l >= 0 && l <= 7 {
			LogLevel = l
		} else {
			slog.Error("invalid setting, ignoring", "RAYLIB_LOG_LEVEL", level)
		}
	}
}
