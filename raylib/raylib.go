// Package raylib binds the raylib C library.
//
// The shared library is opened at run time, so building this package needs
// neither a C toolchain nor raylib's headers. Call Load before any other
// function; until then every binding panics with a message naming the
// function that was called.
//
// Every exported function is a synchronous call into the native library on
// the calling goroutine's OS thread. raylib expects window, drawing and input
// calls to come from the thread that called InitWindow, so programs usually
// call runtime.LockOSThread from an init function in package main.
//
// Functions whose native form takes strings, buffers or output pointers go
// through small adapters: strings are copied into a pinned NUL-terminated
// buffer for the duration of the call, slices are pinned in place and passed
// as pointer and length, and output pointers become return values. Native
// strings that come back as NULL are returned as "".
package raylib

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/jmorganca/raylib/envconfig"
	"github.com/jmorganca/raylib/internal/native"
)

const (
	MajorVersion  = 5
	MinorVersion  = 5
	PatchVersion  = 0
	VersionString = "5.5-dev"

	Pi      = 3.14159265358979323846
	Deg2Rad = Pi / 180.0
	Rad2Deg = 180.0 / Pi
)

var ErrNotLoaded = errors.New("raylib: native library not loaded")

var table = &native.Table{Name: "raylib"}

func init() {
	for _, symbols := range [][]native.Symbol{
		rcoreSymbols,
		rcoreFileSymbols,
		rcoreInputSymbols,
		rcameraSymbols,
		rshapesSymbols,
		rtexturesSymbols,
		rtextSymbols,
		rmodelsSymbols,
		raudioSymbols,
	} {
		table.Symbols = append(table.Symbols, symbols...)
	}

	native.Register(table)
}

var (
	mu      sync.Mutex
	lib     *native.Library
	reports []native.Report
)

// Load opens the raylib shared library and binds every registered table.
// RAYLIB_LIBRARY names the library file directly; otherwise the directories
// in RAYLIB_LIBRARY_PATH are searched, and finally the platform's default
// library names are handed to the system loader. Load is a no-op once a
// library is loaded.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	if lib != nil {
		return nil
	}

	if envconfig.Library != "" {
		return load(envconfig.Library)
	}

	if len(envconfig.LibraryPath) > 0 {
		path, err := native.Search(envconfig.LibraryPath, runtime.GOOS)
		if err == nil {
			return load(path)
		}
		slog.Warn("raylib not found in RAYLIB_LIBRARY_PATH", "paths", envconfig.LibraryPath, "error", err)
	}

	var errs []error
	for _, name := range native.Candidates(runtime.GOOS) {
		err := load(name)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}

	return fmt.Errorf("%w: %w", ErrNotLoaded, errors.Join(errs...))
}

// LoadFrom opens the raylib shared library at path. It fails if a library is
// already loaded.
func LoadFrom(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if lib != nil {
		return fmt.Errorf("raylib: already loaded from %s", lib.Path)
	}

	return load(path)
}

func load(path string) error {
	l, err := native.Open(path)
	if err != nil {
		return err
	}

	slog.Info("loaded raylib", "path", path)

	reports = reports[:0]
	for _, t := range native.Tables() {
		r := l.Bind(t)
		if len(r.Missing) > 0 {
			slog.Warn("raylib symbols missing", "report", r, "symbols", r.Missing)
		} else {
			slog.Debug("raylib symbols bound", "report", r)
		}
		reports = append(reports, r)
	}

	lib = l

	if envconfig.LogLevel >= 0 && bound("SetTraceLogLevel") {
		SetTraceLogLevel(TraceLogLevel(envconfig.LogLevel))
	}

	return nil
}

func bound(symbol string) bool {
	for _, r := range reports {
		if r.Table == table.Name {
			return !slices.Contains(r.Missing, symbol)
		}
	}
	return false
}

// Unload detaches any audio processor, unpins the automation event list and
// closes the library. Every binding panics again until the next Load.
func Unload() error {
	mu.Lock()
	defer mu.Unlock()

	if lib == nil {
		return ErrNotLoaded
	}

	audioMixedSlot.Store(nil)
	releaseAutomationEventList()

	err := lib.Close()
	lib = nil
	reports = nil
	return err
}

// Loaded reports whether a native library is loaded.
func Loaded() bool {
	mu.Lock()
	defer mu.Unlock()
	return lib != nil
}

// Path returns the path the loaded library was opened from.
func Path() string {
	mu.Lock()
	defer mu.Unlock()

	if lib == nil {
		return ""
	}
	return lib.Path
}

// Reports returns the bind report of every table from the last Load.
func Reports() []native.Report {
	mu.Lock()
	defer mu.Unlock()
	return slices.Clone(reports)
}
