// Package native loads a C shared library at run time and binds its entry
// points into typed Go function variables.
//
// A binding package declares one Go function variable per native function and
// lists them in a Table. Register installs a stub into every variable so that a
// call made before the library is loaded fails loudly instead of jumping
// through a nil function. Library.Bind replaces the stubs with real entry
// points; symbols the library does not export keep their stub and are reported
// as missing.
package native

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/jmorganca/raylib/logutil"
)

var (
	// ErrNotFound is returned by Search when no candidate library exists.
	ErrNotFound = errors.New("native library not found")
	// ErrUnsupported is returned on targets without a dynamic loader.
	ErrUnsupported = errors.New("dynamic loading is not supported on this platform")
)

// Symbol is one row of a signature table: the exported C symbol name and a
// pointer to the Go function variable that receives the entry point.
type Symbol struct {
	Name string
	Fn   any
}

// Table groups the symbols of one binding package.
type Table struct {
	Name    string
	Symbols []Symbol
}

// Report is the outcome of binding a single table.
type Report struct {
	Table   string
	Bound   int
	Missing []string
}

func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("table", r.Table),
		slog.Int("bound", r.Bound),
		slog.Int("missing", len(r.Missing)),
	)
}

var (
	mu     sync.Mutex
	tables []*Table
)

// Register records t and installs stubs into each of its function variables.
// It panics if a symbol does not point at a function variable, which is a
// programming error in the binding package.
func Register(t *Table) {
	mu.Lock()
	defer mu.Unlock()

	for _, s := range t.Symbols {
		stub(t.Name, s)
	}
	tables = append(tables, t)
}

// Tables returns every registered table in registration order.
func Tables() []*Table {
	mu.Lock()
	defer mu.Unlock()
	return append([]*Table(nil), tables...)
}

func fnValue(table string, s Symbol) reflect.Value {
	v := reflect.ValueOf(s.Fn)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Func {
		panic(fmt.Sprintf("%s: symbol %s: want pointer to func variable, got %T", table, s.Name, s.Fn))
	}
	return v.Elem()
}

func stub(table string, s Symbol) {
	fn := fnValue(table, s)
	msg := fmt.Sprintf("%s: %s called before the native library was loaded", table, s.Name)
	fn.Set(reflect.MakeFunc(fn.Type(), func([]reflect.Value) []reflect.Value {
		panic(msg)
	}))
}

// Library is an opened native library.
type Library struct {
	Path string

	handle uintptr
	lookup func(name string) (uintptr, error)
	bind   func(fptr any, sym uintptr) error
	bound  []*Table
}

// Open loads the shared library at path.
func Open(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	l := &Library{Path: path, handle: handle, bind: bindFunc}
	l.lookup = func(name string) (uintptr, error) {
		return dlsym(l.handle, name)
	}
	return l, nil
}

// Bind resolves every symbol of t. Unresolved symbols and signatures the
// calling convention layer rejects keep their stub and are listed in the
// returned report.
func (l *Library) Bind(t *Table) Report {
	r := Report{Table: t.Name}
	for _, s := range t.Symbols {
		fnValue(t.Name, s)

		sym, err := l.lookup(s.Name)
		if err == nil && sym == 0 {
			err = fmt.Errorf("symbol %s resolved to NULL", s.Name)
		}
		if err == nil {
			err = l.bind(s.Fn, sym)
		}
		if err != nil {
			slog.Debug("unresolved native symbol", "table", t.Name, "symbol", s.Name, "error", err)
			r.Missing = append(r.Missing, s.Name)
			continue
		}

		logutil.Trace("bound native symbol", "table", t.Name, "symbol", s.Name)
		r.Bound++
	}

	l.bound = append(l.bound, t)
	return r
}

// Close releases the library and puts the stubs back into every table it
// bound, so stale entry points can no longer be called.
func (l *Library) Close() error {
	mu.Lock()
	for _, t := range l.bound {
		for _, s := range t.Symbols {
			stub(t.Name, s)
		}
	}
	mu.Unlock()
	l.bound = nil

	if l.handle == 0 {
		return nil
	}

	err := dlclose(l.handle)
	l.handle = 0
	return err
}

// NewCallback returns a C-callable function pointer for fn. Each call
// allocates a new trampoline that is never released, so callers create one
// per native hook and reuse it.
func NewCallback(fn any) uintptr {
	return newCallback(fn)
}
