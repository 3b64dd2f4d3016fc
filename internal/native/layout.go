package native

import (
	"reflect"
)

// Field is one member of a flat struct.
type Field struct {
	Name   string
	Offset uintptr
	Size   uintptr
}

// Layout describes the memory layout of a flat struct.
type Layout struct {
	Name   string
	Size   uintptr
	Align  uintptr
	Fields []Field
}

// Offsets maps field names to their offsets.
func (l Layout) Offsets() map[string]uintptr {
	m := make(map[string]uintptr, len(l.Fields))
	for _, f := range l.Fields {
		m[f.Name] = f.Offset
	}
	return m
}

// LayoutOf describes the struct type of v, which may be a struct value or a
// pointer to one.
func LayoutOf(name string, v any) Layout {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic("native: LayoutOf called with non-struct " + t.String())
	}

	l := Layout{Name: name, Size: t.Size(), Align: uintptr(t.Align())}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		l.Fields = append(l.Fields, Field{Name: f.Name, Offset: f.Offset, Size: f.Type.Size()})
	}
	return l
}
