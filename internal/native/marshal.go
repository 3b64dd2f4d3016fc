package native

import (
	"runtime"
	"unsafe"
)

func noop() {}

// CString returns a NUL-terminated copy of s and a release func. The copy is
// pinned until release is called; callers defer release so it runs on every
// exit path. An embedded NUL truncates the string as seen from C.
func CString(s string) (*byte, func()) {
	b := make([]byte, len(s)+1)
	copy(b, s)

	var pin runtime.Pinner
	pin.Pin(&b[0])
	return &b[0], pin.Unpin
}

// CStringOrNil is CString, except that the empty string maps to NULL.
func CStringOrNil(s string) (*byte, func()) {
	if s == "" {
		return nil, noop
	}
	return CString(s)
}

// GoString copies the NUL-terminated string at p. A NULL pointer yields "",
// so absence and an empty result cannot be told apart.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}

	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// PinSlice returns the address of the first element of s, pinned until
// release is called. An empty slice yields NULL.
func PinSlice[T any](s []T) (unsafe.Pointer, func()) {
	if len(s) == 0 {
		return nil, noop
	}

	var pin runtime.Pinner
	pin.Pin(&s[0])
	return unsafe.Pointer(&s[0]), pin.Unpin
}

// PinValue pins the value v points at until release is called.
func PinValue[T any](v *T) (*T, func()) {
	if v == nil {
		return nil, noop
	}

	var pin runtime.Pinner
	pin.Pin(v)
	return v, pin.Unpin
}

// SizeOf is the size in bytes of one T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// ByteLen is len(s) times the element size, the unit most native buffer
// functions expect.
func ByteLen[T any](s []T) int {
	return len(s) * int(SizeOf[T]())
}

// CopyBytes copies n bytes of native memory at p into a Go slice.
func CopyBytes(p unsafe.Pointer, n int) []byte {
	return CopySlice[byte](p, n)
}

// CopySlice copies n elements of native memory at p into a Go slice.
func CopySlice[T any](p unsafe.Pointer, n int) []T {
	if p == nil || n <= 0 {
		return nil
	}

	s := make([]T, n)
	copy(s, unsafe.Slice((*T)(p), n))
	return s
}

// View aliases n elements of memory at p without copying. The view is only
// valid while the owner keeps the memory alive.
func View[T any](p unsafe.Pointer, n int) []T {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}
