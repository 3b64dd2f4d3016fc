//go:build !windows && !386 && !arm && !mips && !mipsle

package raylib

// cLong is C long on LP64 targets.
type cLong = int64
