//go:build !windows && (386 || arm || mips || mipsle)

package raylib

// cLong is C long on 32-bit targets. The loader has no backend for these
// yet, but the bindings still build there.
type cLong = int32
