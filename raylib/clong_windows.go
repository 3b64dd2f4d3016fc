package raylib

// cLong is C long, which stays 32 bits on 64-bit Windows.
type cLong = int32
