package raylib

import (
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

var (
	getFontDefault     func() Font
	loadFont           func(fileName *byte) Font
	loadFontEx         func(fileName *byte, fontSize int32, codepoints unsafe.Pointer, codepointCount int32) Font
	isFontReady        func(font Font) bool
	unloadFont         func(font Font)
	drawFPS            func(posX, posY int32)
	drawText           func(text *byte, posX, posY, fontSize int32, color Color)
	drawTextEx         func(font Font, text *byte, position Vector2, fontSize, spacing float32, tint Color)
	drawTextPro        func(font Font, text *byte, position, origin Vector2, rotation, fontSize, spacing float32, tint Color)
	measureText        func(text *byte, fontSize int32) int32
	measureTextEx      func(font Font, text *byte, fontSize, spacing float32) Vector2
	setTextLineSpacing func(spacing int32)
	loadCodepoints     func(text *byte, count *int32) unsafe.Pointer
	unloadCodepoints   func(codepoints unsafe.Pointer)
)

var rtextSymbols = []native.Symbol{
	{"GetFontDefault", &getFontDefault},
	{"LoadFont", &loadFont},
	{"LoadFontEx", &loadFontEx},
	{"IsFontReady", &isFontReady},
	{"UnloadFont", &unloadFont},
	{"DrawFPS", &drawFPS},
	{"DrawText", &drawText},
	{"DrawTextEx", &drawTextEx},
	{"DrawTextPro", &drawTextPro},
	{"MeasureText", &measureText},
	{"MeasureTextEx", &measureTextEx},
	{"SetTextLineSpacing", &setTextLineSpacing},
	{"LoadCodepoints", &loadCodepoints},
	{"UnloadCodepoints", &unloadCodepoints},
}

func GetFontDefault() Font { return getFontDefault() }

func LoadFont(fileName string) Font {
	name, release := native.CString(fileName)
	defer release()
	return loadFont(name)
}

// LoadFontEx loads a font with the glyphs for codepoints. A nil codepoints
// slice loads the default 95 ASCII characters.
func LoadFontEx(fileName string, fontSize int32, codepoints []rune) Font {
	name, release := native.CString(fileName)
	defer release()
	p, unpin := native.PinSlice(codepoints)
	defer unpin()
	return loadFontEx(name, fontSize, p, int32(len(codepoints)))
}

func IsFontReady(font Font) bool { return isFontReady(font) }
func UnloadFont(font Font)       { unloadFont(font) }
func DrawFPS(posX, posY int32)   { drawFPS(posX, posY) }

// DrawText draws text with the default font.
func DrawText(text string, posX, posY, fontSize int32, color Color) {
	t, release := native.CString(text)
	defer release()
	drawText(t, posX, posY, fontSize, color)
}

func DrawTextEx(font Font, text string, position Vector2, fontSize, spacing float32, tint Color) {
	t, release := native.CString(text)
	defer release()
	drawTextEx(font, t, position, fontSize, spacing, tint)
}

// DrawTextPro draws text rotated around origin, in degrees.
func DrawTextPro(font Font, text string, position, origin Vector2, rotation, fontSize, spacing float32, tint Color) {
	t, release := native.CString(text)
	defer release()
	drawTextPro(font, t, position, origin, rotation, fontSize, spacing, tint)
}

// MeasureText returns the width of text drawn with the default font.
func MeasureText(text string, fontSize int32) int32 {
	t, release := native.CString(text)
	defer release()
	return measureText(t, fontSize)
}

func MeasureTextEx(font Font, text string, fontSize, spacing float32) Vector2 {
	t, release := native.CString(text)
	defer release()
	return measureTextEx(font, t, fontSize, spacing)
}

func SetTextLineSpacing(spacing int32) { setTextLineSpacing(spacing) }

// GetCodepoints decodes the UTF-8 text into codepoints with raylib's decoder,
// which maps invalid sequences to '?'.
func GetCodepoints(text string) []rune {
	t, release := native.CString(text)
	defer release()

	var count int32
	countPtr, unpin := native.PinValue(&count)
	defer unpin()

	return native.LoadAndRelease(
		func() unsafe.Pointer { return loadCodepoints(t, countPtr) },
		unloadCodepoints,
		func(p unsafe.Pointer) []rune { return native.CopySlice[rune](p, int(count)) },
	)
}
