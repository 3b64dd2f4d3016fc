package raylib

import (
	"image"
	"image/draw"
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

var (
	loadImage            func(fileName *byte) Image
	loadImageFromMemory  func(fileType *byte, fileData unsafe.Pointer, dataSize int32) Image
	loadImageFromTexture func(texture Texture2D) Image
	loadImageFromScreen  func() Image
	isImageReady         func(image Image) bool
	unloadImage          func(image Image)
	exportImage          func(image Image, fileName *byte) bool
	genImageColor        func(width, height int32, color Color) Image
	genImageChecked      func(width, height, checksX, checksY int32, col1, col2 Color) Image
	imageCopy            func(image Image) Image
	imageResize          func(image *Image, newWidth, newHeight int32)
	imageFlipVertical    func(image *Image)
	loadImageColors      func(image Image) unsafe.Pointer
	unloadImageColors    func(colors unsafe.Pointer)
	getImageColor        func(image Image, x, y int32) Color

	loadTexture          func(fileName *byte) Texture2D
	loadTextureFromImage func(image Image) Texture2D
	loadRenderTexture    func(width, height int32) RenderTexture2D
	isTextureReady       func(texture Texture2D) bool
	unloadTexture        func(texture Texture2D)
	unloadRenderTexture  func(target RenderTexture2D)
	updateTexture        func(texture Texture2D, pixels unsafe.Pointer)
	updateTextureRec     func(texture Texture2D, rec Rectangle, pixels unsafe.Pointer)
	genTextureMipmaps    func(texture *Texture2D)
	setTextureFilter     func(texture Texture2D, filter TextureFilter)
	setTextureWrap       func(texture Texture2D, wrap TextureWrap)
	drawTexture          func(texture Texture2D, posX, posY int32, tint Color)
	drawTextureV         func(texture Texture2D, position Vector2, tint Color)
	drawTextureEx        func(texture Texture2D, position Vector2, rotation, scale float32, tint Color)
	drawTextureRec       func(texture Texture2D, source Rectangle, position Vector2, tint Color)
	drawTexturePro       func(texture Texture2D, source, dest Rectangle, origin Vector2, rotation float32, tint Color)
	drawTextureNPatch    func(texture Texture2D, nPatchInfo NPatchInfo, dest Rectangle, origin Vector2, rotation float32, tint Color)

	fade             func(color Color, alpha float32) Color
	colorToInt       func(color Color) int32
	colorFromHSV     func(hue, saturation, value float32) Color
	colorAlpha       func(color Color, alpha float32) Color
	getColor         func(hexValue uint32) Color
	getPixelDataSize func(width, height int32, format PixelFormat) int32
)

var rtexturesSymbols = []native.Symbol{
	{"LoadImage", &loadImage},
	{"LoadImageFromMemory", &loadImageFromMemory},
	{"LoadImageFromTexture", &loadImageFromTexture},
	{"LoadImageFromScreen", &loadImageFromScreen},
	{"IsImageReady", &isImageReady},
	{"UnloadImage", &unloadImage},
	{"ExportImage", &exportImage},
	{"GenImageColor", &genImageColor},
	{"GenImageChecked", &genImageChecked},
	{"ImageCopy", &imageCopy},
	{"ImageResize", &imageResize},
	{"ImageFlipVertical", &imageFlipVertical},
	{"LoadImageColors", &loadImageColors},
	{"UnloadImageColors", &unloadImageColors},
	{"GetImageColor", &getImageColor},

	{"LoadTexture", &loadTexture},
	{"LoadTextureFromImage", &loadTextureFromImage},
	{"LoadRenderTexture", &loadRenderTexture},
	{"IsTextureReady", &isTextureReady},
	{"UnloadTexture", &unloadTexture},
	{"UnloadRenderTexture", &unloadRenderTexture},
	{"UpdateTexture", &updateTexture},
	{"UpdateTextureRec", &updateTextureRec},
	{"GenTextureMipmaps", &genTextureMipmaps},
	{"SetTextureFilter", &setTextureFilter},
	{"SetTextureWrap", &setTextureWrap},
	{"DrawTexture", &drawTexture},
	{"DrawTextureV", &drawTextureV},
	{"DrawTextureEx", &drawTextureEx},
	{"DrawTextureRec", &drawTextureRec},
	{"DrawTexturePro", &drawTexturePro},
	{"DrawTextureNPatch", &drawTextureNPatch},

	{"Fade", &fade},
	{"ColorToInt", &colorToInt},
	{"ColorFromHSV", &colorFromHSV},
	{"ColorAlpha", &colorAlpha},
	{"GetColor", &getColor},
	{"GetPixelDataSize", &getPixelDataSize},
}

// LoadImage loads an image into CPU memory. Release it with UnloadImage.
func LoadImage(fileName string) Image {
	name, release := native.CString(fileName)
	defer release()
	return loadImage(name)
}

// LoadImageFromMemory decodes an image from an encoded file held in memory.
// fileType is the extension including the dot, for example ".png".
func LoadImageFromMemory(fileType string, fileData []byte) Image {
	t, release := native.CString(fileType)
	defer release()
	p, unpin := native.PinSlice(fileData)
	defer unpin()
	return loadImageFromMemory(t, p, int32(len(fileData)))
}

func LoadImageFromTexture(texture Texture2D) Image { return loadImageFromTexture(texture) }

// LoadImageFromScreen captures the current framebuffer.
func LoadImageFromScreen() Image { return loadImageFromScreen() }

func IsImageReady(image Image) bool { return isImageReady(image) }
func UnloadImage(image Image)       { unloadImage(image) }

func ExportImage(image Image, fileName string) bool {
	name, release := native.CString(fileName)
	defer release()
	return exportImage(image, name)
}

func GenImageColor(width, height int32, color Color) Image {
	return genImageColor(width, height, color)
}

func GenImageChecked(width, height, checksX, checksY int32, col1, col2 Color) Image {
	return genImageChecked(width, height, checksX, checksY, col1, col2)
}

func ImageCopy(image Image) Image { return imageCopy(image) }

// ImageResize resizes image in place with bicubic scaling.
func ImageResize(image *Image, newWidth, newHeight int32) {
	i, release := native.PinValue(image)
	defer release()
	imageResize(i, newWidth, newHeight)
}

func ImageFlipVertical(image *Image) {
	i, release := native.PinValue(image)
	defer release()
	imageFlipVertical(i)
}

// GetImageColors returns the image pixels as colors, one per pixel in row
// order.
func GetImageColors(image Image) []Color {
	return native.LoadAndRelease(
		func() unsafe.Pointer { return loadImageColors(image) },
		unloadImageColors,
		func(p unsafe.Pointer) []Color {
			return native.CopySlice[Color](p, int(image.Width)*int(image.Height))
		},
	)
}

func GetImageColor(image Image, x, y int32) Color { return getImageColor(image, x, y) }

// NewImage copies img into an R8G8B8A8 Image whose pixels live in memory
// from MemAlloc, so UnloadImage releases it like any loaded image.
func NewImage(img image.Image) Image {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*bounds.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	size := 4 * bounds.Dx() * bounds.Dy()
	data := MemAlloc(uint32(size))
	copy(unsafe.Slice((*byte)(data), size), rgba.Pix[:size])

	return Image{
		Data:    data,
		Width:   int32(bounds.Dx()),
		Height:  int32(bounds.Dy()),
		Mipmaps: 1,
		Format:  PixelFormatUncompressedR8G8B8A8,
	}
}

// ToRGBA copies the image into a Go image. Pixel formats other than
// R8G8B8A8 are converted by raylib.
func (i Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, int(i.Width), int(i.Height)))
	if i.Format == PixelFormatUncompressedR8G8B8A8 {
		copy(rgba.Pix, native.View[byte](i.Data, len(rgba.Pix)))
		return rgba
	}

	for j, c := range GetImageColors(i) {
		rgba.Pix[4*j+0] = c.R
		rgba.Pix[4*j+1] = c.G
		rgba.Pix[4*j+2] = c.B
		rgba.Pix[4*j+3] = c.A
	}
	return rgba
}

// LoadTexture loads a texture into GPU memory.
func LoadTexture(fileName string) Texture2D {
	name, release := native.CString(fileName)
	defer release()
	return loadTexture(name)
}

func LoadTextureFromImage(image Image) Texture2D { return loadTextureFromImage(image) }

// LoadRenderTexture creates a framebuffer to render into.
func LoadRenderTexture(width, height int32) RenderTexture2D {
	return loadRenderTexture(width, height)
}

func IsTextureReady(texture Texture2D) bool      { return isTextureReady(texture) }
func UnloadTexture(texture Texture2D)            { unloadTexture(texture) }
func UnloadRenderTexture(target RenderTexture2D) { unloadRenderTexture(target) }

// UpdateTexture replaces the whole texture with pixels, which must be in the
// texture's format and hold width*height pixels.
func UpdateTexture[T any](texture Texture2D, pixels []T) {
	p, release := native.PinSlice(pixels)
	defer release()
	updateTexture(texture, p)
}

// UpdateTextureRec replaces the rec area of the texture with pixels.
func UpdateTextureRec[T any](texture Texture2D, rec Rectangle, pixels []T) {
	p, release := native.PinSlice(pixels)
	defer release()
	updateTextureRec(texture, rec, p)
}

// GenTextureMipmaps generates GPU mipmaps and updates texture.Mipmaps.
func GenTextureMipmaps(texture *Texture2D) {
	t, release := native.PinValue(texture)
	defer release()
	genTextureMipmaps(t)
}

func SetTextureFilter(texture Texture2D, filter TextureFilter) { setTextureFilter(texture, filter) }
func SetTextureWrap(texture Texture2D, wrap TextureWrap)       { setTextureWrap(texture, wrap) }

func DrawTexture(texture Texture2D, posX, posY int32, tint Color) {
	drawTexture(texture, posX, posY, tint)
}

func DrawTextureV(texture Texture2D, position Vector2, tint Color) {
	drawTextureV(texture, position, tint)
}

func DrawTextureEx(texture Texture2D, position Vector2, rotation, scale float32, tint Color) {
	drawTextureEx(texture, position, rotation, scale, tint)
}

func DrawTextureRec(texture Texture2D, source Rectangle, position Vector2, tint Color) {
	drawTextureRec(texture, source, position, tint)
}

// DrawTexturePro draws the source part of texture into dest, rotated around
// origin, which is relative to dest.
func DrawTexturePro(texture Texture2D, source, dest Rectangle, origin Vector2, rotation float32, tint Color) {
	drawTexturePro(texture, source, dest, origin, rotation, tint)
}

// DrawTextureNPatch draws a texture that stretches or shrinks nicely.
func DrawTextureNPatch(texture Texture2D, nPatchInfo NPatchInfo, dest Rectangle, origin Vector2, rotation float32, tint Color) {
	drawTextureNPatch(texture, nPatchInfo, dest, origin, rotation, tint)
}

// Fade returns color with alpha applied, alpha going from 0.0 to 1.0.
func Fade(color Color, alpha float32) Color { return fade(color, alpha) }

// ColorToInt returns the color as 0xRRGGBBAA.
func ColorToInt(color Color) int32 { return colorToInt(color) }

// ColorFromHSV converts HSV to a color. hue is in [0, 360], saturation and
// value in [0, 1].
func ColorFromHSV(hue, saturation, value float32) Color {
	return colorFromHSV(hue, saturation, value)
}

func ColorAlpha(color Color, alpha float32) Color { return colorAlpha(color, alpha) }

// GetColor returns the color for a 0xRRGGBBAA value.
func GetColor(hexValue uint32) Color { return getColor(hexValue) }

// GetPixelDataSize returns the size in bytes of width*height pixels in format.
func GetPixelDataSize(width, height int32, format PixelFormat) int32 {
	return getPixelDataSize(width, height, format)
}
