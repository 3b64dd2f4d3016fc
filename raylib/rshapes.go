package raylib

import (
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

var (
	setShapesTexture     func(texture Texture2D, source Rectangle)
	drawPixel            func(posX, posY int32, color Color)
	drawPixelV           func(position Vector2, color Color)
	drawLine             func(startPosX, startPosY, endPosX, endPosY int32, color Color)
	drawLineV            func(startPos, endPos Vector2, color Color)
	drawLineEx           func(startPos, endPos Vector2, thick float32, color Color)
	drawLineStrip        func(points unsafe.Pointer, pointCount int32, color Color)
	drawCircle           func(centerX, centerY int32, radius float32, color Color)
	drawCircleV          func(center Vector2, radius float32, color Color)
	drawCircleLines      func(centerX, centerY int32, radius float32, color Color)
	drawRectangle        func(posX, posY, width, height int32, color Color)
	drawRectangleV       func(position, size Vector2, color Color)
	drawRectangleRec     func(rec Rectangle, color Color)
	drawRectanglePro     func(rec Rectangle, origin Vector2, rotation float32, color Color)
	drawRectangleLines   func(posX, posY, width, height int32, color Color)
	drawRectangleLinesEx func(rec Rectangle, lineThick float32, color Color)
	drawRectangleRounded func(rec Rectangle, roundness float32, segments int32, color Color)
	drawTriangle         func(v1, v2, v3 Vector2, color Color)
	drawTriangleFan      func(points unsafe.Pointer, pointCount int32, color Color)
	drawTriangleStrip    func(points unsafe.Pointer, pointCount int32, color Color)
	drawPoly             func(center Vector2, sides int32, radius, rotation float32, color Color)

	checkCollisionRecs      func(rec1, rec2 Rectangle) bool
	checkCollisionCircles   func(center1 Vector2, radius1 float32, center2 Vector2, radius2 float32) bool
	checkCollisionPointRec  func(point Vector2, rec Rectangle) bool
	checkCollisionPointPoly func(point Vector2, points unsafe.Pointer, pointCount int32) bool
	getCollisionRec         func(rec1, rec2 Rectangle) Rectangle
)

var rshapesSymbols = []native.Symbol{
	{"SetShapesTexture", &setShapesTexture},
	{"DrawPixel", &drawPixel},
	{"DrawPixelV", &drawPixelV},
	{"DrawLine", &drawLine},
	{"DrawLineV", &drawLineV},
	{"DrawLineEx", &drawLineEx},
	{"DrawLineStrip", &drawLineStrip},
	{"DrawCircle", &drawCircle},
	{"DrawCircleV", &drawCircleV},
	{"DrawCircleLines", &drawCircleLines},
	{"DrawRectangle", &drawRectangle},
	{"DrawRectangleV", &drawRectangleV},
	{"DrawRectangleRec", &drawRectangleRec},
	{"DrawRectanglePro", &drawRectanglePro},
	{"DrawRectangleLines", &drawRectangleLines},
	{"DrawRectangleLinesEx", &drawRectangleLinesEx},
	{"DrawRectangleRounded", &drawRectangleRounded},
	{"DrawTriangle", &drawTriangle},
	{"DrawTriangleFan", &drawTriangleFan},
	{"DrawTriangleStrip", &drawTriangleStrip},
	{"DrawPoly", &drawPoly},

	{"CheckCollisionRecs", &checkCollisionRecs},
	{"CheckCollisionCircles", &checkCollisionCircles},
	{"CheckCollisionPointRec", &checkCollisionPointRec},
	{"CheckCollisionPointPoly", &checkCollisionPointPoly},
	{"GetCollisionRec", &getCollisionRec},
}

// SetShapesTexture sets the texture and source rectangle used to draw shapes.
// Batching shapes and text with the same texture saves draw calls.
func SetShapesTexture(texture Texture2D, source Rectangle) { setShapesTexture(texture, source) }

func DrawPixel(posX, posY int32, color Color)  { drawPixel(posX, posY, color) }
func DrawPixelV(position Vector2, color Color) { drawPixelV(position, color) }

func DrawLine(startPosX, startPosY, endPosX, endPosY int32, color Color) {
	drawLine(startPosX, startPosY, endPosX, endPosY, color)
}

func DrawLineV(startPos, endPos Vector2, color Color) { drawLineV(startPos, endPos, color) }

func DrawLineEx(startPos, endPos Vector2, thick float32, color Color) {
	drawLineEx(startPos, endPos, thick, color)
}

// drawPoints pins points for a native draw call taking a point array and
// its length.
func drawPoints(fn func(unsafe.Pointer, int32, Color), points []Vector2, color Color) {
	p, release := native.PinSlice(points)
	defer release()
	fn(p, int32(len(points)), color)
}

// DrawLineStrip draws lines through every point in order.
func DrawLineStrip(points []Vector2, color Color) { drawPoints(drawLineStrip, points, color) }

func DrawCircle(centerX, centerY int32, radius float32, color Color) {
	drawCircle(centerX, centerY, radius, color)
}

func DrawCircleV(center Vector2, radius float32, color Color) { drawCircleV(center, radius, color) }

func DrawCircleLines(centerX, centerY int32, radius float32, color Color) {
	drawCircleLines(centerX, centerY, radius, color)
}

func DrawRectangle(posX, posY, width, height int32, color Color) {
	drawRectangle(posX, posY, width, height, color)
}

func DrawRectangleV(position, size Vector2, color Color) { drawRectangleV(position, size, color) }
func DrawRectangleRec(rec Rectangle, color Color)        { drawRectangleRec(rec, color) }

func DrawRectanglePro(rec Rectangle, origin Vector2, rotation float32, color Color) {
	drawRectanglePro(rec, origin, rotation, color)
}

func DrawRectangleLines(posX, posY, width, height int32, color Color) {
	drawRectangleLines(posX, posY, width, height, color)
}

func DrawRectangleLinesEx(rec Rectangle, lineThick float32, color Color) {
	drawRectangleLinesEx(rec, lineThick, color)
}

func DrawRectangleRounded(rec Rectangle, roundness float32, segments int32, color Color) {
	drawRectangleRounded(rec, roundness, segments, color)
}

// DrawTriangle draws a filled triangle. Vertices go in counter-clockwise
// order.
func DrawTriangle(v1, v2, v3 Vector2, color Color) { drawTriangle(v1, v2, v3, color) }

// DrawTriangleFan draws a fan around the first point.
func DrawTriangleFan(points []Vector2, color Color) { drawPoints(drawTriangleFan, points, color) }

func DrawTriangleStrip(points []Vector2, color Color) { drawPoints(drawTriangleStrip, points, color) }

func DrawPoly(center Vector2, sides int32, radius, rotation float32, color Color) {
	drawPoly(center, sides, radius, rotation, color)
}

func CheckCollisionRecs(rec1, rec2 Rectangle) bool { return checkCollisionRecs(rec1, rec2) }

func CheckCollisionCircles(center1 Vector2, radius1 float32, center2 Vector2, radius2 float32) bool {
	return checkCollisionCircles(center1, radius1, center2, radius2)
}

func CheckCollisionPointRec(point Vector2, rec Rectangle) bool {
	return checkCollisionPointRec(point, rec)
}

// CheckCollisionPointPoly checks if point is inside the polygon described by
// points.
func CheckCollisionPointPoly(point Vector2, points []Vector2) bool {
	p, release := native.PinSlice(points)
	defer release()
	return checkCollisionPointPoly(point, p, int32(len(points)))
}

// GetCollisionRec returns the overlap of two rectangles.
func GetCollisionRec(rec1, rec2 Rectangle) Rectangle { return getCollisionRec(rec1, rec2) }
