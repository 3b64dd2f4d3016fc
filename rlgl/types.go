package rlgl

import (
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

const (
	DefaultBatchBufferElements  = 8192
	DefaultBatchBuffers         = 1
	DefaultBatchDrawcalls       = 256
	DefaultBatchMaxTextureUnits = 4
	MaxMatrixStackSize          = 32
	MaxShaderLocations          = 32
	CullDistanceNear            = 0.01
	CullDistanceFar             = 1000.0
)

// VertexBuffer, dynamic vertex buffers (position + texcoords + normals +
// colors + indices arrays)
type VertexBuffer struct {
	ElementCount int32

	Vertices  *float32
	Texcoords *float32
	Normals   *float32
	Colors    *uint8
	Indices   *uint32

	VaoID uint32
	VboID [5]uint32
}

// DrawCall, one batch of vertices drawn with a single texture and mode
type DrawCall struct {
	Mode            DrawMode
	VertexCount     int32
	VertexAlignment int32
	TextureID       uint32
}

// RenderBatch, a set of vertex buffers and the draw calls recorded into them
type RenderBatch struct {
	BufferCount   int32
	CurrentBuffer int32
	VertexBuffer  *VertexBuffer
	Draws         *DrawCall
	DrawCounter   int32
	CurrentDepth  float32
}

// BuffersView views the batch's vertex buffers.
func (b RenderBatch) BuffersView() []VertexBuffer {
	return native.View[VertexBuffer](unsafe.Pointer(b.VertexBuffer), int(b.BufferCount))
}

// DrawsView views the draw calls recorded so far.
func (b RenderBatch) DrawsView() []DrawCall {
	return native.View[DrawCall](unsafe.Pointer(b.Draws), int(b.DrawCounter))
}

// Layouts describes the Go side of the rlgl structs.
func Layouts() []native.Layout {
	return []native.Layout{
		native.LayoutOf("VertexBuffer", VertexBuffer{}),
		native.LayoutOf("DrawCall", DrawCall{}),
		native.LayoutOf("RenderBatch", RenderBatch{}),
	}
}
