package rlgl

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorganca/raylib/internal/native"
	rl "github.com/jmorganca/raylib/raylib"
)

func fake[T any](t *testing.T, fn *T, impl T) {
	t.Helper()
	prev := *fn
	*fn = impl
	t.Cleanup(func() { *fn = prev })
}

func TestStubBeforeLoad(t *testing.T) {
	require.False(t, rl.Loaded())

	assert.PanicsWithValue(t, "rlgl: rlBegin called before the native library was loaded", func() {
		Begin(Triangles)
	})
	assert.PanicsWithValue(t, "rlgl: rlLoadTexture called before the native library was loaded", func() {
		LoadTexture([]byte{1, 2, 3, 4}, 1, 1, rl.PixelFormatUncompressedR8G8B8A8, 1)
	})
}

func TestSignatureTable(t *testing.T) {
	require.Contains(t, native.Tables(), table)

	seen := make(map[string]bool, len(table.Symbols))
	for _, s := range table.Symbols {
		assert.True(t, strings.HasPrefix(s.Name, "rl"), "%s lacks the rl prefix", s.Name)
		assert.False(t, seen[s.Name], "duplicate symbol %s", s.Name)
		seen[s.Name] = true
	}

	for _, s := range adapterSymbols {
		assert.True(t, seen[s.Name], "%s not registered", s.Name)
	}
}

func TestMultMatrixf(t *testing.T) {
	var got []float32
	fake(t, &multMatrixf, func(matf *float32) {
		got = append(got, unsafe.Slice(matf, 16)...)
	})

	m := rl.MatrixTranslate(1, 2, 3)
	MultMatrixf(m)

	want := rl.MatrixToFloat(m)
	assert.Equal(t, want[:], got)
	assert.Equal(t, []float32{1, 2, 3}, got[12:15], "translation is in the last column")
}

func TestLoadVertexBuffer(t *testing.T) {
	type call struct {
		size    int32
		dynamic bool
		first   float32
	}

	var calls []call
	fake(t, &loadVertexBuffer, func(buffer unsafe.Pointer, size int32, dynamic bool) uint32 {
		c := call{size: size, dynamic: dynamic}
		if buffer != nil {
			c.first = *(*float32)(buffer)
		}
		calls = append(calls, c)
		return uint32(len(calls))
	})

	vertices := []rl.Vector3{{X: 0.5}, {Y: 1}, {Z: 1}}
	assert.Equal(t, uint32(1), LoadVertexBuffer(vertices, false))
	assert.Equal(t, uint32(2), LoadVertexBuffer([]float32(nil), true))

	if diff := cmp.Diff([]call{
		{size: 36, first: 0.5},
		{size: 0, dynamic: true},
	}, calls, cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateBuffers(t *testing.T) {
	var sizes []int32
	fake(t, &updateVertexBuffer, func(_ uint32, _ unsafe.Pointer, dataSize, offset int32) {
		sizes = append(sizes, dataSize, offset)
	})
	fake(t, &updateVertexBufferElements, func(_ uint32, _ unsafe.Pointer, dataSize, offset int32) {
		sizes = append(sizes, dataSize, offset)
	})

	UpdateVertexBuffer(1, []rl.Vector2{{X: 1}, {Y: 1}}, 8)
	UpdateVertexBufferElements(2, []uint16{0, 1, 2, 2, 3, 0}, 4)
	assert.Equal(t, []int32{16, 8, 12, 4}, sizes)
}

func TestSetVertexAttributeDefault(t *testing.T) {
	var got []float32
	var counts []int32
	fake(t, &setVertexAttributeDefault, func(_ int32, value unsafe.Pointer, _ rl.ShaderAttributeDataType, count int32) {
		got = append(got, unsafe.Slice((*float32)(value), count)...)
		counts = append(counts, count)
	})

	SetVertexAttributeDefault(3, rl.Vector3{X: 1, Y: 2, Z: 3}, rl.ShaderAttribVec3, 3)
	SetVertexAttributeDefaultV(3, []float32{4, 5}, rl.ShaderAttribVec2)

	assert.Equal(t, []float32{1, 2, 3, 4, 5}, got)
	assert.Equal(t, []int32{3, 2}, counts)
}

func TestLoadTextureHalf(t *testing.T) {
	var got []uint16
	fake(t, &loadTexture, func(data unsafe.Pointer, width, height int32, _ rl.PixelFormat, _ int32) uint32 {
		got = append(got, unsafe.Slice((*uint16)(data), width*height)...)
		return 9
	})

	id := LoadTextureHalf([]float32{0, 1, -2, 0.5}, 2, 2, rl.PixelFormatUncompressedR16, 1)
	assert.Equal(t, uint32(9), id)
	assert.Equal(t, []uint16{0x0000, 0x3c00, 0xc000, 0x3800}, got)

	assert.Panics(t, func() {
		LoadTextureHalf([]float32{1}, 1, 1, rl.PixelFormatUncompressedR32, 1)
	})
}

func TestLoadTextureCubemap(t *testing.T) {
	type call struct {
		null bool
		size int32
	}

	var calls []call
	fake(t, &loadTextureCubemap, func(data unsafe.Pointer, size int32, _ rl.PixelFormat) uint32 {
		calls = append(calls, call{data == nil, size})
		return 1
	})

	faces := make([]rl.Color, 6*4*4)
	LoadTextureCubemap(faces, rl.PixelFormatUncompressedR8G8B8A8)
	LoadTextureCubemapEmpty(512, rl.PixelFormatUncompressedR8G8B8A8)

	assert.Equal(t, []call{{false, 384}, {true, 512}}, calls)
}

func TestGetGlTextureFormats(t *testing.T) {
	fake(t, &getGlTextureFormats, func(format rl.PixelFormat, glInternalFormat, glFormat, glType *uint32) {
		require.Equal(t, rl.PixelFormatUncompressedR8G8B8A8, format)
		*glInternalFormat = 0x8058
		*glFormat = 0x1908
		*glType = 0x1401
	})

	internal, format, kind := GetGlTextureFormats(rl.PixelFormatUncompressedR8G8B8A8)
	assert.Equal(t, uint32(0x8058), internal)
	assert.Equal(t, uint32(0x1908), format)
	assert.Equal(t, uint32(0x1401), kind)
}

func TestGetPixelFormatName(t *testing.T) {
	name := append([]byte("R8G8B8A8"), 0)
	fake(t, &getPixelFormatName, func(format rl.PixelFormat) unsafe.Pointer {
		if format == rl.PixelFormatUncompressedR8G8B8A8 {
			return unsafe.Pointer(&name[0])
		}
		return nil
	})

	assert.Equal(t, "R8G8B8A8", GetPixelFormatName(rl.PixelFormatUncompressedR8G8B8A8))
	assert.Equal(t, "", GetPixelFormatName(-1))
}

func TestGenTextureMipmaps(t *testing.T) {
	fake(t, &genTextureMipmaps, func(_ uint32, width, height int32, _ rl.PixelFormat, mipmaps *int32) {
		*mipmaps = 1
		for width > 1 || height > 1 {
			width, height = max(width/2, 1), max(height/2, 1)
			*mipmaps++
		}
	})

	assert.Equal(t, int32(9), GenTextureMipmaps(1, 256, 128, rl.PixelFormatUncompressedR8G8B8A8))
}

func TestReadScreenPixels(t *testing.T) {
	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	var freed []unsafe.Pointer
	fake(t, &memFree, func(p unsafe.Pointer) { freed = append(freed, p) })
	fake(t, &readScreenPixels, func(width, height int32) unsafe.Pointer {
		return unsafe.Pointer(&pixels[0])
	})

	got := ReadScreenPixels(2, 1)
	assert.Equal(t, pixels, got)
	assert.Equal(t, []unsafe.Pointer{unsafe.Pointer(&pixels[0])}, freed)

	got[0] = 0xff
	assert.Equal(t, byte(1), pixels[0], "result aliases native memory")
}

func TestReadScreenPixelsReleasesOnPanic(t *testing.T) {
	var freed int
	fake(t, &memFree, func(unsafe.Pointer) { freed++ })
	fake(t, &readScreenPixels, func(width, height int32) unsafe.Pointer {
		return unsafe.Pointer(&make([]byte, 1)[0])
	})

	require.Panics(t, func() { ReadScreenPixels(1<<30, 1<<30) })
	assert.Equal(t, 1, freed)
}

func TestShaderCode(t *testing.T) {
	var sources []string
	fake(t, &loadShaderCode, func(vsCode, fsCode *byte) uint32 {
		sources = append(sources, native.GoString(unsafe.Pointer(vsCode)))
		assert.Nil(t, vsCode)
		sources = append(sources, native.GoString(unsafe.Pointer(fsCode)))
		return 3
	})
	fake(t, &getLocationUniform, func(shaderID uint32, name *byte) int32 {
		if native.GoString(unsafe.Pointer(name)) == "mvp" {
			return 0
		}
		return -1
	})

	assert.Equal(t, uint32(3), LoadShaderCode("", "void main() {}"))
	assert.Equal(t, []string{"", "void main() {}"}, sources)
	assert.Equal(t, int32(0), GetLocationUniform(3, "mvp"))
	assert.Equal(t, int32(-1), GetLocationUniform(3, "missing"))
}

func TestSetUniform(t *testing.T) {
	var got []float32
	fake(t, &setUniform, func(_ int32, value unsafe.Pointer, _ rl.ShaderUniformDataType, count int32) {
		got = append(got, unsafe.Slice((*float32)(value), count)...)
	})

	SetUniform(1, float32(0.25), rl.ShaderUniformFloat, 1)
	SetUniformV(2, []float32{1, 2, 3}, rl.ShaderUniformFloat)
	assert.Equal(t, []float32{0.25, 1, 2, 3}, got)
}

func TestSetUniformMatrices(t *testing.T) {
	var got []Matrix
	fake(t, &setUniformMatrices, func(_ int32, mat unsafe.Pointer, count int32) {
		got = append(got, unsafe.Slice((*Matrix)(mat), count)...)
	})

	mats := []Matrix{rl.MatrixIdentity(), rl.MatrixTranslate(1, 0, 0)}
	SetUniformMatrices(4, mats)
	assert.Equal(t, mats, got)
}

func TestShaderBuffers(t *testing.T) {
	type call struct {
		name   string
		size   uint32
		offset uint32
		null   bool
	}

	var calls []call
	fake(t, &loadShaderBuffer, func(size uint32, data unsafe.Pointer, _ BufferUsage) uint32 {
		calls = append(calls, call{name: "load", size: size, null: data == nil})
		return 1
	})
	fake(t, &updateShaderBuffer, func(_ uint32, data unsafe.Pointer, dataSize, offset uint32) {
		calls = append(calls, call{name: "update", size: dataSize, offset: offset, null: data == nil})
	})
	fake(t, &readShaderBuffer, func(_ uint32, dest unsafe.Pointer, count, offset uint32) {
		out := unsafe.Slice((*uint32)(dest), count/4)
		for i := range out {
			out[i] = uint32(i) + offset
		}
		calls = append(calls, call{name: "read", size: count, offset: offset, null: dest == nil})
	})

	LoadShaderBuffer([]uint32{1, 2, 3, 4}, DynamicCopy)
	LoadShaderBufferEmpty(1024, DynamicCopy)
	UpdateShaderBuffer(1, []rl.Vector4{{}}, 16)

	dest := make([]uint32, 3)
	ReadShaderBuffer(1, dest, 8)

	if diff := cmp.Diff([]call{
		{name: "load", size: 16},
		{name: "load", size: 1024, null: true},
		{name: "update", size: 16, offset: 16},
		{name: "read", size: 12, offset: 8},
	}, calls, cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []uint32{8, 9, 10}, dest)
}

func TestDrawRenderBatch(t *testing.T) {
	batch := &RenderBatch{BufferCount: 1, DrawCounter: 2}
	fake(t, &drawRenderBatch, func(b *RenderBatch) {
		assert.Same(t, batch, b)
		b.DrawCounter = 1
	})

	DrawRenderBatch(batch)
	assert.Equal(t, int32(1), batch.DrawCounter)
}

func TestSetRenderBatchActiveNil(t *testing.T) {
	var got []*RenderBatch
	fake(t, &setRenderBatchActive, func(b *RenderBatch) { got = append(got, b) })

	SetRenderBatchActive(nil)
	assert.Equal(t, []*RenderBatch{nil}, got)
}
