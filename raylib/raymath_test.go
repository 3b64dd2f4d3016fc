package raylib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
	assert.Equal(t, float32(1), Clamp(2, 0, 1))
}

func TestVector2(t *testing.T) {
	v := Vector2{3, 4}
	assert.Equal(t, float32(5), Vector2Length(v))
	assert.Equal(t, Vector2{4, 6}, Vector2Add(v, Vector2{1, 2}))
	assert.Equal(t, Vector2{2, 2}, Vector2Subtract(v, Vector2{1, 2}))
	assert.Equal(t, float32(5), Vector2Distance(Vector2{}, v))
	assert.Equal(t, Vector2{1.5, 2}, Vector2Lerp(Vector2{}, v, 0.5))

	n := Vector2Normalize(v)
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
	assert.Equal(t, Vector2{}, Vector2Normalize(Vector2{}))
}

func TestVector3(t *testing.T) {
	x, y := Vector3{1, 0, 0}, Vector3{0, 1, 0}
	assert.Equal(t, Vector3{0, 0, 1}, Vector3CrossProduct(x, y))
	assert.Equal(t, float32(0), Vector3DotProduct(x, y))
	assert.Equal(t, Vector3{1, 1, 0}, Vector3Add(x, y))
	assert.Equal(t, Vector3{0, 0, 2}, Vector3Scale(Vector3Normalize(Vector3{0, 0, 5}), 2))
	assert.Equal(t, float32(3), Vector3Length(Vector3{1, 2, 2}))
	assert.Equal(t, Vector3{1, -1, 0}, Vector3Subtract(x, y))
}

func TestMatrixMultiply(t *testing.T) {
	a := MatrixTranslate(1, 2, 3)
	b := MatrixTranslate(4, 5, 6)

	got := MatrixMultiply(a, b)
	if diff := cmp.Diff(MatrixTranslate(5, 7, 9), got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, a, MatrixMultiply(a, MatrixIdentity()))
	assert.Equal(t, a, MatrixMultiply(MatrixIdentity(), a))
}

func TestMatrixToFloat(t *testing.T) {
	m := MatrixTranslate(1, 2, 3)
	f := MatrixToFloat(m)

	assert.Equal(t, [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1}, f)
	assert.Equal(t, m, matrixFromFloat(f))
}
