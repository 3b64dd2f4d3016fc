package raylib

import "github.com/chewxy/math32"

// These helpers follow raymath.h. They are pure Go and do not need the
// native library.

// Clamp limits value to [min, max].
func Clamp(value, min, max float32) float32 {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

// Lerp interpolates linearly between start and end.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

func Vector2Add(v1, v2 Vector2) Vector2 {
	return Vector2{v1.X + v2.X, v1.Y + v2.Y}
}

func Vector2Subtract(v1, v2 Vector2) Vector2 {
	return Vector2{v1.X - v2.X, v1.Y - v2.Y}
}

func Vector2Scale(v Vector2, scale float32) Vector2 {
	return Vector2{v.X * scale, v.Y * scale}
}

func Vector2Length(v Vector2) float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Vector2Normalize scales v to length 1. The zero vector is returned as is.
func Vector2Normalize(v Vector2) Vector2 {
	length := Vector2Length(v)
	if length > 0 {
		return Vector2Scale(v, 1/length)
	}
	return v
}

func Vector2Distance(v1, v2 Vector2) float32 {
	return Vector2Length(Vector2Subtract(v1, v2))
}

func Vector2Lerp(v1, v2 Vector2, amount float32) Vector2 {
	return Vector2{Lerp(v1.X, v2.X, amount), Lerp(v1.Y, v2.Y, amount)}
}

func Vector3Add(v1, v2 Vector3) Vector3 {
	return Vector3{v1.X + v2.X, v1.Y + v2.Y, v1.Z + v2.Z}
}

func Vector3Subtract(v1, v2 Vector3) Vector3 {
	return Vector3{v1.X - v2.X, v1.Y - v2.Y, v1.Z - v2.Z}
}

func Vector3Scale(v Vector3, scale float32) Vector3 {
	return Vector3{v.X * scale, v.Y * scale, v.Z * scale}
}

func Vector3Length(v Vector3) float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Vector3Normalize scales v to length 1. The zero vector is returned as is.
func Vector3Normalize(v Vector3) Vector3 {
	length := Vector3Length(v)
	if length > 0 {
		return Vector3Scale(v, 1/length)
	}
	return v
}

func Vector3CrossProduct(v1, v2 Vector3) Vector3 {
	return Vector3{
		v1.Y*v2.Z - v1.Z*v2.Y,
		v1.Z*v2.X - v1.X*v2.Z,
		v1.X*v2.Y - v1.Y*v2.X,
	}
}

func Vector3DotProduct(v1, v2 Vector3) float32 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

func MatrixIdentity() Matrix {
	return Matrix{M0: 1, M5: 1, M10: 1, M15: 1}
}

func MatrixTranslate(x, y, z float32) Matrix {
	m := MatrixIdentity()
	m.M12, m.M13, m.M14 = x, y, z
	return m
}

// MatrixToFloat returns m as 16 floats in column-major order, the layout
// OpenGL expects.
func MatrixToFloat(m Matrix) [16]float32 {
	return [16]float32{
		m.M0, m.M1, m.M2, m.M3,
		m.M4, m.M5, m.M6, m.M7,
		m.M8, m.M9, m.M10, m.M11,
		m.M12, m.M13, m.M14, m.M15,
	}
}

func matrixFromFloat(f [16]float32) Matrix {
	return Matrix{
		M0: f[0], M1: f[1], M2: f[2], M3: f[3],
		M4: f[4], M5: f[5], M6: f[6], M7: f[7],
		M8: f[8], M9: f[9], M10: f[10], M11: f[11],
		M12: f[12], M13: f[13], M14: f[14], M15: f[15],
	}
}

// MatrixMultiply returns left*right. Applied to a vector, right's transform
// happens after left's.
func MatrixMultiply(left, right Matrix) Matrix {
	l, r := MatrixToFloat(left), MatrixToFloat(right)

	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				out[4*i+j] += l[4*i+k] * r[4*k+j]
			}
		}
	}
	return matrixFromFloat(out)
}
