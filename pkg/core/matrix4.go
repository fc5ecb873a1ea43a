package core

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix4 is a 4x4 transformation matrix in row-major order:
// element (row, col) lives at index row*4+col.
type Matrix4 [16]float64

// Identity returns the identity matrix
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewTranslation returns a translation matrix
func NewTranslation(v Vec3) Matrix4 {
	return Matrix4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// NewScale returns a scale matrix
func NewScale(v Vec3) Matrix4 {
	return Matrix4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// NewRotation returns a rotation matrix for Euler angles in radians,
// applied around the X, Y, and Z axes in that order (matching Vec3.Rotate)
func NewRotation(rotation Vec3) Matrix4 {
	cx, sx := math.Cos(rotation.X), math.Sin(rotation.X)
	cy, sy := math.Cos(rotation.Y), math.Sin(rotation.Y)
	cz, sz := math.Cos(rotation.Z), math.Sin(rotation.Z)

	rx := Matrix4{
		1, 0, 0, 0,
		0, cx, -sx, 0,
		0, sx, cx, 0,
		0, 0, 0, 1,
	}
	ry := Matrix4{
		cy, 0, sy, 0,
		0, 1, 0, 0,
		-sy, 0, cy, 0,
		0, 0, 0, 1,
	}
	rz := Matrix4{
		cz, -sz, 0, 0,
		sz, cz, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return rz.Mul(ry).Mul(rx)
}

// Compose builds a world matrix from position, rotation (XYZ Euler,
// radians), and scale, applied in scale-rotate-translate order
func Compose(position, rotation, scale Vec3) Matrix4 {
	return NewTranslation(position).Mul(NewRotation(rotation)).Mul(NewScale(scale))
}

// Mul returns the matrix product m * other
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Transpose returns the transposed matrix
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// TransformPoint applies the matrix to a point (w=1, no perspective divide)
func (m Matrix4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// TransformDirection applies the matrix to a direction (w=0, ignores translation)
func (m Matrix4) TransformDirection(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// TransformVec4 applies the matrix to a homogeneous coordinate
func (m Matrix4) TransformVec4(x, y, z, w float64) (float64, float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z + m[3]*w,
		m[4]*x + m[5]*y + m[6]*z + m[7]*w,
		m[8]*x + m[9]*y + m[10]*z + m[11]*w,
		m[12]*x + m[13]*y + m[14]*z + m[15]*w
}

// Inverse returns the inverse matrix. A singular (or numerically
// near-singular) matrix is reported as an error rather than producing
// NaN results.
func (m Matrix4) Inverse() (Matrix4, error) {
	dense := mat.NewDense(4, 4, m[:])
	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		return Matrix4{}, err
	}
	var out Matrix4
	copy(out[:], inv.RawMatrix().Data)
	return out, nil
}
