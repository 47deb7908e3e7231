// Package f32hack converts golang.org/x/mobile/exp/f32 matrices into the
// column-major arrays GL expects.  The f32 projection and camera helpers
// produce transposed matrices, which SetPerspective and LookAt correct.
package f32hack

import "golang.org/x/mobile/exp/f32"

// SetPerspective is like m.Perspective(r, aspect, near, far) but the
// resulting matrix is transposed to be in the proper form.
func SetPerspective(m *f32.Mat4, r f32.Radian, aspect, near, far float32) {
	m.Perspective(r, aspect, near, far)
	Transpose4(m)
}

// LookAt is like m.LookAt(eye, center, up) but the resulting matrix is
// transposed to be in the proper form.
func LookAt(m *f32.Mat4, eye, center, up *f32.Vec3) {
	m.LookAt(eye, center, up)
	Transpose4(m)
}

// Transpose4 performs an in-place matrix transpose of m.
func Transpose4(m *f32.Mat4) {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
}

// ColumnMajor serializes m, whose vectors are its rows, in column-major
// order.
func ColumnMajor(m *f32.Mat4) [16]float32 {
	var dst [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[4*col+row] = m[row][col]
		}
	}
	return dst
}

// MVP computes projection * view * model and serializes the product with
// ColumnMajor.  tmp holds the product and may be reused between frames.
func MVP(tmp, projection, view, model *f32.Mat4) [16]float32 {
	tmp.Mul(projection, view)
	tmp.Mul(tmp, model)
	return ColumnMajor(tmp)
}

// RotateY sets m to a rotation of angle radians about the y axis.
func RotateY(m *f32.Mat4, angle f32.Radian) {
	c, s := f32.Cos(float32(angle)), f32.Sin(float32(angle))
	*m = f32.Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}
