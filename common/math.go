package common

import "math"

// TwoPi is a full revolution in radians.
const TwoPi = 2 * math.Pi

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Perspective writes a perspective projection that maps depth into the
// WebGPU clip range [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// LookAt writes a view matrix for an eye at (eyeX, eyeY, eyeZ) looking at
// (centerX, centerY, centerZ) with the given up vector.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	z0, z1, z2 := normalize(eyeX-centerX, eyeY-centerY, eyeZ-centerZ)
	x0, x1, x2 := normalize(upY*z2-upZ*z1, upZ*z0-upX*z2, upX*z1-upY*z0)

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eyeX + x1*eyeY + x2*eyeZ)
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eyeX + y1*eyeY + y2*eyeZ)
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eyeX + z1*eyeY + z2*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// WrapAngle folds an angle in radians into [0, 2π).
//
// Parameters:
//   - a: the angle in radians
//
// Returns:
//   - float64: the equivalent angle in [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// normalize returns the unit vector of (x, y, z). A zero vector is returned
// unchanged so callers never divide by zero.
func normalize(x, y, z float32) (float32, float32, float32) {
	l := float64(x*x + y*y + z*z)
	if l == 0 {
		return x, y, z
	}
	inv := 1.0 / float32(math.Sqrt(l))
	return x * inv, y * inv, z * inv
}
