// Package geom supplies the 2D vector primitives the rest of the module
// builds on. It wraps mgl64.Vec2 rather than reinventing it, adding only
// the handful of 2D-specific operations the library has no room for in
// its general N-dimensional design: the scalar cross product and the
// 90-degree perpendicular rotation.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 2D floating-point vector.
type Vector = mgl64.Vec2

// minFloat guards normalize-style divisions against division by zero,
// the same role CPFLOAT_MIN plays in the original source.
const minFloat = 1e-18

// New builds a Vector from components.
func New(x, y float64) Vector {
	return Vector{x, y}
}

// Cross returns the z-component of the 3D cross product of a and b,
// a scalar in 2D.
func Cross(a, b Vector) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Perp rotates v by 90 degrees counter-clockwise.
func Perp(v Vector) Vector {
	return Vector{-v.Y(), v.X()}
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Mul(t))
}

// Clamp01 clamps x to [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// SafeNormalize returns v normalized, or fallback if v is too close to
// the zero vector to normalize reliably. This is the fallback-direction
// handling SPEC_FULL requires of every normalize call.
func SafeNormalize(v, fallback Vector) Vector {
	lenSq := v.Dot(v)
	if lenSq < minFloat {
		return fallback
	}
	return v.Mul(1.0 / math.Sqrt(lenSq))
}
