// Package core provides fundamental types and utilities shared by the simulation,
// the camera and the terminal front end. It carries no Bubble Tea dependency to keep
// game logic pure and testable.
package core

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or velocity in world or screen space.
type Vec = r2.Vec

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Heading returns a vector of the given length pointing at angle (radians).
func Heading(angle, length float64) Vec {
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Lerp moves v toward target by factor t (0 = stay, 1 = snap).
func Lerp(v, target Vec, t float64) Vec {
	return r2.Add(v, r2.Scale(t, r2.Sub(target, v)))
}

// RandRange returns a uniformly distributed float64 in [min, max).
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// RandInt returns a uniformly distributed int in [min, max] (inclusive).
func RandInt(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampToBounds keeps a circle of the given radius fully inside [0, w] x [0, h].
func ClampToBounds(p Vec, radius, w, h float64) Vec {
	return Vec{
		X: math.Max(radius, math.Min(w-radius, p.X)),
		Y: math.Max(radius, math.Min(h-radius, p.Y)),
	}
}

// Wrap moves a point that left [0, w] x [0, h] to the opposite edge.
func Wrap(p Vec, w, h float64) Vec {
	if p.X < 0 {
		p.X = w
	}
	if p.X > w {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = h
	}
	if p.Y > h {
		p.Y = 0
	}
	return p
}
