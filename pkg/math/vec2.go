// Package math provides math types and functions for game development.
package math

import "math"

// Vec2 is a 2D vector in map space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp returns the point a fraction t of the way from v to other.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// Heading returns the unit vector pointing forward for the given view angle.
// Angle 0 looks toward negative Y (up the map).
func Heading(angle float64) Vec2 {
	return Vec2{-math.Sin(angle), -math.Cos(angle)}
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorMod returns a mod n with the sign of n, so the result is always in [0, n) for n > 0.
func FloorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// SmoothFactor returns the exponential smoothing weight for a frame of length dt
// seconds such that 1-retain of the remaining gap closes every second.
func SmoothFactor(retain, dt float64) float64 {
	return 1 - math.Pow(retain, dt)
}
