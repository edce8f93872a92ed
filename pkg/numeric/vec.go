package numeric

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. The zero value is the origin.
type Vec2 struct{ X, Y float64 }

// Vec3 is a 3D vector. The zero value is the origin.
type Vec3 struct{ X, Y, Z float64 }

func NewVec2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Len returns the Euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Identical reports whether both vectors hold the same bit patterns.
// Unlike ==, a NaN component is identical to itself.
func (v Vec2) Identical(o Vec2) bool {
	return sameBits(v.X, o.X) && sameBits(v.Y, o.Y)
}

// Identical reports whether both vectors hold the same bit patterns.
func (v Vec3) Identical(o Vec3) bool {
	return sameBits(v.X, o.X) && sameBits(v.Y, o.Y) && sameBits(v.Z, o.Z)
}

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

func sameBits(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }
