package validation

import (
	"math"

	"github.com/zeusync/numsafe/pkg/numeric"
)

// finite reports whether f is neither NaN nor ±Inf.
func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// AngleTraits validates numeric.Angle values. Default is 0 rad.
type AngleTraits struct{}

func (AngleTraits) IsFinite(a numeric.Angle) bool    { return finite(a.Radians()) }
func (AngleTraits) HasNaN(a numeric.Angle) bool      { return math.IsNaN(a.Radians()) }
func (AngleTraits) HasInfinity(a numeric.Angle) bool { return math.IsInf(a.Radians(), 0) }
func (AngleTraits) Default() numeric.Angle           { return numeric.Angle{} }

func (AngleTraits) Identical(a, b numeric.Angle) bool { return a.Identical(b) }

// Vec2Traits validates numeric.Vec2 values. Default is the origin.
type Vec2Traits struct{}

func (Vec2Traits) IsFinite(v numeric.Vec2) bool { return finite(v.X) && finite(v.Y) }
func (Vec2Traits) HasNaN(v numeric.Vec2) bool   { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
func (Vec2Traits) HasInfinity(v numeric.Vec2) bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}
func (Vec2Traits) Default() numeric.Vec2 { return numeric.Vec2{} }

func (Vec2Traits) Identical(a, b numeric.Vec2) bool { return a.Identical(b) }

// Vec3Traits validates numeric.Vec3 values. Default is the origin.
type Vec3Traits struct{}

func (Vec3Traits) IsFinite(v numeric.Vec3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func (Vec3Traits) HasNaN(v numeric.Vec3) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

func (Vec3Traits) HasInfinity(v numeric.Vec3) bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

func (Vec3Traits) Default() numeric.Vec3 { return numeric.Vec3{} }

func (Vec3Traits) Identical(a, b numeric.Vec3) bool { return a.Identical(b) }

// ColorTraits validates numeric.ColorF values. Default is opaque black and the
// declared range of every component is [0,1].
type ColorTraits struct{}

func (ColorTraits) IsFinite(c numeric.ColorF) bool {
	return finite(c.R) && finite(c.G) && finite(c.B) && finite(c.A)
}

func (ColorTraits) HasNaN(c numeric.ColorF) bool {
	return math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) || math.IsNaN(c.A)
}

func (ColorTraits) HasInfinity(c numeric.ColorF) bool {
	return math.IsInf(c.R, 0) || math.IsInf(c.G, 0) || math.IsInf(c.B, 0) || math.IsInf(c.A, 0)
}

func (ColorTraits) Default() numeric.ColorF { return numeric.NewColorF(0, 0, 0) }

func (ColorTraits) Identical(a, b numeric.ColorF) bool { return a.Identical(b) }

// InRange reports whether every component lies in [0,1]. NaN is never in range.
func (ColorTraits) InRange(c numeric.ColorF) bool {
	return unit(c.R) && unit(c.G) && unit(c.B) && unit(c.A)
}

// Clamp clamps each component into [0,1]. Non-finite components become 0.
func (ColorTraits) Clamp(c numeric.ColorF) numeric.ColorF {
	return numeric.ColorF{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func unit(f float64) bool { return f >= 0 && f <= 1 }

func clamp01(f float64) float64 {
	if !finite(f) {
		return 0
	}
	return min(max(f, 0), 1)
}

// IsFiniteAngle reports whether a holds a finite radian value.
func IsFiniteAngle(a numeric.Angle) bool { return AngleTraits{}.IsFinite(a) }

// IsFiniteVec2 reports whether every component of v is finite.
func IsFiniteVec2(v numeric.Vec2) bool { return Vec2Traits{}.IsFinite(v) }

// IsFiniteVec3 reports whether every component of v is finite.
func IsFiniteVec3(v numeric.Vec3) bool { return Vec3Traits{}.IsFinite(v) }

// IsFiniteColor reports whether every component of c is finite.
func IsFiniteColor(c numeric.ColorF) bool { return ColorTraits{}.IsFinite(c) }

// IsInUnitRange reports whether every component of c lies in [0,1].
func IsInUnitRange(c numeric.ColorF) bool { return ColorTraits{}.InRange(c) }

// Clamp01 clamps every component of c into [0,1]; non-finite components become 0.
func Clamp01(c numeric.ColorF) numeric.ColorF { return ColorTraits{}.Clamp(c) }
