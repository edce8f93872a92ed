package numeric

import (
	"cmp"
	"fmt"
	"math"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Angle is an angle stored in radians. The zero value is 0 rad.
type Angle struct {
	rad float64
}

// FromRadians creates an angle from radians.
func FromRadians(rad float64) Angle { return Angle{rad: rad} }

// FromDegrees creates an angle from degrees, converting to radians once.
func FromDegrees(deg float64) Angle { return Angle{rad: deg * degToRad} }

func (a Angle) Radians() float64 { return a.rad }
func (a Angle) Degrees() float64 { return a.rad * radToDeg }

func (a Angle) Add(b Angle) Angle { return Angle{rad: a.rad + b.rad} }
func (a Angle) Sub(b Angle) Angle { return Angle{rad: a.rad - b.rad} }

// Compare orders angles by their radian value. NaN sorts before everything.
func (a Angle) Compare(b Angle) int { return cmp.Compare(a.rad, b.rad) }

// Identical reports bit-level equality.
func (a Angle) Identical(b Angle) bool { return sameBits(a.rad, b.rad) }

// String formats the angle in degrees.
func (a Angle) String() string { return fmt.Sprintf("%.1f°", a.Degrees()) }
