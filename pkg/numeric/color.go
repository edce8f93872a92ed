package numeric

import "fmt"

// ColorF is an RGBA color with float components.
//
// The declared domain of every component is [0,1]; construction does not
// enforce it.
type ColorF struct {
	R, G, B, A float64
}

// NewColorF creates an opaque color (A = 1).
func NewColorF(r, g, b float64) ColorF { return ColorF{R: r, G: g, B: b, A: 1} }

// NewColorFA creates a color with explicit alpha.
func NewColorFA(r, g, b, a float64) ColorF { return ColorF{R: r, G: g, B: b, A: a} }

// Identical reports bit-level equality.
func (c ColorF) Identical(o ColorF) bool {
	return sameBits(c.R, o.R) && sameBits(c.G, o.G) && sameBits(c.B, o.B) && sameBits(c.A, o.A)
}

func (c ColorF) String() string { return fmt.Sprintf("(%g, %g, %g, %g)", c.R, c.G, c.B, c.A) }

// ColorByte is an RGBA color with 8-bit components. It cannot hold invalid
// numbers and needs no sanitizing.
type ColorByte struct {
	R, G, B, A uint8
}

// NewColorByte creates an opaque color (A = 255).
func NewColorByte(r, g, b uint8) ColorByte { return ColorByte{R: r, G: g, B: b, A: 255} }

// NewColorByteA creates a color with explicit alpha.
func NewColorByteA(r, g, b, a uint8) ColorByte { return ColorByte{R: r, G: g, B: b, A: a} }

func (c ColorByte) String() string { return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A) }
