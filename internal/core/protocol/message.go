package protocol

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/zeusync/numsafe/pkg/numeric"
)

// Kind identifies which entity property an update carries.
type Kind uint8

const (
	KindPosition Kind = iota + 1 // numeric.Vec3
	KindVelocity                 // numeric.Vec2
	KindHeading                  // numeric.Angle, radians
	KindTint                     // numeric.ColorF
	KindTint32                   // numeric.ColorByte
)

// headerSize is the entity id followed by the kind byte.
const headerSize = 16 + 1

func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindVelocity:
		return "velocity"
	case KindHeading:
		return "heading"
	case KindTint:
		return "tint"
	case KindTint32:
		return "tint32"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// payloadSize returns the fixed payload length of k, or -1 for unknown kinds.
func (k Kind) payloadSize() int {
	switch k {
	case KindPosition:
		return 3 * 8
	case KindVelocity:
		return 2 * 8
	case KindHeading:
		return 8
	case KindTint:
		return 4 * 8
	case KindTint32:
		return 4
	default:
		return -1
	}
}

// Update is a single property change for one entity. Only the field matching
// Kind is meaningful.
type Update struct {
	Entity   uuid.UUID
	Kind     Kind
	Position numeric.Vec3
	Velocity numeric.Vec2
	Heading  numeric.Angle
	Tint     numeric.ColorF
	Tint32   numeric.ColorByte
}

// Frame layout, little endian, no padding:
//
//	[0:16]  entity uuid
//	[16]    kind
//	[17:]   payload, float64 components or 4 raw bytes for KindTint32
//
// Floats travel as raw IEEE-754 bits, so NaN and ±Inf survive the trip and
// must be sanitized by the receiver.

// Encode serializes u into a new frame.
func Encode(u Update) ([]byte, error) {
	return AppendFrame(nil, u)
}

// AppendFrame appends the frame for u to dst.
func AppendFrame(dst []byte, u Update) ([]byte, error) {
	size := u.Kind.payloadSize()
	if size < 0 {
		return dst, fmt.Errorf("encode %s: %w", u.Kind, ErrUnknownKind)
	}
	if u.Entity == uuid.Nil {
		return dst, ErrNilEntity
	}

	dst = append(dst, u.Entity[:]...)
	dst = append(dst, byte(u.Kind))

	switch u.Kind {
	case KindPosition:
		dst = appendFloats(dst, u.Position.X, u.Position.Y, u.Position.Z)
	case KindVelocity:
		dst = appendFloats(dst, u.Velocity.X, u.Velocity.Y)
	case KindHeading:
		dst = appendFloats(dst, u.Heading.Radians())
	case KindTint:
		dst = appendFloats(dst, u.Tint.R, u.Tint.G, u.Tint.B, u.Tint.A)
	case KindTint32:
		dst = append(dst, u.Tint32.R, u.Tint32.G, u.Tint32.B, u.Tint32.A)
	}
	return dst, nil
}

// Decode parses a single frame. The payload is not validated numerically.
func Decode(frame []byte) (Update, error) {
	var u Update
	if len(frame) < headerSize {
		return u, fmt.Errorf("decode: %d bytes: %w", len(frame), ErrShortFrame)
	}

	copy(u.Entity[:], frame[:16])
	if u.Entity == uuid.Nil {
		return u, ErrNilEntity
	}
	u.Kind = Kind(frame[16])

	size := u.Kind.payloadSize()
	if size < 0 {
		return u, fmt.Errorf("decode %s: %w", u.Kind, ErrUnknownKind)
	}

	payload := frame[headerSize:]
	switch {
	case len(payload) < size:
		return u, fmt.Errorf("decode %s: want %d payload bytes, got %d: %w", u.Kind, size, len(payload), ErrShortFrame)
	case len(payload) > size:
		return u, fmt.Errorf("decode %s: %w", u.Kind, ErrTrailingData)
	}

	switch u.Kind {
	case KindPosition:
		u.Position = numeric.Vec3{X: f64At(payload, 0), Y: f64At(payload, 1), Z: f64At(payload, 2)}
	case KindVelocity:
		u.Velocity = numeric.Vec2{X: f64At(payload, 0), Y: f64At(payload, 1)}
	case KindHeading:
		u.Heading = numeric.FromRadians(f64At(payload, 0))
	case KindTint:
		u.Tint = numeric.ColorF{R: f64At(payload, 0), G: f64At(payload, 1), B: f64At(payload, 2), A: f64At(payload, 3)}
	case KindTint32:
		u.Tint32 = numeric.ColorByte{R: payload[0], G: payload[1], B: payload[2], A: payload[3]}
	}
	return u, nil
}

// Split cuts a message holding one or more back to back frames into single
// frames without decoding their payloads. The returned slices alias data.
func Split(data []byte) ([][]byte, error) {
	var frames [][]byte
	for len(data) > 0 {
		if len(data) < headerSize {
			return nil, fmt.Errorf("split: %d bytes left: %w", len(data), ErrShortFrame)
		}
		kind := Kind(data[16])
		size := kind.payloadSize()
		if size < 0 {
			return nil, fmt.Errorf("split %s: %w", kind, ErrUnknownKind)
		}
		n := headerSize + size
		if len(data) < n {
			return nil, fmt.Errorf("split %s: want %d bytes, got %d: %w", kind, n, len(data), ErrShortFrame)
		}
		frames = append(frames, data[:n:n])
		data = data[n:]
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("split: empty message: %w", ErrShortFrame)
	}
	return frames, nil
}

func appendFloats(dst []byte, fs ...float64) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(f))
	}
	return dst
}

func f64At(b []byte, i int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
}
