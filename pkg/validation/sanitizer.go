package validation

import "github.com/zeusync/numsafe/pkg/numeric"

// Traits is the capability set a value type needs to be sanitized.
type Traits[T any] interface {
	IsFinite(v T) bool
	HasNaN(v T) bool
	HasInfinity(v T) bool
	// Default is substituted under InvalidSubstitute.
	Default() T
	// Identical reports bit-level equality, treating NaN as equal to itself.
	Identical(a, b T) bool
}

// RangeTraits is implemented by value types with a declared component range.
type RangeTraits[T any] interface {
	Traits[T]
	InRange(v T) bool
	Clamp(v T) T
}

// Sanitizer applies a Policy to values of one type. It is stateless and safe
// for concurrent use.
type Sanitizer[T any] struct {
	name   string
	traits Traits[T]
	ranged RangeTraits[T]
}

// NewSanitizer builds a sanitizer named after the type it handles. When traits
// also implements RangeTraits the declared range is checked after finiteness.
func NewSanitizer[T any](name string, traits Traits[T]) *Sanitizer[T] {
	s := &Sanitizer[T]{name: name, traits: traits}
	if r, ok := traits.(RangeTraits[T]); ok {
		s.ranged = r
	}
	return s
}

// Sanitizers for the built-in numeric types.
var (
	Angles = NewSanitizer[numeric.Angle]("Angle", AngleTraits{})
	Vec2s  = NewSanitizer[numeric.Vec2]("Vec2", Vec2Traits{})
	Vec3s  = NewSanitizer[numeric.Vec3]("Vec3", Vec3Traits{})
	Colors = NewSanitizer[numeric.ColorF]("ColorF", ColorTraits{})
)

func (s *Sanitizer[T]) Name() string { return s.name }

// Traits exposes the validators behind the sanitizer.
func (s *Sanitizer[T]) Traits() Traits[T] { return s.traits }

// Ranged reports whether the sanitizer checks a declared range.
func (s *Sanitizer[T]) Ranged() bool { return s.ranged != nil }

// TrySanitize classifies v and resolves any violation per policy.
//
// Finiteness is checked first; a non-finite value is resolved by the
// invalid-number policy and its range is never inspected. ok is false only
// when the relevant policy axis rejects. A clean value is returned unchanged.
func (s *Sanitizer[T]) TrySanitize(v T, policy Policy) (sanitized T, status Status, ok bool) {
	if !s.traits.IsFinite(v) {
		status = nonFiniteStatus(s.traits.HasNaN(v), s.traits.HasInfinity(v))
		sanitized, ok = ApplyInvalidNumberPolicy(v, policy.InvalidNumber, s.traits.Default)
		return sanitized, status, ok
	}

	if s.ranged != nil && !s.ranged.InRange(v) {
		sanitized, ok = ApplyRangePolicy(v, policy.Range, func() T { return s.ranged.Clamp(v) })
		return sanitized, StatusOutOfRange, ok
	}

	return v, StatusNone, true
}

// Sanitize is TrySanitize returning an *Error when the policy rejects v.
func (s *Sanitizer[T]) Sanitize(v T, policy Policy) (T, error) {
	sanitized, status, ok := s.TrySanitize(v, policy)
	if !ok {
		return sanitized, &Error{Type: s.name, Value: v, Status: status, Policy: policy}
	}
	return sanitized, nil
}

// MustSanitize is like Sanitize but panics with the *Error on rejection.
func (s *Sanitizer[T]) MustSanitize(v T, policy Policy) T {
	sanitized, err := s.Sanitize(v, policy)
	if err != nil {
		panic(err)
	}
	return sanitized
}

// Check classifies v without resolving anything.
func (s *Sanitizer[T]) Check(v T) Status {
	_, status, _ := s.TrySanitize(v, Permissive())
	return status
}

func TrySanitizeAngle(a numeric.Angle, p Policy) (numeric.Angle, Status, bool) {
	return Angles.TrySanitize(a, p)
}

func SanitizeAngle(a numeric.Angle, p Policy) (numeric.Angle, error) { return Angles.Sanitize(a, p) }

func TrySanitizeVec2(v numeric.Vec2, p Policy) (numeric.Vec2, Status, bool) {
	return Vec2s.TrySanitize(v, p)
}

func SanitizeVec2(v numeric.Vec2, p Policy) (numeric.Vec2, error) { return Vec2s.Sanitize(v, p) }

func TrySanitizeVec3(v numeric.Vec3, p Policy) (numeric.Vec3, Status, bool) {
	return Vec3s.TrySanitize(v, p)
}

func SanitizeVec3(v numeric.Vec3, p Policy) (numeric.Vec3, error) { return Vec3s.Sanitize(v, p) }

func TrySanitizeColor(c numeric.ColorF, p Policy) (numeric.ColorF, Status, bool) {
	return Colors.TrySanitize(c, p)
}

func SanitizeColor(c numeric.ColorF, p Policy) (numeric.ColorF, error) { return Colors.Sanitize(c, p) }
