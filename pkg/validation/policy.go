package validation

import (
	"fmt"
	"strings"
)

// InvalidNumberPolicy selects how NaN and infinite components are resolved.
type InvalidNumberPolicy uint8

const (
	// InvalidIgnore passes the value through unchanged.
	InvalidIgnore InvalidNumberPolicy = iota
	// InvalidSubstitute replaces the value with the type default.
	InvalidSubstitute
	// InvalidReject fails the call.
	InvalidReject
)

// RangePolicy selects how declared-range violations are resolved.
type RangePolicy uint8

const (
	// RangeIgnore passes the value through unchanged.
	RangeIgnore RangePolicy = iota
	// RangeClamp clamps every component into the declared range.
	RangeClamp
	// RangeReject fails the call.
	RangeReject
)

// Policy is an immutable pair of resolution strategies.
type Policy struct {
	InvalidNumber InvalidNumberPolicy
	Range         RangePolicy
}

// NewPolicy combines both axes.
func NewPolicy(invalid InvalidNumberPolicy, rng RangePolicy) Policy {
	return Policy{InvalidNumber: invalid, Range: rng}
}

// Permissive ignores every violation.
func Permissive() Policy { return Policy{InvalidNumber: InvalidIgnore, Range: RangeIgnore} }

// Strict rejects every violation.
func Strict() Policy { return Policy{InvalidNumber: InvalidReject, Range: RangeReject} }

// Safe substitutes defaults for invalid numbers and clamps range violations.
func Safe() Policy { return Policy{InvalidNumber: InvalidSubstitute, Range: RangeClamp} }

var presets = map[string]Policy{
	"permissive": Permissive(),
	"strict":     Strict(),
	"safe":       Safe(),
}

// ParsePolicy resolves a preset name or an "<invalid>/<range>" pair such as
// "substitute/reject".
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if p, ok := presets[s]; ok {
		return p, nil
	}

	invalid, rng, found := strings.Cut(s, "/")
	if !found {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}

	inv, err := ParseInvalidNumberPolicy(invalid)
	if err != nil {
		return Policy{}, err
	}
	r, err := ParseRangePolicy(rng)
	if err != nil {
		return Policy{}, err
	}
	return Policy{InvalidNumber: inv, Range: r}, nil
}

// String returns the preset name when the pair matches one, otherwise the
// "<invalid>/<range>" form accepted by ParsePolicy.
func (p Policy) String() string {
	for name, preset := range presets {
		if preset == p {
			return name
		}
	}
	return p.InvalidNumber.String() + "/" + p.Range.String()
}

func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseInvalidNumberPolicy accepts "ignore", "substitute" (or "default") and "reject".
func ParseInvalidNumberPolicy(s string) (InvalidNumberPolicy, error) {
	var p InvalidNumberPolicy
	err := p.UnmarshalText([]byte(s))
	return p, err
}

// ParseRangePolicy accepts "ignore", "clamp" and "reject".
func ParseRangePolicy(s string) (RangePolicy, error) {
	var p RangePolicy
	err := p.UnmarshalText([]byte(s))
	return p, err
}

func (p InvalidNumberPolicy) String() string {
	switch p {
	case InvalidIgnore:
		return "ignore"
	case InvalidSubstitute:
		return "substitute"
	case InvalidReject:
		return "reject"
	default:
		return fmt.Sprintf("InvalidNumberPolicy(%d)", uint8(p))
	}
}

func (p InvalidNumberPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *InvalidNumberPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "ignore":
		*p = InvalidIgnore
	case "substitute", "default":
		*p = InvalidSubstitute
	case "reject":
		*p = InvalidReject
	default:
		return fmt.Errorf("%w: invalid-number policy %q", ErrUnknownPolicy, text)
	}
	return nil
}

func (p RangePolicy) String() string {
	switch p {
	case RangeIgnore:
		return "ignore"
	case RangeClamp:
		return "clamp"
	case RangeReject:
		return "reject"
	default:
		return fmt.Sprintf("RangePolicy(%d)", uint8(p))
	}
}

func (p RangePolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *RangePolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "ignore":
		*p = RangeIgnore
	case "clamp":
		*p = RangeClamp
	case "reject":
		*p = RangeReject
	default:
		return fmt.Errorf("%w: range policy %q", ErrUnknownPolicy, text)
	}
	return nil
}
