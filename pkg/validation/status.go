package validation

// Status classifies the outcome of a sanitize call. Exactly one status is
// produced per call.
type Status uint8

const (
	// StatusNone means no issue was found.
	StatusNone Status = iota
	// StatusNaN means some component is NaN and none is infinite.
	StatusNaN
	// StatusInfinity means some component is infinite and none is NaN.
	StatusInfinity
	// StatusNotFinite means NaN and infinite components are mixed.
	StatusNotFinite
	// StatusOutOfRange means every component is finite but a declared range is violated.
	StatusOutOfRange
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusNaN:
		return "nan"
	case StatusInfinity:
		return "infinity"
	case StatusNotFinite:
		return "not_finite"
	case StatusOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// IsInvalidNumber reports whether s describes a NaN or infinite component.
func (s Status) IsInvalidNumber() bool {
	return s == StatusNaN || s == StatusInfinity || s == StatusNotFinite
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, bool) {
	for st := StatusNone; st <= StatusOutOfRange; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return StatusNone, false
}

// nonFiniteStatus picks the status for a value that already failed IsFinite.
// Reaching it with neither flag set means the traits disagree with each other.
func nonFiniteStatus(hasNaN, hasInf bool) Status {
	switch {
	case hasNaN && hasInf:
		return StatusNotFinite
	case hasNaN:
		return StatusNaN
	case hasInf:
		return StatusInfinity
	default:
		panic("validation: non-finite value has neither NaN nor Inf components")
	}
}
