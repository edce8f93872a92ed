package validation

// ApplyInvalidNumberPolicy resolves an invalid-number violation on original.
//
// makeDefault runs only on the InvalidSubstitute branch. The boolean is false
// only under InvalidReject, in which case original is returned. Unknown policy
// values behave like InvalidIgnore.
func ApplyInvalidNumberPolicy[T any](original T, policy InvalidNumberPolicy, makeDefault func() T) (T, bool) {
	switch policy {
	case InvalidSubstitute:
		return makeDefault(), true
	case InvalidReject:
		return original, false
	default:
		return original, true
	}
}

// ApplyRangePolicy resolves a declared-range violation on original.
//
// clamp runs only on the RangeClamp branch. The boolean is false only under
// RangeReject. Unknown policy values behave like RangeIgnore.
func ApplyRangePolicy[T any](original T, policy RangePolicy, clamp func() T) (T, bool) {
	switch policy {
	case RangeClamp:
		return clamp(), true
	case RangeReject:
		return original, false
	default:
		return original, true
	}
}
