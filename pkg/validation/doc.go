// Package validation classifies the numeric health of numeric value types and
// resolves violations according to a Policy.
//
// A Policy combines two independent axes: how invalid numbers (NaN, ±Inf) are
// handled and how declared-range violations are handled. Three presets cover
// the common cases:
//
//	Permissive()  ignore everything, values pass through untouched
//	Strict()      reject any violation
//	Safe()        substitute the type default for invalid numbers, clamp ranges
//
// Every sanitizer exposes a non-failing form returning (value, Status, ok) and
// an error-returning form built on it:
//
//	v, status, ok := validation.TrySanitizeVec3(pos, validation.Safe())
//	v, err := validation.SanitizeColor(tint, validation.Strict())
//
// Finiteness always takes priority over range: a value holding NaN is never
// reported as StatusOutOfRange. A finite, in-range value is returned as is.
//
// All functions are pure and safe for concurrent use.
package validation
