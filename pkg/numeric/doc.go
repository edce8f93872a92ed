// Package numeric holds the immutable value types synchronized between peers:
// 2D and 3D vectors, angles, float colors and byte colors.
//
// The types carry no validation logic. Components may hold NaN or ±Inf; use
// package validation to classify and repair them.
package numeric
