// Package numeric provides utility functions for numerical computations,
// particularly focused on handling the floating-point precision issues that
// show up constantly in a tolerance-driven sweep: near-equal coordinates,
// near-zero cross products, and near-collinear direction vectors.
//
// # Features
//
//   - Floating-Point Comparisons: Functions such as FloatEquals,
//     FloatGreaterThan, FloatLessThan, and their variants provide
//     robust comparisons between floating-point numbers using an epsilon
//     threshold to mitigate precision errors.
//
//   - Precision Adjustment: The SnapToEpsilon function allows
//     floating-point numbers to be snapped to the nearest whole number if
//     they are within an acceptable tolerance, reducing small precision
//     artifacts.
//
//   - Finiteness: Finite reports whether a value is usable as a segment
//     coordinate (not NaN, not +/-Inf).
//
// This package is particularly useful in scenarios where direct equality
// checks for floating-point numbers are unreliable due to the inherent
// imprecision of floating-point arithmetic.
package numeric
