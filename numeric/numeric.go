// Package numeric provides the scalar comparison helpers used throughout the
// sweep library.
//
// # Overview
//
// Floating-point arithmetic makes direct equality checks unreliable: two
// values that are mathematically identical can differ after a handful of
// operations. Every equality and ordering decision the sweep engine makes
// therefore goes through this package, parameterised by a single epsilon
// tolerance chosen by the caller.
//
// # Features
//
//   - Tolerant comparisons: FloatEquals, FloatLessThan, FloatGreaterThan and
//     their OrEqualTo variants treat values within epsilon of each other as
//     equal.
//
//   - Three-way comparison: FloatCompare returns -1, 0 or +1 under the same
//     tolerance, for use in tree comparators.
//
//   - Precision adjustment: SnapToEpsilon rounds a value to the nearest whole
//     number when it is within epsilon of it, removing small artifacts from
//     computed intersection coordinates.
//
// An epsilon of 0 disables the tolerance and all comparisons become exact.
package numeric
