// Package types defines the core type constraints shared across the sweep
// library.
//
// The only constraint at present is [SignedNumber], which restricts generic
// helpers (such as segment.New and numeric.Abs) to signed numeric types.
package types
