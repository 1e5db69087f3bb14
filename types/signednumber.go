package types

// SignedNumber is a generic interface representing the signed numeric types
// supported by this library. Functions constrained by SignedNumber can handle
// integer and floating-point coordinates without being rewritten per type.
//
// Supported types:
//   - int
//   - int32
//   - int64
//   - float32
//   - float64
type SignedNumber interface {
	int | int32 | int64 | float32 | float64
}
