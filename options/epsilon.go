package options

// WithEpsilon returns a [GeometryOptionsFunc] that sets the epsilon tolerance
// for functions that support it. Values within epsilon of each other are
// treated as equal.
//
// A negative epsilon defaults to 0 (exact comparisons).
func WithEpsilon(epsilon float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		opts.Epsilon = epsilon
	}
}
