package options

// WithTolerance returns an Option that sets TOL, the proximity threshold used
// for point equality, event glomming, and the segment intersection classifier.
//
// If a negative tolerance is provided, it defaults to 0 (exact comparison).
func WithTolerance(tolerance float64) Option {
	return func(cfg *Config) {
		if tolerance < 0 {
			tolerance = 0
		}
		cfg.Tolerance = tolerance
	}
}

// WithValueSpread returns an Option that sets the default spacing between
// freshly minted status-tree keys. Values <= 0 are ignored (the default is kept).
func WithValueSpread(spread float64) Option {
	return func(cfg *Config) {
		if spread <= 0 {
			return
		}
		cfg.ValueSpread = spread
	}
}

// WithValueMin returns an Option that sets the minimum permitted separation
// between adjacent status-tree keys before a rebalance is triggered. Values
// <= 0 are ignored (the default is kept).
func WithValueMin(min float64) Option {
	return func(cfg *Config) {
		if min <= 0 {
			return
		}
		cfg.ValueMin = min
	}
}
