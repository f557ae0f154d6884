package mcclellan

// Grey is the set of feature toggles the compiler consults. It is the only
// process-wide state the compiler reads; it is always passed explicitly,
// never stored in a package-level variable.
type Grey struct {
	// AccelerateDFA enables acceleration analysis (accel.go). When false,
	// no state is ever marked accelerable and no AccelAux is emitted.
	AccelerateDFA bool

	// AllowShermanStates enables the Sherman selector (sherman.go). When
	// false, every state compiles as a normal, fully-materialized
	// transition row.
	AllowShermanStates bool

	// AllowMcClellan8 permits the 8-bit packed layout when the state count
	// allows it (<= 256 states). When false, the compiler always emits the
	// 16-bit layout.
	AllowMcClellan8 bool
}

// DefaultGrey returns the feature toggles a production build would use:
// every optimization enabled.
func DefaultGrey() Grey {
	return Grey{
		AccelerateDFA:      true,
		AllowShermanStates: true,
		AllowMcClellan8:    true,
	}
}

// CompileContext bundles the feature toggles with the one compile-mode flag
// that changes input handling: whether the compiled image must support
// streaming (multi-call) scans, which disables the EOD-report stripping
// optimization (rawdfa.go's StripExtraEodReports).
type CompileContext struct {
	Grey      Grey
	Streaming bool
}

// DefaultCompileContext returns a CompileContext with DefaultGrey and
// Streaming false.
func DefaultCompileContext() CompileContext {
	return CompileContext{Grey: DefaultGrey()}
}
