//go:build !debug

package debug

// Enabled reports whether debug tracing is compiled in.
const Enabled = false

// Logf is a no-op in production builds; the compiler inlines it away.
func Logf(format string, args ...any) {}
