package cinder

import (
	"fmt"
	"math"
	"os"
)

// debugMode enables hard failures for malformed numeric input that release
// builds recover from silently. Toggle with SetDebug.
var debugMode bool

// SetDebug enables or disables debug checks. With debug on, Vector2
// operations panic on non-finite operands instead of defaulting them to
// zero, so the offending call site appears in the stack trace.
func SetDebug(enabled bool) {
	debugMode = enabled
}

// DebugEnabled reports whether debug checks are on.
func DebugEnabled() bool {
	return debugMode
}

// warnf prints a non-fatal diagnostic to stderr. Used for caller errors
// that are reported and then ignored (foreign pool release, reflecting
// over a zero normal).
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[cinder] warning: "+format+"\n", args...)
}

// finiteOr sanitizes a single operand: non-finite values become the
// fallback. In debug mode a non-finite operand panics with the operation
// name instead (the release-mode default would silently mask the bug).
func finiteOr(op string, v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if debugMode {
			panic(fmt.Sprintf("cinder debug: non-finite operand %v in Vector2.%s", v, op))
		}
		return fallback
	}
	return v
}
