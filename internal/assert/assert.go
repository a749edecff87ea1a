// Package assert provides the debug-only invariant checks used across
// retained. Checks are active when the module is built with the
// retainedverify tag or when verification is switched on at runtime;
// otherwise every check is a no-op.
package assert

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrInvariant is matched by every Error via errors.Is.
var ErrInvariant = errors.New("retained: invariant violation")

// Error describes a violated precondition or postcondition.
// It always indicates a bug in the caller, never a runtime condition.
type Error struct {
	Op  string // operation that detected the violation, e.g. "Block.Dispose"
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("retained: invariant violation in %s: %s", e.Op, e.Msg)
}

// Is reports whether target is ErrInvariant.
func (e *Error) Is(target error) bool {
	return target == ErrInvariant
}

var enabled atomic.Bool

func init() {
	enabled.Store(buildVerify)
}

// Enabled reports whether invariant checks are active.
// Callers guard expensive checks (list walks, scans) with it.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled switches invariant checking on or off at runtime.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// That panics with an *Error when checks are enabled and cond is false.
func That(cond bool, op, format string, args ...any) {
	if cond || !enabled.Load() {
		return
	}
	panic(&Error{Op: op, Msg: fmt.Sprintf(format, args...)})
}
