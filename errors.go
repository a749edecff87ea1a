package retained

import (
	"errors"

	"github.com/gogpu/retained/internal/assert"
)

// InvariantError reports a broken Block, Drawable or gradient controller
// precondition. Debug-only assertions panic with it; Block.Check and
// block.CheckChain return it so tools and tests can inspect a chain
// without recovering.
type InvariantError = assert.Error

// ErrInvariant matches every InvariantError via errors.Is.
var ErrInvariant = assert.ErrInvariant

// ErrInvalidState is returned when an object is initialized against an
// output surface that is already tearing down.
var ErrInvalidState = errors.New("retained: invalid state")

// SetVerify turns invariant checking on or off at runtime.
// Building with the retainedverify tag turns it on by default.
//
// While verification is on, blocks keep a shadow list of their members and
// audits walk every committed chain, so it should stay off in production.
func SetVerify(on bool) {
	assert.SetEnabled(on)
}

// Verifying reports whether invariant checking is active.
func Verifying() bool {
	return assert.Enabled()
}
