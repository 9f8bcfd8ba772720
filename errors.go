package strptime

import (
	"github.com/imarsman/strptime/pkg/utility"
	"github.com/pkg/errors"
	"lab.nexedi.com/kirr/go123/xfmt"
)

// ErrNoMatch is returned, possibly wrapped with the directive and position at
// which parsing stopped, for every parse failure. Callers should test for it
// with errors.Is and discard the Tm they passed in, which may have been
// partially written.
var ErrNoMatch = errors.New("strptime: no match")

// noMatch wrap ErrNoMatch with the failing directive and input position.
// A directive of 0 means a literal in the format.
func noMatch(directive byte, reason string, pos int) error {
	// Avoid allocations that would occur with fmt.Sprintf
	xfmtBuf := new(xfmt.Buffer)
	if directive == 0 {
		xfmtBuf.S("literal")
	} else {
		xfmtBuf.S("%").S(utility.BytesToString(directive))
	}
	xfmtBuf.S(": ").S(reason).S(" at position ").D(pos)

	return errors.Wrap(ErrNoMatch, utility.BytesToString(xfmtBuf.Bytes()...))
}
