package diag

import (
	"github.com/sable-lang/sable/pkg/strutil"
)

// Error represents an error with context that can be showed.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Variables controlling the style of the error message. Can be overridden in
// tests.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return e.Type + ": " + e.Context.describePosition() + ": " + e.Message
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error. The first line contains the error type and the
// message, and the second line contains the context.
func (e *Error) Show(indent string) string {
	return strutil.Title(e.Type) + ": " + messageStart + e.Message + messageEnd +
		"\n" + indent + "  " + e.Context.Show(indent+"  ")
}
