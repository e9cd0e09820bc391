package diag

// Shower is implemented by values that can render themselves for terminal
// output, like [Error] and [Context].
type Shower interface {
	// Show renders the value. Continuation lines are prefixed with the
	// indent.
	Show(indent string) string
}
