package coach

import "fmt"

// ErrMalformedSession reports persisted session data that reconstructs
// into an inconsistent shape. Hydration fails loudly instead of
// proceeding with a partially-built session that silently resets.
type ErrMalformedSession struct {
	Handle string
	Reason string
}

func (e *ErrMalformedSession) Error() string {
	return fmt.Sprintf("malformed session for %q: %s", e.Handle, e.Reason)
}
