package palette

import "fmt"

// PersistenceError reports that a mutation could not be written to the
// backing store. The palette is left as it was before the call.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("palette %s: persist %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
