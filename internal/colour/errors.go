package colour

import "fmt"

// InvalidColorError is returned for input that is not a #rrggbb colour.
type InvalidColorError struct {
	Input string
	Err   error
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid colour %q: want #rrggbb", e.Input)
}

func (e *InvalidColorError) Unwrap() error { return e.Err }
