package typesystem

import "fmt"

// MismatchError indicates that a value of type Got was found where one of
// Want was expected.
type MismatchError struct {
	What string
	Want []Type
	Got  Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s to be of type %s, got %s", e.What, Names(e.Want, " or "), e.Got)
}

func NewMismatchError(what string, got Type, want ...Type) *MismatchError {
	return &MismatchError{What: what, Want: want, Got: got}
}
