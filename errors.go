package tagval

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code uint8

const (
	CodeNone Code = iota
	CodeNotComparable
	CodeIncorrectType
	CodeInvalidObject
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeNotComparable:
		return "not-comparable"
	case CodeIncorrectType:
		return "incorrect-type"
	case CodeInvalidObject:
		return "invalid-object"
	default:
		return fmt.Sprintf("code(%d)", uint8(c))
	}
}

var (
	ErrNotComparable = errors.New("values are not comparable")
	ErrIncorrectType = errors.New("incorrect value type")
	ErrInvalidObject = errors.New("invalid object")
)

// Error reports a failed operation on a Value. Want and Got are only set
// for CodeIncorrectType and CodeNotComparable.
type Error struct {
	Op   string
	Code Code
	Want Kind
	Got  Kind
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeIncorrectType:
		return fmt.Sprintf("%s: %v: want %s, got %s", e.Op, e.sentinel(), e.Want, e.Got)
	case CodeNotComparable:
		return fmt.Sprintf("%s: %v: %s and %s", e.Op, e.sentinel(), e.Want, e.Got)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.sentinel())
	}
}

// Unwrap returns the sentinel error matching e.Code.
func (e *Error) Unwrap() error {
	return e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Code {
	case CodeNotComparable:
		return ErrNotComparable
	case CodeIncorrectType:
		return ErrIncorrectType
	case CodeInvalidObject:
		return ErrInvalidObject
	default:
		return nil
	}
}

// CodeOf returns the Code carried by err, CodeNone for nil.
func CodeOf(err error) Code {
	if err == nil {
		return CodeNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	switch {
	case errors.Is(err, ErrNotComparable):
		return CodeNotComparable
	case errors.Is(err, ErrIncorrectType):
		return CodeIncorrectType
	case errors.Is(err, ErrInvalidObject):
		return CodeInvalidObject
	}
	// Errors outside the taxonomy mark the object as unusable.
	return CodeInvalidObject
}

func invalidObject(op string) error {
	return fail(&Error{Op: op, Code: CodeInvalidObject})
}

func incorrectType(op string, want, got Kind) error {
	return fail(&Error{Op: op, Code: CodeIncorrectType, Want: want, Got: got})
}

func notComparable(op string, a, b Kind) error {
	return fail(&Error{Op: op, Code: CodeNotComparable, Want: a, Got: b})
}

// fail records err on the default channel and returns it.
func fail(err *Error) error {
	defaultChannel.Set(err.Code)
	return err
}
