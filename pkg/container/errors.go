package container

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNoSuchElement is returned when an iterator is advanced past
	// its end or an element is requested from an empty container.
	ErrNoSuchElement = errors.New("no such element")

	// ErrIllegalState is returned by iterator operations that require
	// a preceding Next or Previous call which didn't happen.
	ErrIllegalState = errors.New("illegal iterator state")

	// ErrUnsupported is returned by mutators of read-only containers
	// and iterators.
	ErrUnsupported = errors.New("unsupported operation")
)

// ErrorInvalidArgument is returned when a precondition on an argument
// is violated. It is always returned before any mutation takes place.
type ErrorInvalidArgument struct {
	Argument string
	Message  string
}

func (e *ErrorInvalidArgument) Error() string {
	var b strings.Builder
	b.Grow(len("invalid argument ") + len(e.Argument) + len(": ") + len(e.Message))
	b.WriteString("invalid argument ")
	b.WriteString(e.Argument)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// ErrIndexOutOfBounds returns an ErrorInvalidArgument
// for index i outside of [0, length).
func ErrIndexOutOfBounds(i, length int) *ErrorInvalidArgument {
	return &ErrorInvalidArgument{
		Argument: "index",
		Message: "index " + strconv.Itoa(i) +
			" out of bounds for length " + strconv.Itoa(length),
	}
}
