package bag

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange signals an index or segment boundary outside of the
	// list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyList signals an operation that needs at least one element.
	ErrEmptyList = errors.New("illegal operation on empty list")
	// ErrInvalidSegment signals a zero-length segment where one is not
	// allowed, or two segments that overlap.
	ErrInvalidSegment = errors.New("invalid segment")
	// ErrSelfEmbed signals an attempt to splice a list into itself.
	ErrSelfEmbed = errors.New("list cannot be embedded within itself")
	// ErrCursorNotStarted signals access through a cursor before the first
	// call to Next.
	ErrCursorNotStarted = errors.New("Next must be called first")
	// ErrNoSuchElement signals advancing a cursor past the last element or
	// asking for the first or last element of an empty list.
	ErrNoSuchElement = errors.New("no such element")
	// ErrConcurrentModification signals that a list was structurally changed
	// behind the back of a cursor.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrInvalidArgument signals any other precondition violation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Validate returns value if ok is true. Otherwise it returns the zero value
// and err, wrapped with the formatted message if format is not empty.
func Validate[T any](ok bool, value T, err error, format string, a ...any) (T, error) {
	if ok {
		return value, nil
	}
	var zero T
	if format == "" {
		return zero, err
	}
	return zero, fmt.Errorf("%w: %s", err, fmt.Sprintf(format, a...))
}

// CheckIndex makes sure that 0 <= index < size.
func CheckIndex(index, size int) error {
	_, err := Validate(index >= 0 && index < size, index, ErrIndexOutOfRange, "index %d, size %d", index, size)
	return err
}

// CheckInclusive makes sure that 0 <= index <= size, which is the range of
// valid insertion points.
func CheckInclusive(index, size int) error {
	_, err := Validate(index >= 0 && index <= size, index, ErrIndexOutOfRange, "index %d, size %d", index, size)
	return err
}

// CheckFromTo makes sure that [from, to) is a (possibly empty) segment of a
// list with size elements and returns its length.
func CheckFromTo(from, to, size int) (int, error) {
	return Validate(from >= 0 && from <= to && to <= size, to-from, ErrIndexOutOfRange, "from %d, to %d, size %d", from, to, size)
}

// Must panics if err is not nil and returns val otherwise.
func Must[T any](val T, err error) T {
	if err != nil {
		if Logger != nil {
			Logger.Error(err)
		}
		panic(err)
	}
	return val
}
