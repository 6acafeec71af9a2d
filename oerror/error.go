package oerror

import "fmt"

// Error is an error raised by the block state registry.
type Error struct {
	Err string
}

func New(format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
