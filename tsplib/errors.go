package tsplib

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind.
var (
	ErrNoFile               = errors.New("tsplib: cannot open file")
	ErrWrongDistanceMeasure = errors.New("tsplib: unsupported edge weight type")
	ErrWrongType            = errors.New("tsplib: unsupported problem type")
	ErrWrongFormat          = errors.New("tsplib: malformed input")
)

// Kind classifies a ReadError.
type Kind int

const (
	KindNoFile Kind = iota
	KindWrongDistanceMeasure
	KindWrongType
	KindWrongFormat
)

func (k Kind) String() string {
	switch k {
	case KindNoFile:
		return "NoFile"
	case KindWrongDistanceMeasure:
		return "WrongDistanceMeasure"
	case KindWrongType:
		return "WrongType"
	case KindWrongFormat:
		return "WrongFormat"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ReadError reports why an instance could not be read. Line is the 1-based
// input line, or 0 when the error is not tied to a line.
type ReadError struct {
	Kind Kind
	Line int
	Text string
	Err  error // underlying I/O or parse error, if any
}

func (e *ReadError) Error() string {
	msg := e.sentinel().Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s: line %d", msg, e.Line)
	}
	if e.Text != "" {
		msg += ": " + e.Text
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the Kind's sentinel and the underlying error.
func (e *ReadError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.sentinel(), e.Err}
	}
	return []error{e.sentinel()}
}

func (e *ReadError) sentinel() error {
	switch e.Kind {
	case KindNoFile:
		return ErrNoFile
	case KindWrongDistanceMeasure:
		return ErrWrongDistanceMeasure
	case KindWrongType:
		return ErrWrongType
	default:
		return ErrWrongFormat
	}
}

func formatError(line int, format string, args ...any) *ReadError {
	return &ReadError{Kind: KindWrongFormat, Line: line, Text: fmt.Sprintf(format, args...)}
}
