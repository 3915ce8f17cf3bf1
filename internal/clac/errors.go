package clac

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is returned by Step and Run after executing quit; it signals a
	// normal halt rather than a failure.
	ErrQuit = errors.New("quit")

	ErrEmptyProgram    = errors.New("empty program")
	ErrOperandShortage = errors.New("not enough operands")
	ErrQueueUnderflow  = errors.New("not enough queued instructions")
	ErrUndefinedSymbol = errors.New("undefined symbol")
	ErrMalformedDefine = errors.New("malformed definition")
	ErrStrayDefineEnd  = errors.New("unexpected ;")
	ErrArithmetic      = errors.New("arithmetic error")

	ErrDivideByZero     error = arithError("divide by zero")
	ErrOverflow         error = arithError("overflow")
	ErrNegativeExponent error = arithError("negative exponent")
)

type arithError string

func (err arithError) Error() string        { return string(err) }
func (err arithError) Is(target error) bool { return target == ErrArithmetic }

// OpError describes the failure of a single instruction; it wraps one of the
// Err* sentinels above.
type OpError struct {
	In     Instruction
	Err    error
	Detail string
}

func (err *OpError) Error() string {
	if err.Detail != "" {
		return fmt.Sprintf("%v: %v (%v)", err.In, err.Err, err.Detail)
	}
	return fmt.Sprintf("%v: %v", err.In, err.Err)
}

func (err *OpError) Unwrap() error { return err.Err }

func opError(in Instruction, err error) error { return &OpError{In: in, Err: err} }

func opErrorf(in Instruction, err error, detail string, args ...interface{}) error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &OpError{In: in, Err: err, Detail: detail}
}
