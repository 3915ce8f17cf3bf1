package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/goclac/internal/clac"
	"github.com/jcorbin/goclac/internal/fileinput"
)

// Session drives a single clac machine through lines of input: every line is
// tokenized and run to completion before the next is read, and the machine's
// state carries over from line to line for the life of the session.
type Session struct {
	Core

	machine *clac.Machine
	errorfn func(mess string, args ...interface{})

	trace   bool
	banner  bool
	onError ErrorPolicy

	failed int
}

// ErrorPolicy decides what a Session does after a line fails.
type ErrorPolicy string

const (
	// AbortLine reports the failure, discards anything left queued by the
	// line, and continues with the next line.
	AbortLine ErrorPolicy = "line"

	// AbortSession stops the session at the first failure.
	AbortSession ErrorPolicy = "session"
)

func (p ErrorPolicy) String() string { return string(p) }

// Set implements flag.Value.
func (p *ErrorPolicy) Set(s string) error {
	switch policy := ErrorPolicy(s); policy {
	case AbortLine, AbortSession, "":
		*p = policy
		return nil
	default:
		return fmt.Errorf("invalid error policy %q, want %q or %q", s, AbortLine, AbortSession)
	}
}

// LineError is a failure of one input line.
type LineError struct {
	fileinput.Location
	Line string
	Err  error
}

func (err *LineError) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Err) }
func (err *LineError) Unwrap() error { return err.Err }

const (
	banner   = "goclac: a postfix stack calculator\nType quit or ^D to exit.\n\n"
	farewell = "\nbye\n"
)

// State returns the session's interpreter state.
func (s *Session) State() *clac.State {
	s.init()
	return s.machine.State
}

// Failed returns the number of lines that have failed so far.
func (s *Session) Failed() int { return s.failed }

func (s *Session) init() {
	if s.machine != nil {
		return
	}
	opts := []clac.Option{clac.WithOutput(s.out)}
	if s.trace && s.logfn != nil {
		logfn := s.logfn
		opts = append(opts, clac.WithLogf(func(mess string, args ...interface{}) {
			logfn("\t"+mess, args...)
		}))
	}
	s.machine = clac.New(opts...)
}

func (s *Session) run(ctx context.Context) (rerr error) {
	s.init()

	defer func() {
		halted := isHalt(rerr)
		if halted && s.banner {
			if err := s.writeString(farewell); err != nil {
				rerr, halted = err, false
			}
		}
		if err := s.flush(); err != nil && halted {
			rerr = err
		}
	}()

	if s.banner {
		if err := s.writeString(banner); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.readLine()
		if err != nil {
			return err
		}

		if err := s.runLine(ctx, line); err != nil {
			return err
		}
	}
}

func (s *Session) runLine(ctx context.Context, line string) error {
	prog := clac.Tokenize(line)
	if len(prog) == 0 {
		return nil
	}

	s.logf(">", "%v %v", s.loc, prog)
	err := s.machine.Run(ctx, prog)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, clac.ErrQuit):
		s.logf("#", "quit @%v", s.loc)
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}

	s.failed++
	lerr := &LineError{Location: s.loc, Line: line, Err: err}
	s.logf("#", "fail: %v", lerr)
	if s.policy() == AbortSession {
		return lerr
	}
	if s.errorfn != nil {
		s.errorfn("%v", lerr)
	}
	if n := s.machine.Pending(); n > 0 {
		s.logf("#", "discarding %v queued instructions", n)
		s.machine.ClearQueue()
	}
	return nil
}

func (s *Session) policy() ErrorPolicy {
	if s.onError != "" {
		return s.onError
	}
	if s.editor != nil {
		return AbortLine
	}
	return AbortSession
}

// isHalt returns true if err indicates a normal end of session: running out
// of input or executing quit.
func isHalt(err error) bool {
	return err == nil || errors.Is(err, io.EOF) || errors.Is(err, clac.ErrQuit)
}
