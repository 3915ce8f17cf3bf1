package clac

import (
	"context"
	"io"
)

// Machine executes clac instructions against a State, writing printed
// values to its output.
type Machine struct {
	*State

	last  Instruction // most recently executed
	out   io.Writer
	logfn func(mess string, args ...interface{})
}

// Option configures a Machine.
type Option interface{ apply(m *Machine) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type options []Option

func (opts options) apply(m *Machine) {
	for _, opt := range opts {
		opt.apply(m)
	}
}

type withState struct{ *State }
type withOutput struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})

// WithState runs the machine against an existing state, rather than a new
// empty one.
func WithState(st *State) Option { return withState{st} }

// WithOutput sets where print writes; output is discarded by default.
func WithOutput(w io.Writer) Option { return withOutput{w} }

// WithLogf enables trace logging of every executed step.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

func (o withState) apply(m *Machine)  { m.State = o.State }
func (o withOutput) apply(m *Machine) { m.out = o.Writer }
func (fn withLogfn) apply(m *Machine) { m.logfn = fn }

// New creates a Machine.
func New(opts ...Option) *Machine {
	var m Machine
	if opt := Options(opts...); opt != nil {
		opt.apply(&m)
	}
	if m.State == nil {
		m.State = NewState()
	}
	if m.out == nil {
		m.out = io.Discard
	}
	return &m
}

func (m *Machine) logf(mess string, args ...interface{}) {
	if m.logfn != nil {
		m.logfn(mess, args...)
	}
}

// Run splices prog onto the front of the queue, then executes until the
// queue is empty. Any error from Step is returned as is, leaving whatever
// remains queued; ErrQuit indicates that quit was executed.
// The context is checked between steps.
func (m *Machine) Run(ctx context.Context, prog Program) error {
	m.Splice(prog)
	for {
		err := m.Step()
		if m.logfn != nil {
			m.trace(err)
		}
		if err != nil {
			return err
		}
		if m.Pending() == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Step removes the next instruction from the queue and executes it.
func (m *Machine) Step() error {
	in, ok := m.next()
	if !ok {
		return ErrEmptyProgram
	}
	m.last = in
	return opTable[in.Op](m, in)
}

var opTable [opMax]func(m *Machine, in Instruction) error

func init() {
	opTable = [...]func(m *Machine, in Instruction) error{
		(*Machine).number,
		(*Machine).symbol,

		(*Machine).print,
		(*Machine).quit,
		(*Machine).add,
		(*Machine).sub,
		(*Machine).mul,
		(*Machine).div,
		(*Machine).mod,
		(*Machine).pow,
		(*Machine).less,
		(*Machine).drop,
		(*Machine).swap,
		(*Machine).rot,
		(*Machine).ifz,
		(*Machine).pick,
		(*Machine).skip,
		(*Machine).define,
		(*Machine).endDefine,
	}
}
