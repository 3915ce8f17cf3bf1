package clac

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clacTestCases []clacTestCase

func (cts clacTestCases) run(t *testing.T) {
	{
		var exclusive []clacTestCase
		for _, ct := range cts {
			if ct.exclusive {
				exclusive = append(exclusive, ct)
			}
		}
		if len(exclusive) > 0 {
			cts = exclusive
		}
	}
	for _, ct := range cts {
		t.Run(ct.name, ct.run)
	}
}

func clacTest(name string) (ct clacTestCase) {
	ct.name = name
	return ct
}

type clacTestCase struct {
	name    string
	setup   []func(st *State)
	ops     []func(ctx context.Context, m *Machine) error
	expect  []func(t *testing.T, m *Machine)
	timeout time.Duration
	wantErr error

	exclusive bool
	untraced  bool
	output    *strings.Builder
}

func (ct clacTestCase) apply(wraps ...func(clacTestCase) clacTestCase) clacTestCase {
	for _, wrap := range wraps {
		ct = wrap(ct)
	}
	return ct
}

func (ct clacTestCase) exclusiveTest() clacTestCase {
	ct.exclusive = true
	return ct
}

// withoutTrace disables step tracing, for tests whose queue grows too large
// to render every step.
func (ct clacTestCase) withoutTrace() clacTestCase {
	ct.untraced = true
	return ct
}

func (ct clacTestCase) withTimeout(timeout time.Duration) clacTestCase {
	ct.timeout = timeout
	return ct
}

// withStack pushes values bottom first, so the last value ends on top.
func (ct clacTestCase) withStack(values ...int32) clacTestCase {
	ct.setup = append(ct.setup, func(st *State) {
		st.Push(values...)
	})
	return ct
}

func (ct clacTestCase) withQueue(src string) clacTestCase {
	ct.setup = append(ct.setup, func(st *State) {
		st.Splice(Tokenize(src))
	})
	return ct
}

func (ct clacTestCase) withFunc(name, body string) clacTestCase {
	ct.setup = append(ct.setup, func(st *State) {
		st.Define(name, Tokenize(body))
	})
	return ct
}

// do runs each line in turn, stopping at the first error.
func (ct clacTestCase) do(lines ...string) clacTestCase {
	for _, line := range lines {
		prog := Tokenize(line)
		ct.ops = append(ct.ops, func(ctx context.Context, m *Machine) error {
			return m.Run(ctx, prog)
		})
	}
	return ct
}

// doSteps executes n single steps from whatever is queued.
func (ct clacTestCase) doSteps(n int) clacTestCase {
	ct.ops = append(ct.ops, func(ctx context.Context, m *Machine) error {
		for i := 0; i < n; i++ {
			if err := m.Step(); err != nil {
				return err
			}
		}
		return nil
	})
	return ct
}

func (ct clacTestCase) expectError(err error) clacTestCase {
	ct.wantErr = err
	return ct
}

// expectStack checks the stack bottom first, matching withStack.
func (ct clacTestCase) expectStack(values ...int32) clacTestCase {
	ct.expect = append(ct.expect, func(t *testing.T, m *Machine) {
		if values == nil {
			values = []int32{}
		}
		assert.Equal(t, values, reversed(m.Stack()), "expected stack values")
	})
	return ct
}

func (ct clacTestCase) expectQueue(src string) clacTestCase {
	ct.expect = append(ct.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, src, m.Queue().String(), "expected queued instructions")
	})
	return ct
}

func (ct clacTestCase) expectFunc(name, body string) clacTestCase {
	ct.expect = append(ct.expect, func(t *testing.T, m *Machine) {
		prog, defined := m.Func(name)
		if assert.True(t, defined, "expected %q to be defined", name) {
			assert.Equal(t, body, prog.String(), "expected %q body", name)
		}
	})
	return ct
}

func (ct clacTestCase) expectFuncs(names ...string) clacTestCase {
	ct.expect = append(ct.expect, func(t *testing.T, m *Machine) {
		if names == nil {
			names = []string{}
		}
		assert.Equal(t, names, m.Funcs(), "expected defined functions")
	})
	return ct
}

func (ct clacTestCase) expectOutput(output string) clacTestCase {
	if ct.output == nil {
		ct.output = &strings.Builder{}
	}
	out := ct.output
	ct.expect = append(ct.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return ct
}

func (ct clacTestCase) expectDump(dump string) clacTestCase {
	ct.expect = append(ct.expect, func(t *testing.T, m *Machine) {
		var out strings.Builder
		assert.NoError(t, Dump(&out, m.State))
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return ct
}

func (ct clacTestCase) run(t *testing.T) {
	const defaultTimeout = time.Second
	timeout := ct.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if ct.output != nil {
		ct.output.Reset()
	}
	var trace []string
	m := ct.build(func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	})

	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Logf("trace: %v", line)
			}
			var dump strings.Builder
			Dump(&dump, m.State)
			t.Logf("final %v", dump.String())
		}
	}()

	err := ct.runOps(ctx, m)
	if ct.wantErr != nil {
		assert.True(t, errors.Is(err, ct.wantErr), "expected error: %v\ngot: %+v", ct.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected run error")
	}

	for _, expect := range ct.expect {
		expect(t, m)
	}
}

func (ct clacTestCase) runOps(ctx context.Context, m *Machine) error {
	for _, op := range ct.ops {
		if err := op(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (ct clacTestCase) build(logfn func(mess string, args ...interface{})) *Machine {
	st := NewState()
	for _, setup := range ct.setup {
		setup(st)
	}
	opts := []Option{WithState(st)}
	if !ct.untraced {
		opts = append(opts, WithLogf(logfn))
	}
	if ct.output != nil {
		opts = append(opts, WithOutput(ct.output))
	}
	return New(opts...)
}

//// utilities

func reversed(vals []int32) []int32 {
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals
}
