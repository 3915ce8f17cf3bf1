package clac

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_State(t *testing.T) {
	st := NewState()
	assert.Equal(t, []int32{}, st.Stack())
	assert.Equal(t, Program{}, st.Queue())
	assert.Equal(t, []string{}, st.Funcs())

	st.Push(1, 2, 3)
	assert.Equal(t, []int32{3, 2, 1}, st.Stack(), "expected stack top first")
	assert.Equal(t, 3, st.Depth())

	st.Splice(Tokenize("c d"))
	st.Splice(Tokenize("a b"))
	st.Splice(nil)
	assert.Equal(t, "a b c d", st.Queue().String(), "expected splices to run first")
	assert.Equal(t, 4, st.Pending())

	st.ClearQueue()
	assert.Equal(t, 0, st.Pending())

	body := Tokenize("1 +")
	st.Define("inc", body)
	body[0] = Number(2)
	got, defined := st.Func("inc")
	require.True(t, defined)
	assert.Equal(t, "1 +", got.String(), "expected definition to be a copy")
	got[0] = Number(3)
	got, _ = st.Func("inc")
	assert.Equal(t, "1 +", got.String(), "expected returned body to be a copy")

	_, defined = st.Func("dec")
	assert.False(t, defined)
}

func Test_Machine_shared_state(t *testing.T) {
	st := NewState()
	var out strings.Builder
	a := New(WithState(st), WithOutput(&out))
	b := New(WithState(st), WithOutput(&out))
	require.NoError(t, a.Run(context.Background(), Tokenize(": sq 1 pick * ; 4")))
	require.NoError(t, b.Run(context.Background(), Tokenize("sq print")))
	assert.Equal(t, "16\n", out.String())
}

func Test_Machine_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(WithState(NewState()))
	m.Define("loop", Tokenize("loop"))
	err := m.Run(ctx, Tokenize("1 loop"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int32{1}, m.Stack(), "expected one step before noticing")
	assert.Equal(t, "loop", m.Queue().String())
}

func Test_Dump(t *testing.T) {
	st := NewState()
	st.Push(1, 2)
	st.Splice(Tokenize("3 print"))
	st.Define("sq", Tokenize("1 pick *"))
	st.Define("a\x1bb", Tokenize("1"))
	st.Define("nop", nil)

	var out strings.Builder
	require.NoError(t, Dump(&out, st))
	assert.Equal(t, strings.Join([]string{
		"# State",
		"  stack: [2 1]",
		"  queue: [3 print]",
		"  : a<ESC>b 1 ;",
		"  : nop ;",
		"  : sq 1 pick * ;",
	}, "\n")+"\n", out.String())
}

func Test_Machine_trace(t *testing.T) {
	var lines []string
	m := New(WithLogf(func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}))
	err := m.Run(context.Background(), Tokenize(": f 2 ; 1 f +"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"exec : -- s:[] q:[1 f +] fx:{f:[2]}",
		"exec 1 -- s:[1] q:[f +] fx:{f:[2]}",
		"exec f -- s:[1] q:[2 +] fx:{f:[2]}",
		"exec 2 -- s:[2 1] q:[+] fx:{f:[2]}",
		"exec + -- s:[3] q:[] fx:{f:[2]}",
	}, lines)

	lines = nil
	err = m.Run(context.Background(), Tokenize("drop drop"))
	assert.ErrorIs(t, err, ErrOperandShortage)
	assert.Equal(t, []string{
		"exec drop -- s:[] q:[drop] fx:{f:[2]}",
		"exec drop -- s:[] q:[] fx:{f:[2]} err:drop: not enough operands (need 1, have 0)",
	}, lines)
}
