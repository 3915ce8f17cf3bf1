package clac

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/goclac/internal/runeio"
)

type fmtBuf interface {
	Len() int
	Write(p []byte) (n int, err error)
	WriteByte(c byte) error
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
}

// Dump writes a human readable rendering of st to w: the stack top first,
// the pending queue front first, and every defined function in name order.
func Dump(w io.Writer, st *State) error {
	var buf strings.Builder
	buf.WriteString("# State\n")

	buf.WriteString("  stack: ")
	formatStack(&buf, st.Stack())
	buf.WriteByte('\n')

	buf.WriteString("  queue: ")
	formatProgram(&buf, st.Queue())
	buf.WriteByte('\n')

	for _, name := range st.Funcs() {
		body, _ := st.Func(name)
		buf.WriteString("  : ")
		buf.WriteString(runeio.Quote(name))
		for _, in := range body {
			buf.WriteByte(' ')
			formatInstruction(&buf, in)
		}
		buf.WriteString(" ;\n")
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// trace logs the state after a step as a single line.
func (m *Machine) trace(err error) {
	var buf strings.Builder
	buf.WriteString("exec ")
	formatInstruction(&buf, m.last)
	buf.WriteString(" -- s:")
	formatStack(&buf, m.Stack())
	buf.WriteString(" q:")
	formatProgram(&buf, m.Queue())
	buf.WriteString(" fx:{")
	for i, name := range m.Funcs() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		body, _ := m.Func(name)
		buf.WriteString(runeio.Quote(name))
		buf.WriteByte(':')
		formatProgram(&buf, body)
	}
	buf.WriteByte('}')
	if err != nil {
		fmt.Fprintf(&buf, " err:%v", err)
	}
	m.logf("%s", buf.String())
}

func formatStack(buf fmtBuf, vals []int32) {
	buf.WriteByte('[')
	for i, val := range vals {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	}
	buf.WriteByte(']')
}

func formatProgram(buf fmtBuf, prog Program) {
	buf.WriteByte('[')
	for i, in := range prog {
		if i > 0 {
			buf.WriteByte(' ')
		}
		formatInstruction(buf, in)
	}
	buf.WriteByte(']')
}

func formatInstruction(buf fmtBuf, in Instruction) {
	if in.Op == OpSymbol {
		buf.WriteString(runeio.Quote(in.Sym))
	} else {
		buf.WriteString(in.String())
	}
}
