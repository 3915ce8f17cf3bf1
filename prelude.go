package main

import (
	"bytes"
	"io"
)

// prelude is clac source defining common words in terms of the builtins.
// Every definition fits on one line, since a : must find its ; within the
// line being run.
type prelude struct{}

func (prelude) Name() string { return "prelude.clac" }

func (prelude) WriteTo(w io.Writer) (n int64, err error) {
	flush := func(wto io.WriterTo) {
		if err != nil {
			return
		}
		var m int64
		m, err = wto.WriteTo(w)
		n += m
	}

	var buf bytes.Buffer
	line := func(parts ...string) {
		if err == nil {
			for _, s := range parts {
				buf.WriteString(s)
			}
			buf.WriteByte('\n')
			flush(&buf)
		}
	}

	// clac has pick but no dup; pick counts the top as 1.
	line(`: dup 1 pick ;`)
	line(`: over 2 pick ;`)
	line(`: 2dup 2 pick 2 pick ;`)

	// ( a b -- b )
	line(`: nip swap drop ;`)

	// ( a b -- b a b )
	line(`: tuck swap 2 pick ;`)

	line(`: neg 0 swap - ;`)
	line(`: 1+ 1 + ;`)
	line(`: 1- 1 - ;`)

	// There are no comparisons other than <, so zero-ness comes from
	// checking both sides: x is 0 exactly when neither x < 0 nor 0 < x.
	line(`: not dup 0 < swap 0 swap < + 1 swap - ;`)
	line(`: = 2dup < rot rot swap < + not ;`)

	// if always skips exactly the next 3 instructions, so a conditional
	// body is padded out to 3 with no-ops like "0 +"; whatever follows the
	// 3 runs either way.
	line(`: abs dup 0 < if neg 0 + ;`)
	line(`: max 2dup < if swap 0 + drop ;`)
	line(`: min 2dup swap < if swap 0 + drop ;`)

	return n, err
}
