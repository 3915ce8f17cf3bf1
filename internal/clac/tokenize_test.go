package clac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	for _, tc := range []struct {
		name  string
		line  string
		prog  Program
		canon string
	}{
		{name: "empty", line: "", prog: nil},
		{name: "blank", line: " \t  \r ", prog: nil},
		{
			name: "numbers",
			line: "1 -2 +3 0 -0",
			prog: Program{Number(1), Number(-2), Number(3), Number(0), Number(0)},

			canon: "1 -2 3 0 0",
		},
		{
			name: "int32 range",
			line: "2147483647 -2147483648 2147483648 -2147483649",
			prog: Program{
				Number(2147483647), Number(-2147483648),
				Symbol("2147483648"), Symbol("-2147483649"),
			},
		},
		{
			name: "builtins",
			line: "print quit + - * / % ** < drop swap rot if pick skip : ;",
			prog: Program{
				Builtin(OpPrint), Builtin(OpQuit),
				Builtin(OpAdd), Builtin(OpSub), Builtin(OpMul), Builtin(OpDiv),
				Builtin(OpMod), Builtin(OpPow), Builtin(OpLess),
				Builtin(OpDrop), Builtin(OpSwap), Builtin(OpRot),
				Builtin(OpIf), Builtin(OpPick), Builtin(OpSkip),
				Builtin(OpDefine), Builtin(OpEndDefine),
			},
		},
		{
			name: "symbols",
			line: "dup 1.5 0x10 PRINT *** 3abc",
			prog: Program{
				Symbol("dup"), Symbol("1.5"), Symbol("0x10"),
				Symbol("PRINT"), Symbol("***"), Symbol("3abc"),
			},
		},
		{
			name: "whitespace runs",
			line: "\t1   2\n3\r\n",
			prog: Program{Number(1), Number(2), Number(3)},

			canon: "1 2 3",
		},
		{
			name: "definition",
			line: ": sq 1 pick * ;",
			prog: Program{
				Builtin(OpDefine), Symbol("sq"),
				Number(1), Builtin(OpPick), Builtin(OpMul),
				Builtin(OpEndDefine),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog := Tokenize(tc.line)
			assert.Equal(t, tc.prog, prog, "expected program")

			canon := tc.canon
			if canon == "" && tc.prog != nil {
				canon = tc.line
			}
			assert.Equal(t, canon, prog.String(), "expected source form")
			assert.Equal(t, prog, Tokenize(prog.String()), "expected source form to tokenize back")

			assert.Equal(t, prog, Tokenize(tc.line), "expected tokenizing to be repeatable")
		})
	}
}

func Test_Op(t *testing.T) {
	assert.False(t, OpNumber.Builtin())
	assert.False(t, OpSymbol.Builtin())
	for op := opFirstBuiltin; op < opMax; op++ {
		assert.True(t, op.Builtin(), "expected %v to be a builtin", op)
		assert.Equal(t, op, builtins[op.String()], "expected %v to round trip", op)
	}
	assert.Equal(t, "Op(200)", Op(200).String())
	assert.False(t, Op(200).Builtin())
}

func Test_Program_Clone(t *testing.T) {
	prog := Tokenize("1 2 +")
	clone := prog.Clone()
	clone[0] = Number(7)
	assert.Equal(t, "1 2 +", prog.String())
	assert.Equal(t, "7 2 +", clone.String())
	assert.Nil(t, Program(nil).Clone())
}
