package clac

import (
	"strconv"
	"strings"
)

// Op names the kind of an Instruction.
type Op uint8

const (
	OpNumber Op = iota // <LITERAL>  push an integer
	OpSymbol           // <SYMBOL>   expand a user defined function

	// Here's a handy summary of all the builtin words:
	OpPrint     // print   pop and output the top of stack
	OpQuit      // quit    halt the session
	OpAdd       // +       binary integer operation on the stack
	OpSub       // -       binary integer operation on the stack
	OpMul       // *       binary integer operation on the stack
	OpDiv       // /       binary integer operation on the stack
	OpMod       // %       binary integer operation on the stack
	OpPow       // **      binary integer operation on the stack
	OpLess      // <       is second less than top?
	OpDrop      // drop    discard the top of stack
	OpSwap      // swap    exchange the top two elements
	OpRot       // rot     move the third element to the top
	OpIf        // if      pop a condition, skip the next 3 instructions if it is 0
	OpPick      // pick    pop an index, copy that element up to the top
	OpSkip      // skip    pop a count, skip that many instructions
	OpDefine    // :       capture a function body up to ;
	OpEndDefine // ;       terminate a : definition

	opMax
	opFirstBuiltin = OpPrint
)

var opNames = [opMax]string{
	"number",
	"symbol",

	"print",
	"quit",
	"+",
	"-",
	"*",
	"/",
	"%",
	"**",
	"<",
	"drop",
	"swap",
	"rot",
	"if",
	"pick",
	"skip",
	":",
	";",
}

// builtins maps the source spelling of every builtin to its Op.
var builtins map[string]Op

func init() {
	builtins = make(map[string]Op, opMax-opFirstBuiltin)
	for op := opFirstBuiltin; op < opMax; op++ {
		builtins[opNames[op]] = op
	}
}

func (op Op) String() string {
	if op < opMax {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Builtin returns true if op is one of the named builtin words, rather than a
// literal or symbol.
func (op Op) Builtin() bool { return op >= opFirstBuiltin && op < opMax }

// Instruction is one unit of a clac program: a builtin word, an integer
// literal, or a reference to a user defined symbol.
type Instruction struct {
	Op  Op
	Num int32
	Sym string
}

// Number returns an integer literal instruction.
func Number(n int32) Instruction { return Instruction{Op: OpNumber, Num: n} }

// Symbol returns a symbol reference instruction.
func Symbol(name string) Instruction { return Instruction{Op: OpSymbol, Sym: name} }

// Builtin returns the instruction for a builtin op.
func Builtin(op Op) Instruction { return Instruction{Op: op} }

// String returns the source spelling of the instruction.
func (in Instruction) String() string {
	switch in.Op {
	case OpNumber:
		return strconv.FormatInt(int64(in.Num), 10)
	case OpSymbol:
		return in.Sym
	default:
		return in.Op.String()
	}
}

// Program is a sequence of instructions, as produced by Tokenize or stored
// as a function body.
type Program []Instruction

// String renders the program in source form; Tokenize(prog.String()) is
// equal to prog.
func (prog Program) String() string {
	var sb strings.Builder
	for i, in := range prog {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(in.String())
	}
	return sb.String()
}

// Clone returns a copy of prog that shares no storage with it.
func (prog Program) Clone() Program {
	if prog == nil {
		return nil
	}
	return append(Program(make([]Instruction, 0, len(prog))), prog...)
}
