package clac

import (
	"strconv"
	"strings"
)

// Tokenize splits line on whitespace and classifies each token: builtin
// spellings become their op, base-10 numerals that fit in an int32 become
// literals, and everything else becomes a symbol reference. Unknown symbols
// are only rejected when executed.
func Tokenize(line string) Program {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	prog := make(Program, len(fields))
	for i, token := range fields {
		prog[i] = parseToken(token)
	}
	return prog
}

func parseToken(token string) Instruction {
	if op, isBuiltin := builtins[token]; isBuiltin {
		return Builtin(op)
	}
	if n, err := strconv.ParseInt(token, 10, 32); err == nil {
		return Number(int32(n))
	}
	return Symbol(token)
}
