package clac

import (
	"math"
	"strconv"
)

// need checks that the stack holds at least n operands for in.
func (m *Machine) need(in Instruction, n int) error {
	if have := m.Depth(); have < n {
		return opErrorf(in, ErrOperandShortage, "need %v, have %v", n, have)
	}
	return nil
}

// needQueued checks that at least n instructions are queued for in.
func (m *Machine) needQueued(in Instruction, n int) error {
	if have := m.Pending(); have < n {
		return opErrorf(in, ErrQueueUnderflow, "need %v, have %v", n, have)
	}
	return nil
}

// binary pops y then x, pushing f(x, y); if f fails, x and y are restored.
func (m *Machine) binary(in Instruction, f func(x, y int32) (int32, error)) error {
	if err := m.need(in, 2); err != nil {
		return err
	}
	y, x := m.pop(), m.pop()
	z, err := f(x, y)
	if err != nil {
		m.push(x)
		m.push(y)
		return opError(in, err)
	}
	m.push(z)
	return nil
}

//// Literals and symbols

// A literal pushes its value; it can never fail.
func (m *Machine) number(in Instruction) error { m.push(in.Num); return nil }

// A symbol splices a copy of its definition onto the front of the queue.
// The symbol itself is neither pushed nor executed, so recursion grows the
// queue instead of the Go stack.
func (m *Machine) symbol(in Instruction) error {
	body, defined := m.funcs.Get(in.Sym)
	if !defined {
		return opError(in, ErrUndefinedSymbol)
	}
	m.Splice(body.(Program))
	return nil
}

//// Input/Output Operations

// Name    Function
// print   pop top of stack, write it to output in decimal followed by a newline
func (m *Machine) print(in Instruction) error {
	if err := m.need(in, 1); err != nil {
		return err
	}
	var buf [12]byte
	line := append(strconv.AppendInt(buf[:0], int64(m.peek()), 10), '\n')
	if _, err := m.out.Write(line); err != nil {
		return &OpError{In: in, Err: err}
	}
	m.pop()
	return nil
}

// Name    Function
// quit    halt; Run returns ErrQuit
func (m *Machine) quit(in Instruction) error { return ErrQuit }

//// Integer Operations

// Symbol   Name           Function
//    +     add            pop top 2 elements of stack, add, push
func (m *Machine) add(in Instruction) error {
	return m.binary(in, func(x, y int32) (int32, error) { return x + y, nil })
}

// Symbol   Name           Function
//    -     binary minus   pop top 2 elements of stack, subtract, push
func (m *Machine) sub(in Instruction) error {
	return m.binary(in, func(x, y int32) (int32, error) { return x - y, nil })
}

// Symbol   Name           Function
//    *     multiply       pop top 2 elements of stack, multiply, push
func (m *Machine) mul(in Instruction) error {
	return m.binary(in, func(x, y int32) (int32, error) { return x * y, nil })
}

// Symbol   Name           Function
//    /     divide         pop top 2 elements of stack, divide truncating, push
func (m *Machine) div(in Instruction) error {
	return m.binary(in, func(x, y int32) (int32, error) {
		if err := checkDivisor(x, y); err != nil {
			return 0, err
		}
		return x / y, nil
	})
}

// Symbol   Name           Function
//    %     modulo         pop top 2 elements of stack, take remainder, push
func (m *Machine) mod(in Instruction) error {
	return m.binary(in, func(x, y int32) (int32, error) {
		if err := checkDivisor(x, y); err != nil {
			return 0, err
		}
		return x % y, nil
	})
}

func checkDivisor(x, y int32) error {
	if y == 0 {
		return ErrDivideByZero
	}
	if x == math.MinInt32 && y == -1 {
		return ErrOverflow
	}
	return nil
}

// Symbol   Name           Function
//   **     power          pop top 2 elements of stack, raise second to top, push
func (m *Machine) pow(in Instruction) error {
	return m.binary(in, func(x, y int32) (int32, error) {
		if y < 0 {
			return 0, ErrNegativeExponent
		}
		r := int32(1)
		for ; y > 0; y >>= 1 {
			if y&1 != 0 {
				r *= x
			}
			x *= x
		}
		return r, nil
	})
}

// Symbol   Name           Function
//    <     less than      pop top 2 elements of stack, push 1 if second < top else 0
func (m *Machine) less(in Instruction) error {
	return m.binary(in, func(x, y int32) (int32, error) { return boolInt(x < y), nil })
}

//// Stack Operations

// Name   Function
// drop   discard the top of stack
func (m *Machine) drop(in Instruction) error {
	if err := m.need(in, 1); err != nil {
		return err
	}
	m.pop()
	return nil
}

// Name   Function
// swap   exchange the top two elements
func (m *Machine) swap(in Instruction) error {
	if err := m.need(in, 2); err != nil {
		return err
	}
	y, x := m.pop(), m.pop()
	m.push(y)
	m.push(x)
	return nil
}

// Name   Function
// rot    ( x y z -- y z x ) move the third element to the top
func (m *Machine) rot(in Instruction) error {
	if err := m.need(in, 3); err != nil {
		return err
	}
	z, y, x := m.pop(), m.pop(), m.pop()
	m.push(y)
	m.push(z)
	m.push(x)
	return nil
}

// Name   Function
// pick   pop top of stack as an index N, counting the remaining top as 1, and
//        push a copy of the N-th element
func (m *Machine) pick(in Instruction) error {
	if err := m.need(in, 1); err != nil {
		return err
	}
	n := m.peek()
	if n <= 0 {
		return opErrorf(in, ErrOperandShortage, "index %v out of range", n)
	}
	if have := m.Depth() - 1; int64(have) < int64(n) {
		return opErrorf(in, ErrOperandShortage, "need %v, have %v", n, have)
	}
	m.pop()

	// pop n into a buffer, deepest last, then replay in reverse to restore
	buf := make([]int32, n)
	for i := range buf {
		buf[i] = m.pop()
	}
	picked := buf[n-1]
	for i := len(buf) - 1; i >= 0; i-- {
		m.push(buf[i])
	}
	m.push(picked)
	return nil
}

//// Queue Operations

// Name   Function
// if     pop top of stack; if it is 0, discard the next 3 queued instructions
func (m *Machine) ifz(in Instruction) error {
	const width = 3
	if err := m.need(in, 1); err != nil {
		return err
	}
	if m.peek() == 0 {
		if err := m.needQueued(in, width); err != nil {
			return err
		}
		m.pop()
		m.discard(width)
		return nil
	}
	m.pop()
	return nil
}

// Name   Function
// skip   pop top of stack as a count N, discard the next N queued instructions
func (m *Machine) skip(in Instruction) error {
	if err := m.need(in, 1); err != nil {
		return err
	}
	n := m.peek()
	if n > 0 {
		if err := m.needQueued(in, int(n)); err != nil {
			return err
		}
	}
	m.pop()
	if n > 0 {
		m.discard(int(n))
	}
	return nil
}

//// Definitions

// Symbol   Name     Function
//    :     define   take the next queued symbol as a name, then capture every
//                   instruction up to the next ; as its body, replacing any
//                   prior definition
func (m *Machine) define(in Instruction) error {
	name, ok := m.peekQueue(0)
	if !ok {
		return opErrorf(in, ErrMalformedDefine, "missing name")
	}
	switch name.Op {
	case OpSymbol:
	case OpNumber:
		return opErrorf(in, ErrMalformedDefine, "invalid name %v", name)
	default:
		return opErrorf(in, ErrMalformedDefine, "cannot redefine builtin %v", name)
	}
	end := m.find(OpEndDefine)
	if end < 0 {
		return opErrorf(in, ErrMalformedDefine, "missing ; after %v", name)
	}
	m.discard(1)
	body := m.take(end - 1)
	m.discard(1)
	m.Define(name.Sym, body)
	return nil
}

// Symbol   Name         Function
//    ;     end define   only valid as the terminator consumed by :
func (m *Machine) endDefine(in Instruction) error {
	return opError(in, ErrStrayDefineEnd)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
