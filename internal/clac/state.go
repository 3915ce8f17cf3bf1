package clac

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// State holds everything a clac session accumulates: the operand stack, the
// queue of pending instructions, and the table of defined functions.
// A zero State is not usable; use NewState.
type State struct {
	// The queue holds instructions waiting to run, front first. Input lines
	// and function bodies are spliced onto its front, and the control words
	// if, skip, and : consume from it directly.
	queue *doublylinkedlist.List

	// The stack is a LIFO of int32 operands used implicitly by most words.
	stack *arraystack.Stack

	// Defined functions, by name. Bodies are stored exactly as captured and
	// only expanded when referenced.
	funcs *treemap.Map
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		queue: doublylinkedlist.New(),
		stack: arraystack.New(),
		funcs: treemap.NewWithStringComparator(),
	}
}

// Splice prepends prog onto the pending queue, so that prog[0] runs next.
func (st *State) Splice(prog Program) {
	if len(prog) == 0 {
		return
	}
	values := make([]interface{}, len(prog))
	for i, in := range prog {
		values[i] = in
	}
	st.queue.Prepend(values...)
}

// Queue returns a copy of the pending instructions, front first.
func (st *State) Queue() Program {
	prog := make(Program, 0, st.queue.Size())
	for it := st.queue.Iterator(); it.Next(); {
		prog = append(prog, it.Value().(Instruction))
	}
	return prog
}

// Pending returns the number of queued instructions.
func (st *State) Pending() int { return st.queue.Size() }

// ClearQueue discards all pending instructions.
func (st *State) ClearQueue() { st.queue.Clear() }

// Stack returns a copy of the operand stack, top first.
func (st *State) Stack() []int32 {
	vals := make([]int32, 0, st.stack.Size())
	for it := st.stack.Iterator(); it.Next(); {
		vals = append(vals, it.Value().(int32))
	}
	return vals
}

// Depth returns the number of operands on the stack.
func (st *State) Depth() int { return st.stack.Size() }

// Push pushes values onto the stack in order, so the last one ends on top.
func (st *State) Push(values ...int32) {
	for _, val := range values {
		st.stack.Push(val)
	}
}

// Func returns a copy of the named function's body.
func (st *State) Func(name string) (Program, bool) {
	if body, defined := st.funcs.Get(name); defined {
		return body.(Program).Clone(), true
	}
	return nil, false
}

// Define stores body under name, replacing any prior definition.
func (st *State) Define(name string, body Program) {
	st.funcs.Put(name, body.Clone())
}

// Funcs returns the names of all defined functions in sorted order.
func (st *State) Funcs() []string {
	names := make([]string, 0, st.funcs.Size())
	for _, key := range st.funcs.Keys() {
		names = append(names, key.(string))
	}
	return names
}

// the following are the unchecked primitives used by words; callers must
// verify Depth and Pending first

func (st *State) push(val int32) { st.stack.Push(val) }

func (st *State) pop() int32 {
	val, _ := st.stack.Pop()
	return val.(int32)
}

func (st *State) peek() int32 {
	val, _ := st.stack.Peek()
	return val.(int32)
}

func (st *State) next() (Instruction, bool) {
	val, ok := st.queue.Get(0)
	if !ok {
		return Instruction{}, false
	}
	st.queue.Remove(0)
	return val.(Instruction), true
}

func (st *State) peekQueue(i int) (Instruction, bool) {
	val, ok := st.queue.Get(i)
	if !ok {
		return Instruction{}, false
	}
	return val.(Instruction), true
}

// find returns the index of the first queued instruction with the given op,
// or -1.
func (st *State) find(op Op) int {
	index, _ := st.queue.Find(func(_ int, val interface{}) bool {
		return val.(Instruction).Op == op
	})
	return index
}

// discard removes the first n queued instructions.
func (st *State) discard(n int) {
	for ; n > 0; n-- {
		st.queue.Remove(0)
	}
}

// take removes and returns the first n queued instructions.
func (st *State) take(n int) Program {
	prog := make(Program, 0, n)
	for ; n > 0; n-- {
		in, _ := st.next()
		prog = append(prog, in)
	}
	return prog
}
