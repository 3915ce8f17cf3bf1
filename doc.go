/* Package main: goclac -- a postfix stack calculator

clac is a tiny reverse-Polish language: a line of input is split on
whitespace into tokens, and each token is run in turn against a stack of
32-bit integers. Numbers push themselves; everything else is an operator that
pops its arguments and pushes any result.

	> 2 3 + print
	5
	> 7 2 - print
	5

Integer arithmetic wraps around on overflow, except where there is no sensible
result: division or modulo by zero, the minimum integer divided by -1, and
negative exponents are all errors.

Section 1: Builtins

	Symbol  Stack       Function
	print   x --        print x on its own line
	quit    --          end the session
	+ - *   x y -- z    arithmetic
	/ %     x y -- z    truncating division and remainder
	**      x y -- z    x to the power y
	<       x y -- b    1 if x < y, 0 otherwise
	drop    x --
	swap    x y -- y x
	rot     x y z -- y z x
	pick    ... n -- ... v    copy the n-th item from the top (the top is 1)
	if      b --        when b is 0, skip the next 3 instructions
	skip    n --        skip the next n instructions
	: name ... ;        define name as the instructions between

Section 2: The queue

Instructions do not run straight from the line; a line is placed on the front
of a queue of pending instructions, and the machine repeatedly takes one
instruction off the front of that queue until it is empty. That is all there
is to control flow: if and skip throw away queued instructions unexecuted,
while : takes everything up to the next ; off the queue and stores it as a
function body.

Using a defined name puts a copy of its body back onto the front of the
queue. Since nothing is ever "returned to", a recursive function only ever
grows the queue, never a call stack:

	> : countdown 1 pick print 1 - 1 pick if countdown 1 skip drop ;
	> 3 countdown
	3
	2
	1

Definitions must fit within one line, since : looks no further than the
queue, which only ever holds the rest of the current line.

Section 3: The prelude

Unless run with -prelude=false, some common words are defined before any
input is read, see prelude.go:

	dup over 2dup nip tuck neg 1+ 1- not = abs max min

Section 4: Sessions

Scripts named on the command line are run in order, line by line; with no
scripts, input comes from stdin, with line editing and history when stdin is
a terminal. When a line fails, what happens next depends on -on-error: "line"
reports the error, throws away the rest of the line, and continues; "session"
stops at once. Interactive sessions default to "line", all others to
"session". Either way, the stack and any definitions made before the failure
are kept.

*/
package main
