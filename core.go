package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goclac/internal/fileinput"
	"github.com/jcorbin/goclac/internal/flushio"
)

// LineReader supplies input lines one at a time, along with the location of
// the line last read.
type LineReader interface {
	ReadLine() (string, error)
	Location() fileinput.Location
}

type Core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	editor  LineReader
	closers []io.Closer

	inputDone bool
	loc       fileinput.Location
}

func (core *Core) Close() (err error) {
	if ferr := core.flush(); err == nil {
		err = ferr
	}
	if cerr := core.Input.Close(); err == nil {
		err = cerr
	}
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	core.closers = nil
	return err
}

func (core *Core) flush() error {
	if core.out == nil {
		return nil
	}
	return core.out.Flush()
}

// readLine flushes any pending output, then reads a line from queued inputs
// until they run out, then from any line editor.
func (core *Core) readLine() (string, error) {
	if err := core.flush(); err != nil {
		return "", err
	}

	if !core.inputDone {
		line, err := core.Input.ReadLine()
		if err != io.EOF {
			core.loc = core.Input.Last.Location
			return line, err
		}
		core.inputDone = true
	}

	if core.editor != nil {
		line, err := core.editor.ReadLine()
		core.loc = core.editor.Location()
		return line, err
	}

	return "", io.EOF
}

func (core *Core) writeString(s string) error {
	_, err := io.WriteString(core.out, s)
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
