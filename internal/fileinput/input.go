package fileinput

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goclac/internal/runeio"
)

// Location names an a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadLine reads the next line from the current input stream, moving on to
// the next stream in Queue when one is exhausted. The returned line lacks
// its terminator (\n or \r\n); Last holds it along with its Location.
// A final line lacking a terminator is still returned.
// Returns io.EOF once all streams are exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return "", io.EOF
		}

		r, _, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				return in.nextLine(), nil
			}
			in.Scan.WriteRune(r)
			continue
		}

		var line string
		partial := in.Scan.Len() > 0
		if partial {
			line = in.nextLine()
		}
		in.closeIn()
		if err != io.EOF {
			return line, err
		}
		if partial {
			return line, nil
		}
	}
}

// Close closes the current stream, and any still queued, if they implement
// io.Closer.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextLine() string {
	line := strings.TrimSuffix(in.Scan.Buffer.String(), "\r")
	in.Last.Reset()
	in.Last.Location = in.Scan.Location
	in.Last.WriteString(line)
	in.Scan.Reset()
	in.Scan.Line++
	return line
}

func (in *Input) closeIn() (err error) {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			err = cl.Close()
		}
		in.rr = nil
	}
	return err
}

func (in *Input) nextIn() bool {
	in.closeIn()
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Reset()
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
