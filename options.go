package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/goclac/internal/flushio"
)

type SessionOption interface{ apply(s *Session) }

// SessionOptions combines any number of options into one; nil options are
// ignored.
func SessionOptions(opts ...SessionOption) SessionOption {
	var res sessionOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case sessionOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type sessionOptions []SessionOption

func (opts sessionOptions) apply(s *Session) {
	for _, opt := range opts {
		opt.apply(s)
	}
}

var defaults = []SessionOption{
	withOutput(io.Discard),
}

func (s *Session) apply(opts ...SessionOption) {
	for _, opt := range defaults {
		opt.apply(s)
	}
	if opt := SessionOptions(opts...); opt != nil {
		opt.apply(s)
	}
}

type withLogfn func(mess string, args ...interface{})
type withErrorfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(s *Session)     { s.logfn = logfn }
func (errorfn withErrorfn) apply(s *Session) { s.errorfn = errorfn }

type inputOption struct{ io.Reader }
type inputWriterOption struct{ io.WriterTo }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type lineReaderOption struct{ LineReader }
type traceOption bool
type bannerOption bool
type onErrorOption ErrorPolicy

func withInput(r io.Reader) inputOption               { return inputOption{r} }
func withInputWriter(w io.WriterTo) inputWriterOption { return inputWriterOption{w} }
func withOutput(w io.Writer) outputOption             { return outputOption{w} }
func withTee(w io.Writer) teeOption                   { return teeOption{w} }

func (i inputOption) apply(s *Session) {
	s.Queue = append(s.Queue, i.Reader)
}

// The writer runs in its own goroutine, feeding a pipe that is read like
// any other input; closing the session closes the pipe, ending the writer.
func (i inputWriterOption) apply(s *Session) {
	pr, pw := io.Pipe()
	go func() {
		_, err := i.WriteTo(pw)
		pw.CloseWithError(err)
	}()
	s.Queue = append(s.Queue, NamedReader(nameOf(i.WriterTo), pr))
}

func (o outputOption) apply(s *Session) {
	if s.out != nil {
		s.out.Flush()
	}
	s.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(s *Session) {
	s.out = flushio.WriteFlushers(s.out, flushio.NewWriteFlusher(o.Writer))
}

func (o lineReaderOption) apply(s *Session) {
	s.editor = o.LineReader
	if cl, ok := o.LineReader.(io.Closer); ok {
		s.closers = append(s.closers, cl)
	}
}

func (t traceOption) apply(s *Session)   { s.trace = bool(t) }
func (b bannerOption) apply(s *Session)  { s.banner = bool(b) }
func (p onErrorOption) apply(s *Session) { s.onError = ErrorPolicy(p) }

// NamedReader gives r a Name, used to identify it in error locations.
// If r is an io.Closer, so is the result.
func NamedReader(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.ReadCloser); ok {
		return namedReadCloser{cl, name}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	io.ReadCloser
	name string
}

func (nr namedReader) Name() string     { return nr.name }
func (nr namedReadCloser) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
