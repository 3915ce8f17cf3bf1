package main

import (
	"context"
	"io"

	"github.com/jcorbin/goclac/internal/panicerr"
)

func New(opts ...SessionOption) *Session {
	var s Session
	s.apply(opts...)
	return &s
}

// Run reads and executes lines until input runs out or quit is executed,
// both of which are a normal end returning nil.
// Under AbortSession, the first failing line ends the run with its
// *LineError; under AbortLine failures are reported and counted, see Failed.
func (s *Session) Run(ctx context.Context) error {
	err := panicerr.Recover("Session", func() error {
		return s.run(ctx)
	})
	if isHalt(err) {
		return nil
	}
	return err
}

func WithInput(r io.Reader) SessionOption              { return withInput(r) }
func WithInputWriter(w io.WriterTo) SessionOption      { return withInputWriter(w) }
func WithOutput(w io.Writer) SessionOption             { return withOutput(w) }
func WithTee(w io.Writer) SessionOption                { return withTee(w) }
func WithLineReader(lr LineReader) SessionOption       { return lineReaderOption{lr} }
func WithTrace(trace bool) SessionOption               { return traceOption(trace) }
func WithBanner(banner bool) SessionOption             { return bannerOption(banner) }
func WithErrorPolicy(policy ErrorPolicy) SessionOption { return onErrorOption(policy) }
func WithPrelude() SessionOption                       { return withInputWriter(prelude{}) }

func WithLogf(logfn func(mess string, args ...interface{})) SessionOption   { return withLogfn(logfn) }
func WithErrorf(errfn func(mess string, args ...interface{})) SessionOption { return withErrorfn(errfn) }
