package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune reading around the given reader.
// If the r implements Name() string or io.Closer, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	var rr Reader = bufio.NewReader(r)
	if impl, ok := r.(interface{ Name() string }); ok {
		rr = namedRuneReader{rr, impl.Name()}
	}
	if cl, ok := r.(io.Closer); ok {
		rr = closeRuneReader{rr, cl}
	}
	return rr
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }

type closeRuneReader struct {
	Reader
	io.Closer
}

func (cr closeRuneReader) Name() string {
	if nom, ok := cr.Reader.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return ""
}
