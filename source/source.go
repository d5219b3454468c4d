package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/txus/parslet"
)

// ErrInvalidReadSize is returned by Read when the requested size is not positive.
var ErrInvalidReadSize = errors.New("read size must be positive")

// DefaultMinReadSize is the smallest amount read from the underlying reader
// in one refill.
const DefaultMinReadSize = 4096

// Options are options for a Source.
type Options struct {
	// MinReadSize overrides how much is read ahead on a cache miss.
	// Zero or negative means DefaultMinReadSize.
	MinReadSize int
}

// Source reads an input stream and serves consumed byte ranges as slices.
// It buffers one chunk of the stream at a time and keeps that chunk as a
// root slice; as long as requests fall inside the chunk they are answered
// by re-slicing it, without touching the reader again. Reads served from
// one chunk share its root, so adjacent results concatenate through the
// zero-copy path. A read that outlives the chunk starts a new root, and
// results across that boundary concatenate by copying.
//
// A Source is a forward-only cursor and is not safe for concurrent use.
type Source struct {
	reader      io.Reader
	chunk       *parslet.Slice
	pos         int
	eof         bool
	minReadSize int
}

// New creates a Source reading from r.
func New(r io.Reader, options ...Options) *Source {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.MinReadSize <= 0 {
		opts.MinReadSize = DefaultMinReadSize
	}

	return &Source{
		reader:      r,
		minReadSize: opts.MinReadSize,
	}
}

// NewFromString creates a Source over an in-memory buffer. The whole input
// becomes a single chunk, so every read shares one root and every adjacent
// concatenation is zero-copy.
func NewFromString(input string) *Source {
	return &Source{
		chunk: parslet.New(input, 0),
		eof:   true,
	}
}

// Pos returns the absolute byte offset of the cursor.
func (s *Source) Pos() int {
	return s.pos
}

// Chunk returns the currently buffered chunk as a root slice, nil before
// the first read from a streaming source. Callers can ask it through
// Satisfies whether a range is already buffered.
func (s *Source) Chunk() *parslet.Slice {
	return s.chunk
}

// Read consumes exactly n bytes and returns them as a slice positioned at
// the cursor. When the buffered chunk already covers the range the slice
// is carved from it directly; otherwise the unconsumed tail of the chunk
// and fresh bytes from the reader are joined into a new chunk first.
//
// At the end of the input Read returns io.EOF when nothing is buffered and
// io.ErrUnexpectedEOF when fewer than n bytes remain; either way the
// cursor does not move, so the remainder can still be consumed with a
// smaller read. Any other reader error is returned as is, with the bytes
// drained before it kept buffered, so a retry resumes at the cursor
// without losing stream position.
func (s *Source) Read(n int) (*parslet.Slice, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidReadSize, n)
	}

	if s.chunk == nil || !s.chunk.Satisfies(s.pos, n) {
		if err := s.refill(n); err != nil {
			return nil, err
		}
	}

	sl := s.chunk.AbsSlice(s.pos, n)
	s.pos += n

	return sl, nil
}

// refill replaces the chunk with one that starts at the cursor and covers
// at least n bytes, or reports how the input fell short.
func (s *Source) refill(n int) error {
	carry := ""
	if s.chunk != nil && s.chunk.Satisfies(s.pos, 0) {
		carry = s.chunk.String()[s.pos-s.chunk.Offset():]
	}

	want := n - len(carry)

	readSize := s.minReadSize
	if want > readSize {
		readSize = want
	}

	var (
		b       strings.Builder
		readErr error
	)

	if s.reader != nil && !s.eof {
		buf := make([]byte, readSize)
		for b.Len() < readSize {
			nn, err := s.reader.Read(buf)
			if nn > 0 {
				b.Write(buf[:nn])
			}

			if err == io.EOF {
				s.eof = true
				break
			}

			if err != nil {
				readErr = err
				break
			}
		}
	}

	payload := carry + b.String()
	// keep the old chunk when nothing new arrived, so slices carved before
	// and after the failed refill still share one root
	if len(payload) > 0 && (b.Len() > 0 || s.chunk == nil) {
		s.chunk = parslet.New(payload, s.pos)
	}

	// bytes drained before a read error are installed above, so a retry
	// resumes at the offset the stream has actually advanced to
	if readErr != nil {
		return readErr
	}

	switch {
	case len(payload) == 0:
		return io.EOF
	case len(payload) < n:
		return io.ErrUnexpectedEOF
	default:
		return nil
	}
}
