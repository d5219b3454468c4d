package parslet

import (
	"fmt"
	"regexp"
)

// Slice is an immutable view of a contiguous span of an original input
// buffer. It carries the absolute byte offset of its payload within that
// buffer, so results cut out of the input stay traceable to their position
// and adjacent results can be merged without copying text around.
//
// Slices are immutable once constructed and therefore safe to share between
// goroutines without locking. Every operation that would modify a slice
// returns a new one instead.
type Slice struct {
	str    string
	offset int
	parent *Slice
}

// Sliceable is implemented by values that can take part in slice
// concatenation. Returning nil means the value has no slice form and
// Concat reports ErrTypeMismatch.
type Sliceable interface {
	ToSlice() *Slice
}

// New creates a slice claiming the span [offset, offset+len(str)) of the
// original buffer. A slice created without a parent is a root; sub-slicing
// it hands out children that stay attached to it. No validation is
// performed, this is the low-level primitive the rest of the package is
// built on.
func New(str string, offset int, parent ...*Slice) *Slice {
	s := &Slice{str: str, offset: offset}
	if len(parent) > 0 {
		s.parent = parent[0]
	}

	return s
}

// ToSlice returns the slice itself, satisfying Sliceable.
func (s *Slice) ToSlice() *Slice {
	return s
}

// String returns the raw payload covered by the slice.
func (s *Slice) String() string {
	return s.str
}

// Len returns the payload length in bytes.
func (s *Slice) Len() int {
	return len(s.str)
}

// Offset returns the absolute byte offset of the payload's first byte
// within the original buffer.
func (s *Slice) Offset() int {
	return s.offset
}

// Parent returns the slice this one was carved from, or nil for roots and
// for slices materialized by Concat.
func (s *Slice) Parent() *Slice {
	return s.parent
}

// Equal reports whether both slices cover the same text. Offset and parent
// are ignored, two slices with identical payloads carved from different
// places compare equal.
func (s *Slice) Equal(other *Slice) bool {
	return other != nil && s.str == other.str
}

// EqualString reports whether the slice covers exactly str.
func (s *Slice) EqualString(str string) bool {
	return s.str == str
}

// Match runs re against the payload and returns the submatches, nil when
// the payload does not match. Indexes inside the result are relative to
// the slice, not to the original buffer; translating match positions is
// deliberately left to the caller.
func (s *Slice) Match(re *regexp.Regexp) []string {
	return re.FindStringSubmatch(s.str)
}

// Slice returns the sub-slice covering [offset+start, offset+start+length).
// Requests on a non-root slice are forwarded to the parent with translated
// coordinates, so the derivation chain never grows beyond root and child no
// matter how deeply results are re-sliced. On a root the payload is a
// zero-copy substring view and the returned slice keeps the root as parent.
//
// start and length count bytes. Out-of-range values panic just like Go
// string slicing; callers gate ranges with Satisfies first.
func (s *Slice) Slice(start, length int) *Slice {
	if s.parent != nil {
		return s.parent.Slice(start+(s.offset-s.parent.offset), length)
	}

	return &Slice{
		str:    s.str[start : start+length],
		offset: s.offset + start,
		parent: s,
	}
}

// AbsSlice is Slice with the start given as an absolute buffer offset
// instead of relative to this slice.
func (s *Slice) AbsSlice(start, length int) *Slice {
	return s.Slice(start-s.offset, length)
}

// Satisfies reports whether the payload fully covers the absolute byte
// range [offset, offset+length). Callers use it to decide whether an
// existing slice can answer a range query before re-slicing.
func (s *Slice) Satisfies(offset, length int) bool {
	return offset >= s.offset && offset+length <= s.offset+len(s.str)
}

// Concat joins two adjacent slices into one covering both spans. The
// right-hand operand must end up exactly where this slice ends, otherwise
// the result could not describe a contiguous buffer range and
// ErrInvalidSliceOperation is returned.
//
// When both operands were carved from the same parent the combined span is
// re-derived from that parent directly and no text is copied. Otherwise the
// payloads are concatenated into a fresh slice without a parent, since the
// result no longer corresponds to a contiguous region of any single known
// buffer.
func (s *Slice) Concat(other Sliceable) (*Slice, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: got nil", ErrTypeMismatch)
	}

	o := other.ToSlice()
	if o == nil {
		return nil, fmt.Errorf("%w: %T yielded no slice", ErrTypeMismatch, other)
	}

	if s.offset+len(s.str) != o.offset {
		return nil, fmt.Errorf("%w: slices are not adjacent (%d+%d != %d)",
			ErrInvalidSliceOperation, s.offset, len(s.str), o.offset)
	}

	if s.parent != nil && s.parent == o.parent {
		return s.parent.AbsSlice(s.offset, len(s.str)+len(o.str)), nil
	}

	return New(s.str+o.str, s.offset), nil
}
