package parslet

import (
	"regexp"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNew(t *testing.T) {
	s := New("hello", 40)

	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 40, s.Offset())
	assert.Equal(t, 5, s.Len())
	assert.Zero(t, s.Parent())
}

func TestNewWithParent(t *testing.T) {
	root := New("hello world", 0)
	s := New("world", 6, root)

	assert.Equal(t, "world", s.String())
	assert.Equal(t, 6, s.Offset())
	assert.True(t, s.Parent() == root)
}

func TestEqualIgnoresProvenance(t *testing.T) {
	a := New("x", 0)
	b := New("x", 99)
	c := New("y", 0)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, a.EqualString("x"))
	assert.False(t, a.EqualString("y"))
}

func TestSliceFromRoot(t *testing.T) {
	buffer := "SELECT id FROM users"
	root := New(buffer, 0)

	tests := []struct {
		name   string
		start  int
		length int
	}{
		{"prefix", 0, 6},
		{"middle", 7, 2},
		{"suffix", 15, 5},
		{"whole", 0, len(buffer)},
		{"empty", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := root.Slice(tt.start, tt.length)

			assert.Equal(t, buffer[tt.start:tt.start+tt.length], s.String())
			assert.Equal(t, tt.start, s.Offset())
			assert.True(t, s.Parent() == root)
		})
	}
}

func TestSliceFromRootWithOffset(t *testing.T) {
	root := New("abcdef", 100)
	s := root.Slice(2, 3)

	assert.Equal(t, "cde", s.String())
	assert.Equal(t, 102, s.Offset())
	assert.True(t, s.Parent() == root)
}

func TestSliceFlattening(t *testing.T) {
	root := New("the quick brown fox", 0)
	child := root.Slice(4, 11) // "quick brown"

	// Re-slicing a child is re-slicing the root with translated coordinates.
	got := child.Slice(6, 5)
	want := root.Slice(6+(child.Offset()-root.Offset()), 5)

	assert.Equal(t, "brown", got.String())
	assert.Equal(t, want.String(), got.String())
	assert.Equal(t, want.Offset(), got.Offset())

	// The chain never grows beyond root and child.
	assert.True(t, got.Parent() == root)
	assert.Zero(t, got.Parent().Parent())
}

func TestAbsSlice(t *testing.T) {
	root := New("abcdefgh", 0)
	child := root.Slice(2, 6) // "cdefgh" at offset 2

	s := child.AbsSlice(4, 3)

	assert.Equal(t, "efg", s.String())
	assert.Equal(t, 4, s.Offset())
	assert.True(t, s.Parent() == root)
}

func TestSliceOutOfRangePanics(t *testing.T) {
	root := New("abc", 0)

	assert.Panics(t, func() {
		root.Slice(1, 5)
	})
}

func TestSatisfies(t *testing.T) {
	s := New("abcdef", 10) // covers [10, 16)

	tests := []struct {
		name   string
		offset int
		length int
		want   bool
	}{
		{"exact span", 10, 6, true},
		{"inner span", 12, 2, true},
		{"empty at start", 10, 0, true},
		{"empty at end", 16, 0, true},
		{"starts before", 9, 2, false},
		{"runs past end", 12, 5, false},
		{"one past end", 11, 6, false},
		{"entirely before", 0, 5, false},
		{"entirely after", 20, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Satisfies(tt.offset, tt.length))
		})
	}
}

func TestConcatAdjacent(t *testing.T) {
	a := New("ab", 10)
	b := New("cd", 12)

	s, err := a.Concat(b)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", s.String())
	assert.Equal(t, 10, s.Offset())
}

func TestConcatNonAdjacent(t *testing.T) {
	a := New("ab", 10)
	c := New("x", 13)

	_, err := a.Concat(c)
	assert.IsError(t, err, ErrInvalidSliceOperation)
}

func TestConcatSharedParentAvoidsCopy(t *testing.T) {
	root := New("abcdef", 10)
	a := root.Slice(0, 2) // "ab" at 10
	b := root.Slice(2, 2) // "cd" at 12

	s, err := a.Concat(b)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", s.String())
	assert.Equal(t, 10, s.Offset())

	// The combined span is re-derived from the shared root.
	assert.True(t, s.Parent() == root)
}

func TestConcatDifferentRootsMaterializes(t *testing.T) {
	left := New("ab", 0).Slice(0, 2)
	right := New("cd", 2).Slice(0, 2)

	s, err := left.Concat(right)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", s.String())
	assert.Equal(t, 0, s.Offset())
	assert.Zero(t, s.Parent())
}

func TestConcatDetachedRoots(t *testing.T) {
	a := New("ab", 0)
	b := New("cd", 2)

	s, err := a.Concat(b)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", s.String())
	assert.Zero(t, s.Parent())
}

type nullSliceable struct{}

func (nullSliceable) ToSlice() *Slice { return nil }

func TestConcatTypeMismatch(t *testing.T) {
	a := New("ab", 0)

	tests := []struct {
		name  string
		other Sliceable
	}{
		{"nil interface", nil},
		{"typed nil slice", (*Slice)(nil)},
		{"sliceable without slice form", nullSliceable{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Concat(tt.other)
			assert.IsError(t, err, ErrTypeMismatch)
		})
	}
}

func TestConcatChain(t *testing.T) {
	root := New("one two three", 0)
	parts := []*Slice{
		root.Slice(0, 4), // "one "
		root.Slice(4, 4), // "two "
		root.Slice(8, 5), // "three"
	}

	merged := parts[0]

	var err error
	for _, part := range parts[1:] {
		merged, err = merged.Concat(part)
		assert.NoError(t, err)
	}

	assert.Equal(t, "one two three", merged.String())
	assert.Equal(t, 0, merged.Offset())
	assert.True(t, merged.Parent() == root)
}

func TestMatch(t *testing.T) {
	s := New("user_42", 30)

	m := s.Match(regexp.MustCompile(`^([a-z]+)_(\d+)$`))
	assert.Equal(t, []string{"user_42", "user", "42"}, m)

	assert.Zero(t, s.Match(regexp.MustCompile(`^\d+$`)))
}
