package htmlxpath

import "strings"

// LazyBase is the append-only text arena (C4): every text run in the
// document is concatenated into one backing buffer, and nodes retain only
// (start,end) offsets into it. Mutable until finalize, read-only after.
type LazyBase struct {
	buf       strings.Builder
	finder    *strFinder
	finalized bool
}

// NewLazyBase creates an empty arena.
func NewLazyBase() *LazyBase {
	return &LazyBase{}
}

// Append adds text to the buffer. If the last character currently in the
// buffer is not whitespace, a single space is inserted first, so
// concatenated text from adjacent elements never accidentally fuses words
// (spec §4.4).
func (a *LazyBase) Append(text string) {
	if a.finalized {
		panic("htmlxpath: append after arena finalize")
	}
	if s := a.buf.String(); s != "" {
		last := rune(s[len(s)-1])
		if !isWhitespaceASCII(last) {
			a.buf.WriteByte(' ')
		}
	}
	a.buf.WriteString(text)
}

// Len returns the current buffer length in bytes.
func (a *LazyBase) Len() int { return a.buf.Len() }

// Finalize builds the suffix array over the frozen buffer. No further
// Append is permitted; doing so panics.
func (a *LazyBase) Finalize() {
	a.finalized = true
	a.finder = newStrFinder(a.buf.String())
}

// Bytes exposes the underlying buffer contents. Only valid after Finalize.
func (a *LazyBase) Bytes() string { return a.buf.String() }

// FindAll returns every byte offset where needle occurs in the arena.
func (a *LazyBase) FindAll(needle string) []int {
	return a.finder.findAll(a.buf.String(), needle)
}

// Contains reports whether needle occurs anywhere in the arena.
func (a *LazyBase) Contains(needle string) bool {
	return len(a.FindAll(needle)) > 0
}

// LazyStr is a lazy text handle: (arena, start, end) pointing into a
// LazyBase. Never accessed before its owning arena is finalized.
type LazyStr struct {
	base  *LazyBase
	start int
	end   int
}

// initLazyStr opens a handle at node-push time: start=end=arena.Len().
func initLazyStr(base *LazyBase) LazyStr {
	n := base.Len()
	return LazyStr{base: base, start: n, end: n}
}

// finalize closes the handle at node-pop time: end becomes arena.Len().
func (l *LazyStr) finalize() { l.end = l.base.Len() }

// AsStr returns the slice [start,end) of the owning arena's buffer.
func (l LazyStr) AsStr() string {
	return l.base.Bytes()[l.start:l.end]
}

// Start and End expose the handle's offsets (spec §8 invariant 1).
func (l LazyStr) Start() int { return l.start }
func (l LazyStr) End() int   { return l.end }

// ContainsInRange reports whether needle occurs inside this handle's span,
// using the arena's suffix-array finder and filtering to [start,end).
func (l LazyStr) ContainsInRange(needle string) bool {
	for _, off := range l.base.FindAll(needle) {
		if off >= l.start && off < l.end {
			return true
		}
	}
	return false
}
