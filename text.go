package nibble

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Text is a zero-copy window over UTF-8 text. Offsets and lengths are
// byte offsets; elements are decoded code points.
type Text struct {
	s   string
	off int
}

// NewText wraps s in a window positioned at origin zero.
func NewText(s string) Text {
	return Text{s: s}
}

// String returns the window contents.
func (t Text) String() string { return t.s }

// Origin returns the absolute offset of the window start.
func (t Text) Origin() int { return t.off }

// Len returns the remaining length in bytes, not runes.
func (t Text) Len() int { return len(t.s) }

// Take returns the first n bytes. It panics when n is out of range or
// would split a rune.
func (t Text) Take(n int) Text {
	t.checkTake(n)
	return Text{s: t.s[:n], off: t.off}
}

// TakeFrom returns the window starting after the first n bytes.
func (t Text) TakeFrom(n int) Text {
	t.checkTake(n)
	return Text{s: t.s[n:], off: t.off + n}
}

// TakeSplit splits the window at n, suffix first.
func (t Text) TakeSplit(n int) (rest, prefix Text) {
	return t.TakeFrom(n), t.Take(n)
}

// Offset returns the distance in bytes from the start of t to the
// start of other.
func (t Text) Offset(other Text) int { return other.off - t.off }

// Position returns the byte offset of the first rune satisfying pred,
// or -1 when none does.
func (t Text) Position(pred func(rune) bool) int {
	return strings.IndexFunc(t.s, pred)
}

// SliceIndex returns the byte offset just past the first count runes.
// When fewer runes remain the deficit is unknown: the byte width of
// runes yet to arrive cannot be predicted.
func (t Text) SliceIndex(count int) (int, error) {
	if count < 0 {
		panic(fmt.Sprintf("nibble: negative element count %d", count))
	}
	seen := 0
	for i := range t.s {
		if seen == count {
			return i, nil
		}
		seen++
	}
	if seen == count {
		return len(t.s), nil
	}
	return 0, Incomplete{Needed: NeededUnknown}
}

// Elements iterates the window's runes.
func (t Text) Elements() Iter[rune] { return &runeIter{s: t.s} }

// Indices iterates (byte offset, rune) pairs.
func (t Text) Indices() IndexIter[rune] { return &runeIndexIter{s: t.s} }

func (t Text) checkTake(n int) {
	if n < 0 || n > len(t.s) {
		panic(fmt.Sprintf("nibble: take %d out of range (len %d)", n, len(t.s)))
	}
	if n < len(t.s) && !utf8.RuneStart(t.s[n]) {
		panic(fmt.Sprintf("nibble: take %d splits a rune", n))
	}
}
