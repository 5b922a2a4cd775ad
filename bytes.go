package nibble

import "fmt"

// Bytes is a zero-copy window over a byte buffer. The window remembers
// the origin offset it sits at within the buffer it was created from,
// so related windows can measure exact distances between each other.
type Bytes struct {
	s   []byte
	off int
}

// NewBytes wraps buf in a window positioned at origin zero.
func NewBytes(buf []byte) Bytes {
	return Bytes{s: buf}
}

// Bytes returns the window contents.
func (b Bytes) Bytes() []byte { return b.s }

// Origin returns the absolute offset of the window start.
func (b Bytes) Origin() int { return b.off }

func (b Bytes) String() string { return string(b.s) }

// Len returns the remaining length in bytes.
func (b Bytes) Len() int { return len(b.s) }

// Take returns the first n bytes. It panics when n is out of range.
func (b Bytes) Take(n int) Bytes {
	b.checkTake(n)
	return Bytes{s: b.s[:n], off: b.off}
}

// TakeFrom returns the window starting after the first n bytes.
func (b Bytes) TakeFrom(n int) Bytes {
	b.checkTake(n)
	return Bytes{s: b.s[n:], off: b.off + n}
}

// TakeSplit splits the window at n, suffix first.
func (b Bytes) TakeSplit(n int) (rest, prefix Bytes) {
	return b.TakeFrom(n), b.Take(n)
}

// Offset returns the distance in bytes from the start of b to the
// start of other.
func (b Bytes) Offset(other Bytes) int { return other.off - b.off }

// Position returns the offset of the first byte satisfying pred, or
// -1 when none does.
func (b Bytes) Position(pred func(byte) bool) int {
	for i, c := range b.s {
		if pred(c) {
			return i
		}
	}
	return -1
}

// SliceIndex translates an element count into a byte offset. For byte
// windows the two coincide; a deficit is reported precisely.
func (b Bytes) SliceIndex(count int) (int, error) {
	if count < 0 {
		panic(fmt.Sprintf("nibble: negative element count %d", count))
	}
	if count <= len(b.s) {
		return count, nil
	}
	return 0, Incomplete{Needed: Needed(count - len(b.s))}
}

// Elements iterates the window's bytes.
func (b Bytes) Elements() Iter[byte] { return &byteIter{s: b.s} }

// Indices iterates (offset, byte) pairs.
func (b Bytes) Indices() IndexIter[byte] { return &byteIndexIter{s: b.s} }

func (b Bytes) checkTake(n int) {
	if n < 0 || n > len(b.s) {
		panic(fmt.Sprintf("nibble: take %d out of range (len %d)", n, len(b.s)))
	}
}
