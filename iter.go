package nibble

import "unicode/utf8"

type byteIter struct {
	s []byte
	i int
}

func (it *byteIter) Next() (byte, bool) {
	if it.i >= len(it.s) {
		return 0, false
	}
	b := it.s[it.i]
	it.i++
	return b, true
}

type byteIndexIter struct {
	s []byte
	i int
}

func (it *byteIndexIter) Next() (int, byte, bool) {
	if it.i >= len(it.s) {
		return 0, 0, false
	}
	off := it.i
	it.i++
	return off, it.s[off], true
}

type runeIter struct {
	s string
	i int
}

func (it *runeIter) Next() (rune, bool) {
	r, size, ok := decodeRune(it.s, it.i)
	if !ok {
		return 0, false
	}
	it.i += size
	return r, true
}

type runeIndexIter struct {
	s string
	i int
}

func (it *runeIndexIter) Next() (int, rune, bool) {
	off := it.i
	r, size, ok := decodeRune(it.s, off)
	if !ok {
		return 0, 0, false
	}
	it.i += size
	return off, r, true
}

// decodeRune reads the rune starting at byte offset i, with a
// single-byte fast path for ASCII.
func decodeRune(s string, i int) (rune, int, bool) {
	if i >= len(s) {
		return 0, 0, false
	}
	if c := s[i]; c < utf8.RuneSelf {
		return rune(c), 1, true
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	return r, size, true
}
