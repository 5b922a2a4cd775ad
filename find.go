package nibble

import (
	"bytes"
	"strings"
)

// SubstringSearcher is the capability TakeUntil-style parsers need
// from an input.
type SubstringSearcher interface {
	FindSubstring(sub string) int
}

// FindToken reports whether tok occurs anywhere in the window.
func (b Bytes) FindToken(tok byte) bool {
	return bytes.IndexByte(b.s, tok) >= 0
}

// FindToken reports whether tok occurs anywhere in the window,
// comparing whole code points.
func (t Text) FindToken(tok rune) bool {
	return strings.ContainsRune(t.s, tok)
}

// FindSubstring returns the byte offset of the first occurrence of
// sub, or -1. A pattern longer than the window cannot occur; an empty
// pattern occurs at offset zero. The search anchors on the first
// pattern byte and verifies the remainder, moving one past every
// failed anchor.
func (b Bytes) FindSubstring(sub string) int {
	if len(sub) > len(b.s) {
		return -1
	}
	if len(sub) == 0 {
		return 0
	}
	if len(sub) == 1 {
		return bytes.IndexByte(b.s, sub[0])
	}
	first, tail := sub[0], sub[1:]
	// anchors beyond this point leave no room for the whole pattern
	limit := len(b.s) - len(sub) + 1
	for off := 0; off < limit; {
		i := bytes.IndexByte(b.s[off:limit], first)
		if i < 0 {
			return -1
		}
		pos := off + i
		if string(b.s[pos+1:pos+len(sub)]) == tail {
			return pos
		}
		off = pos + 1
	}
	return -1
}

// FindSubstring returns the byte offset of the first occurrence of
// sub, or -1.
func (t Text) FindSubstring(sub string) int {
	if len(sub) > len(t.s) {
		return -1
	}
	return strings.Index(t.s, sub)
}
