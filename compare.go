package nibble

import (
	"unicode"
	"unicode/utf8"
)

// CompareResult distinguishes the three outcomes of a prefix
// comparison. Every comparison yields exactly one of them.
type CompareResult int

const (
	// CompareMatch: the pattern is a prefix of the input.
	CompareMatch CompareResult = iota
	// CompareIncomplete: the input ran out while still matching; only
	// more data can decide.
	CompareIncomplete
	// CompareMismatch: the input diverges from the pattern.
	CompareMismatch
)

func (r CompareResult) String() string {
	switch r {
	case CompareMatch:
		return "match"
	case CompareIncomplete:
		return "incomplete"
	case CompareMismatch:
		return "mismatch"
	}
	return "unknown"
}

// Comparer is the capability Tag-style parsers need from an input.
type Comparer interface {
	Compare(pattern string) CompareResult
	CompareNoCase(pattern string) CompareResult
}

// Compare reports how the window relates to pattern, byte-wise. An
// empty pattern always matches.
func (b Bytes) Compare(pattern string) CompareResult {
	return comparePrefix(b.s, pattern)
}

// CompareBytes is Compare for callers holding raw byte patterns.
func (b Bytes) CompareBytes(pattern []byte) CompareResult {
	return comparePrefix(b.s, pattern)
}

// CompareNoCase compares ignoring ASCII letter case.
func (b Bytes) CompareNoCase(pattern string) CompareResult {
	return compareNoCaseASCII(b.s, pattern)
}

// Compare reports how the window relates to pattern. Text and byte
// patterns compare the same way, over the UTF-8 encoded bytes.
func (t Text) Compare(pattern string) CompareResult {
	return comparePrefix(t.s, pattern)
}

// CompareBytes is Compare for callers holding raw byte patterns.
func (t Text) CompareBytes(pattern []byte) CompareResult {
	return comparePrefix(t.s, pattern)
}

// CompareNoCase compares ignoring letter case, folding one code point
// at a time on both sides. Per-code-point folding approximates full
// case folding: length-changing mappings such as ß→ss do not fold.
func (t Text) CompareNoCase(pattern string) CompareResult {
	s, p := t.s, pattern
	for len(s) > 0 && len(p) > 0 {
		sr, ssize := utf8.DecodeRuneInString(s)
		pr, psize := utf8.DecodeRuneInString(p)
		if unicode.ToLower(sr) != unicode.ToLower(pr) {
			return CompareMismatch
		}
		s, p = s[ssize:], p[psize:]
	}
	if len(p) > 0 {
		return CompareIncomplete
	}
	return CompareMatch
}

func comparePrefix[A, B ~[]byte | ~string](s A, pattern B) CompareResult {
	n := len(s)
	if len(pattern) < n {
		n = len(pattern)
	}
	for i := 0; i < n; i++ {
		if s[i] != pattern[i] {
			return CompareMismatch
		}
	}
	if len(s) < len(pattern) {
		return CompareIncomplete
	}
	return CompareMatch
}

func compareNoCaseASCII[A, B ~[]byte | ~string](s A, pattern B) CompareResult {
	n := len(s)
	if len(pattern) < n {
		n = len(pattern)
	}
	for i := 0; i < n; i++ {
		if lowerASCII(s[i]) != lowerASCII(pattern[i]) {
			return CompareMismatch
		}
	}
	if len(s) < len(pattern) {
		return CompareIncomplete
	}
	return CompareMatch
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
