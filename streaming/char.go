package streaming

import (
	"strings"

	"github.com/nibblekit/nibble"
)

// one consumes the single head element already known to be present.
func one[I nibble.Input[I, E], E any](in I) I {
	off, err := in.SliceIndex(1)
	if err != nil {
		panic(err)
	}
	return in.TakeFrom(off)
}

// Char matches exactly the code point c.
func Char[I nibble.Input[I, E], E nibble.Item](c rune) nibble.Parser[I, rune] {
	return func(in I) (I, rune, error) {
		e, ok := in.Elements().Next()
		if !ok {
			return in, 0, nibble.Incomplete{Needed: 1}
		}
		if nibble.ToRune(e) != c {
			return in, 0, nibble.Error[I]{Input: in, Kind: nibble.KindChar}
		}
		return one[I, E](in), c, nil
	}
}

// AnyChar matches any single code point.
func AnyChar[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, rune] {
	return func(in I) (I, rune, error) {
		e, ok := in.Elements().Next()
		if !ok {
			return in, 0, nibble.Incomplete{Needed: 1}
		}
		return one[I, E](in), nibble.ToRune(e), nil
	}
}

// Satisfy matches a single code point for which pred holds.
func Satisfy[I nibble.Input[I, E], E nibble.Item](pred func(rune) bool) nibble.Parser[I, rune] {
	return func(in I) (I, rune, error) {
		e, ok := in.Elements().Next()
		if !ok {
			return in, 0, nibble.Incomplete{Needed: 1}
		}
		r := nibble.ToRune(e)
		if !pred(r) {
			return in, 0, nibble.Error[I]{Input: in, Kind: nibble.KindSatisfy}
		}
		return one[I, E](in), r, nil
	}
}

// OneOf matches a single code point contained in set.
func OneOf[I nibble.Input[I, E], E nibble.Item](set string) nibble.Parser[I, rune] {
	return func(in I) (I, rune, error) {
		e, ok := in.Elements().Next()
		if !ok {
			return in, 0, nibble.Incomplete{Needed: 1}
		}
		r := nibble.ToRune(e)
		if !strings.ContainsRune(set, r) {
			return in, 0, nibble.Error[I]{Input: in, Kind: nibble.KindOneOf}
		}
		return one[I, E](in), r, nil
	}
}

// NoneOf matches a single code point not contained in set.
func NoneOf[I nibble.Input[I, E], E nibble.Item](set string) nibble.Parser[I, rune] {
	return func(in I) (I, rune, error) {
		e, ok := in.Elements().Next()
		if !ok {
			return in, 0, nibble.Incomplete{Needed: 1}
		}
		r := nibble.ToRune(e)
		if strings.ContainsRune(set, r) {
			return in, 0, nibble.Error[I]{Input: in, Kind: nibble.KindNoneOf}
		}
		return one[I, E](in), r, nil
	}
}

// Alpha0 consumes zero or more letters.
func Alpha0[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !nibble.IsAlpha(e) })
}

// Alpha1 consumes one or more letters.
func Alpha1[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !nibble.IsAlpha(e) }, nibble.KindAlpha)
}

// Digit0 consumes zero or more decimal digits.
func Digit0[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !nibble.IsDigit(e) })
}

// Digit1 consumes one or more decimal digits.
func Digit1[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !nibble.IsDigit(e) }, nibble.KindDigit)
}

// HexDigit0 consumes zero or more hex digits.
func HexDigit0[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !nibble.IsHexDigit(e) })
}

// HexDigit1 consumes one or more hex digits.
func HexDigit1[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !nibble.IsHexDigit(e) }, nibble.KindHexDigit)
}

// OctDigit0 consumes zero or more octal digits.
func OctDigit0[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !nibble.IsOctDigit(e) })
}

// OctDigit1 consumes one or more octal digits.
func OctDigit1[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !nibble.IsOctDigit(e) }, nibble.KindOctDigit)
}

// Alphanumeric0 consumes zero or more letters and digits.
func Alphanumeric0[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !nibble.IsAlphanumeric(e) })
}

// Alphanumeric1 consumes one or more letters and digits.
func Alphanumeric1[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !nibble.IsAlphanumeric(e) }, nibble.KindAlphaNumeric)
}

// Space0 consumes zero or more spaces and tabs.
func Space0[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !isSpace(e) })
}

// Space1 consumes one or more spaces and tabs.
func Space1[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !isSpace(e) }, nibble.KindSpace)
}

// Multispace0 consumes zero or more spaces, tabs, and line breaks.
func Multispace0[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !isMultispace(e) })
}

// Multispace1 consumes one or more spaces, tabs, and line breaks.
func Multispace1[I nibble.Input[I, E], E nibble.Item]() nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !isMultispace(e) }, nibble.KindMultiSpace)
}

func isSpace[E nibble.Item](e E) bool {
	r := nibble.ToRune(e)
	return r == ' ' || r == '\t'
}

func isMultispace[E nibble.Item](e E) bool {
	r := nibble.ToRune(e)
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
