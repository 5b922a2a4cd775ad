package nibble

import (
	"unicode"
	"unicode/utf8"
)

// Item constrains the element kinds inputs yield: raw bytes or
// decoded code points. Classification is deliberately asymmetric
// between the two: byte predicates use ASCII ranges only, rune
// predicates use the Unicode tables.
type Item interface {
	byte | rune
}

// ToRune widens an element to the code point of equal value.
func ToRune[T Item](v T) rune {
	switch x := any(v).(type) {
	case byte:
		return rune(x)
	case rune:
		return x
	}
	return 0
}

// Width returns the element's encoded length in addressing units: one
// for a byte, the UTF-8 length for a code point. Code points outside
// the encodable range take the width of the replacement rune.
func Width[T Item](v T) int {
	switch x := any(v).(type) {
	case byte:
		return 1
	case rune:
		if w := utf8.RuneLen(x); w > 0 {
			return w
		}
		return utf8.RuneLen(utf8.RuneError)
	}
	return 1
}

// IsAlpha reports whether v is a letter: A-Z and a-z for bytes, the
// Unicode letter property for runes.
func IsAlpha[T Item](v T) bool {
	switch x := any(v).(type) {
	case byte:
		return x >= 'A' && x <= 'Z' || x >= 'a' && x <= 'z'
	case rune:
		return unicode.IsLetter(x)
	}
	return false
}

// IsDigit reports whether v is a decimal digit: 0-9 for bytes, the
// Unicode decimal digit property for runes.
func IsDigit[T Item](v T) bool {
	switch x := any(v).(type) {
	case byte:
		return x >= '0' && x <= '9'
	case rune:
		return unicode.IsDigit(x)
	}
	return false
}

// IsAlphanumeric reports whether v is a letter or a decimal digit.
func IsAlphanumeric[T Item](v T) bool {
	return IsAlpha(v) || IsDigit(v)
}

// IsHexDigit reports whether v is a hexadecimal digit. Runes use the
// Unicode Hex_Digit property, which adds the fullwidth forms.
func IsHexDigit[T Item](v T) bool {
	switch x := any(v).(type) {
	case byte:
		return x >= '0' && x <= '9' || x >= 'A' && x <= 'F' || x >= 'a' && x <= 'f'
	case rune:
		return unicode.Is(unicode.Hex_Digit, x)
	}
	return false
}

// IsOctDigit reports whether v is an octal digit. There is no Unicode
// octal class; both element kinds accept ASCII 0-7 only.
func IsOctDigit[T Item](v T) bool {
	r := ToRune(v)
	return r >= '0' && r <= '7'
}
