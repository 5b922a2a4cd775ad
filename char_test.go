package nibble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRune(t *testing.T) {
	assert.Equal(t, 'a', ToRune(byte('a')))
	assert.Equal(t, '€', ToRune('€'))

	t.Run("high bytes widen by value", func(t *testing.T) {
		// 0xE9 the byte is U+00E9 the rune, not a UTF-8 fragment.
		assert.Equal(t, 'é', ToRune(byte(0xE9)))
	})
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, Width(byte('a')))
	assert.Equal(t, 1, Width(byte(0xE9)))
	assert.Equal(t, 1, Width('a'))
	assert.Equal(t, 2, Width('é'))
	assert.Equal(t, 3, Width('€'))
	assert.Equal(t, 4, Width('\U0001f4a2'))

	t.Run("unencodable runes take the replacement width", func(t *testing.T) {
		assert.Equal(t, 3, Width(rune(-1)))
		assert.Equal(t, 3, Width(rune(0x110000)))
	})
}

func TestClassification(t *testing.T) {
	t.Run("bytes are ascii only", func(t *testing.T) {
		assert.True(t, IsAlpha(byte('g')))
		assert.True(t, IsAlpha(byte('G')))
		assert.False(t, IsAlpha(byte('1')))
		// the UTF-8 lead byte of é is not a letter
		assert.False(t, IsAlpha(byte(0xC3)))
		assert.False(t, IsAlpha(byte(0xE9)))

		assert.True(t, IsDigit(byte('7')))
		assert.False(t, IsDigit(byte('a')))

		assert.True(t, IsHexDigit(byte('f')))
		assert.True(t, IsHexDigit(byte('F')))
		assert.False(t, IsHexDigit(byte('g')))
	})

	t.Run("runes use the unicode tables", func(t *testing.T) {
		assert.True(t, IsAlpha('é'))
		assert.True(t, IsAlpha('世'))
		assert.False(t, IsAlpha('€'))

		// U+0667 ARABIC-INDIC DIGIT SEVEN is a decimal digit
		assert.True(t, IsDigit('٧'))
		assert.False(t, IsDigit('½'))

		// fullwidth A carries the Hex_Digit property
		assert.True(t, IsHexDigit('Ａ'))
		assert.False(t, IsHexDigit('g'))
	})

	t.Run("octal digits are ascii for both kinds", func(t *testing.T) {
		assert.True(t, IsOctDigit(byte('0')))
		assert.True(t, IsOctDigit('7'))
		assert.False(t, IsOctDigit(byte('8')))
		assert.False(t, IsOctDigit('9'))
		// no octal meaning for non-ascii digits
		assert.False(t, IsOctDigit('٧'))
	})

	t.Run("alphanumeric is the union", func(t *testing.T) {
		assert.True(t, IsAlphanumeric(byte('a')))
		assert.True(t, IsAlphanumeric(byte('3')))
		assert.False(t, IsAlphanumeric(byte('_')))
		assert.True(t, IsAlphanumeric('٧'))
		assert.True(t, IsAlphanumeric('é'))
		assert.False(t, IsAlphanumeric('!'))
	})
}
