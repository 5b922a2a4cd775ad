package nibble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	src := "first\nsecond line\n\nlast"

	tests := []struct {
		name     string
		offset   int
		expected Location
	}{
		{name: "start of input", offset: 0, expected: Location{Line: 1, Column: 1, Offset: 0}},
		{name: "middle of line one", offset: 3, expected: Location{Line: 1, Column: 4, Offset: 3}},
		{name: "on the newline", offset: 5, expected: Location{Line: 1, Column: 6, Offset: 5}},
		{name: "start of line two", offset: 6, expected: Location{Line: 2, Column: 1, Offset: 6}},
		{name: "empty line", offset: 18, expected: Location{Line: 3, Column: 1, Offset: 18}},
		{name: "last line", offset: 21, expected: Location{Line: 4, Column: 3, Offset: 21}},
		{name: "end of input", offset: 23, expected: Location{Line: 4, Column: 5, Offset: 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Locate(src, tt.offset))
		})
	}

	t.Run("offsets clamp to the input", func(t *testing.T) {
		assert.Equal(t, Location{Line: 1, Column: 1, Offset: 0}, Locate(src, -5))
		assert.Equal(t, Location{Line: 4, Column: 5, Offset: 23}, Locate(src, 100))
	})

	t.Run("columns count runes", func(t *testing.T) {
		// é is two bytes but one column
		assert.Equal(t, Location{Line: 1, Column: 3, Offset: 3}, Locate("éx", 3))
	})

	t.Run("string form", func(t *testing.T) {
		assert.Equal(t, "2:7", Location{Line: 2, Column: 7}.String())
	})
}

func TestReport(t *testing.T) {
	src := "key = value\nkee = value\n"

	t.Run("quotes the line with a caret", func(t *testing.T) {
		rest := NewText(src).TakeFrom(16)
		err := Error[Text]{Input: rest, Kind: KindTag}
		expected := "parse error at 2:5: tag\n" +
			"  | kee = value\n" +
			"  |     ^\n"
		assert.Equal(t, expected, Report(src, err))
	})

	t.Run("sees through failure", func(t *testing.T) {
		rest := NewText(src).TakeFrom(16)
		err := Failure{Err: Error[Text]{Input: rest, Kind: KindTag}}
		assert.Contains(t, Report(src, err), "parse error at 2:5")
	})

	t.Run("byte input works the same", func(t *testing.T) {
		rest := NewBytes([]byte(src)).TakeFrom(12)
		err := Error[Bytes]{Input: rest, Kind: KindDigit}
		assert.Contains(t, Report(src, err), "parse error at 2:1: digit")
	})

	t.Run("positionless errors fall back to the message", func(t *testing.T) {
		err := Incomplete{Needed: 2}
		assert.Equal(t, "parsing requires 2 more units", Report(src, err))
	})

	t.Run("caret aligns under wide runes", func(t *testing.T) {
		wide := "世界x\n"
		rest := NewText(wide).TakeFrom(6)
		got := Report(wide, Error[Text]{Input: rest, Kind: KindChar})
		expected := "parse error at 1:3: char\n" +
			"  | 世界x\n" +
			"  |     ^\n"
		assert.Equal(t, expected, got)
	})

	t.Run("error at the very end of input", func(t *testing.T) {
		end := NewText("ab").TakeFrom(2)
		got := Report("ab", Error[Text]{Input: end, Kind: KindEof})
		require.Contains(t, got, "parse error at 1:3: end of input")
		assert.Contains(t, got, "  |   ^\n")
	})
}
