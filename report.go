package nibble

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Location is a human-oriented position in text: 1-based line and
// rune column, plus the byte offset it was derived from.
type Location struct {
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// lineIndex maps byte offsets in src to lines.
type lineIndex struct {
	src string

	// lineStart holds byte offsets of each line start; line 1 is at 0.
	lineStart []int
}

func newLineIndex(src string) *lineIndex {
	lineStart := make([]int, 1, 16)
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &lineIndex{src: src, lineStart: lineStart}
}

func (ix *lineIndex) locate(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.src) {
		offset = len(ix.src)
	}

	// Find first lineStart > offset, then step back one.
	line := sort.Search(len(ix.lineStart), func(i int) bool {
		return ix.lineStart[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	start := ix.lineStart[line]

	// Column is rune-based and 1-indexed.
	col := utf8.RuneCountInString(ix.src[start:offset]) + 1

	return Location{Line: line + 1, Column: col, Offset: offset}
}

func (ix *lineIndex) lineAt(line int) string {
	start := ix.lineStart[line-1]
	end := len(ix.src)
	if line < len(ix.lineStart) {
		end = ix.lineStart[line] - 1
	}
	return ix.src[start:end]
}

// Locate converts a byte offset in src to a line/column Location.
func Locate(src string, offset int) Location {
	return newLineIndex(src).locate(offset)
}

// Report renders a parse error against its source, quoting the
// offending line with a caret under the error column. Errors without
// a position render as their plain message.
func Report(src string, err error) string {
	offset, kind, ok := errorSite(err)
	if !ok {
		return err.Error()
	}

	ix := newLineIndex(src)
	loc := ix.locate(offset)
	line := ix.lineAt(loc.Line)

	// The caret pad uses display width so it lines up under wide
	// runes and tabs are left alone.
	prefix := loc.Offset - ix.lineStart[loc.Line-1]
	pad := strings.Repeat(" ", runewidth.StringWidth(line[:prefix]))

	var sb strings.Builder
	fmt.Fprintf(&sb, "parse error at %s: %s\n", loc, kind)
	fmt.Fprintf(&sb, "  | %s\n", line)
	fmt.Fprintf(&sb, "  | %s^\n", pad)
	return sb.String()
}

func errorSite(err error) (offset int, kind Kind, ok bool) {
	switch e := err.(type) {
	case Error[Text]:
		return e.Input.Origin(), e.Kind, true
	case Error[Bytes]:
		return e.Input.Origin(), e.Kind, true
	case Failure:
		return errorSite(e.Err)
	}
	return 0, 0, false
}
