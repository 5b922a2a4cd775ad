package nibble

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Extender is an input that can accumulate copies of itself into a
// builder. Escape-decoding parsers use it to assemble output without
// committing to a concrete input type.
type Extender[B any] interface {
	// NewBuilder returns an empty builder for this input kind.
	NewBuilder() B
	// ExtendInto appends the input's contents to acc.
	ExtendInto(acc B)
}

// ExtendBuilder is the accumulator contract Extender builders satisfy.
// Both *bytes.Buffer and *strings.Builder do.
type ExtendBuilder interface {
	WriteRune(r rune) (int, error)
	String() string
}

// NewBuilder returns an empty byte buffer.
func (b Bytes) NewBuilder() *bytes.Buffer { return &bytes.Buffer{} }

// ExtendInto appends the view's bytes to acc.
func (b Bytes) ExtendInto(acc *bytes.Buffer) { acc.Write(b.s) }

// NewBuilder returns an empty string builder.
func (t Text) NewBuilder() *strings.Builder { return &strings.Builder{} }

// ExtendInto appends the view's text to acc.
func (t Text) ExtendInto(acc *strings.Builder) { acc.WriteString(t.s) }

// TextSource is an input whose contents may be read out as text.
type TextSource interface {
	// AsText returns the input as a string, or false when the
	// contents are not valid text.
	AsText() (string, bool)
}

// AsText returns the bytes as a string when they are valid UTF-8.
func (b Bytes) AsText() (string, bool) {
	if !utf8.Valid(b.s) {
		return "", false
	}
	return string(b.s), true
}

// AsText returns the underlying text.
func (t Text) AsText() (string, bool) { return t.s, true }

// Parseable lists the value types ParseTo can produce.
type Parseable interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | string
}

// ParseTo converts an input to a value, the way strconv would parse
// its text. It returns false when the input is not text or the text
// does not parse as T.
func ParseTo[T Parseable](src TextSource) (T, bool) {
	var out T
	s, ok := src.AsText()
	if !ok {
		return out, false
	}
	var err error
	switch p := any(&out).(type) {
	case *int:
		*p, err = strconv.Atoi(s)
	case *int8:
		var v int64
		v, err = strconv.ParseInt(s, 10, 8)
		*p = int8(v)
	case *int16:
		var v int64
		v, err = strconv.ParseInt(s, 10, 16)
		*p = int16(v)
	case *int32:
		var v int64
		v, err = strconv.ParseInt(s, 10, 32)
		*p = int32(v)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var v uint64
		v, err = strconv.ParseUint(s, 10, strconv.IntSize)
		*p = uint(v)
	case *uint8:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(v)
	case *uint16:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(v)
	case *uint32:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(v)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var v float64
		v, err = strconv.ParseFloat(s, 32)
		*p = float32(v)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *string:
		*p = s
	}
	if err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
