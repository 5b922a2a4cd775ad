package streaming

import (
	"github.com/nibblekit/nibble"
)

// Double recognizes a decimal floating point literal and converts it:
// optional sign, digits with optional fraction, optional exponent. No
// inf or nan literals. Hitting the end of the window anywhere the
// literal could still continue reports Incomplete.
func Double[I nibble.CoerceInput[I, E], E nibble.Item]() nibble.Parser[I, float64] {
	return func(in I) (I, float64, error) {
		end, seen, eof := floatSyntax[I, E](in)
		if eof {
			return in, 0, nibble.Incomplete{Needed: 1}
		}
		if !seen {
			return in, 0, nibble.Error[I]{Input: in, Kind: nibble.KindFloat}
		}
		rest, prefix := in.TakeSplit(end)
		v, ok := nibble.ParseTo[float64](prefix)
		if !ok {
			return in, 0, nibble.Error[I]{Input: in, Kind: nibble.KindFloat}
		}
		return rest, v, nil
	}
}

// floatSyntax scans a float literal at the head of in. It returns the
// unit offset just past the literal, whether any mantissa digit was
// seen, and whether the scan ran off the end of the window. Float
// syntax is ASCII, so end only ever lands past single-unit elements;
// an uncommitted trailing dot or exponent is not included.
func floatSyntax[I nibble.Input[I, E], E nibble.Item](in I) (end int, seen, eof bool) {
	var (
		off int
		e   E
		ok  bool
	)
	it := in.Indices()
	next := func() { off, e, ok = it.Next() }
	isDigit := func() bool {
		if !ok {
			return false
		}
		r := nibble.ToRune(e)
		return r >= '0' && r <= '9'
	}
	next()

	if ok {
		if r := nibble.ToRune(e); r == '+' || r == '-' {
			next()
		}
	}
	for isDigit() {
		seen = true
		end = off + 1
		next()
	}
	if ok && nibble.ToRune(e) == '.' {
		if seen {
			end = off + 1
		}
		next()
		for isDigit() {
			seen = true
			end = off + 1
			next()
		}
	}
	if seen && ok {
		if r := nibble.ToRune(e); r == 'e' || r == 'E' {
			next()
			if ok {
				if r := nibble.ToRune(e); r == '+' || r == '-' {
					next()
				}
			}
			for isDigit() {
				end = off + 1
				next()
			}
		}
	}
	return end, seen, !ok
}
