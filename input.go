// Package nibble decouples parser combinators from the concrete
// representation of their input. The same parsers run over raw byte
// sequences (Bytes) and UTF-8 text (Text), in either streaming mode,
// where running out of input is a recoverable signal, or complete
// mode, where the end of the input is final.
package nibble

// Iter walks the elements of a window in order.
type Iter[E any] interface {
	Next() (E, bool)
}

// IndexIter walks elements together with their offsets in addressing
// units. Every offset it yields is a valid Take argument on the window
// it came from.
type IndexIter[E any] interface {
	Next() (int, E, bool)
}

// Input is the contract parsers consume. I is the implementing window
// type itself, E the element kind it yields: bytes for Bytes, runes
// for Text. Lengths and offsets are always in addressing units (bytes
// for both concrete windows), never in elements.
type Input[I, E any] interface {
	// Len returns the remaining length in addressing units.
	Len() int
	// Take returns the prefix of n units. It panics when n is out of
	// range or does not fall on an element boundary.
	Take(n int) I
	// TakeFrom returns the suffix starting at n units.
	TakeFrom(n int) I
	// TakeSplit splits the window at n, suffix first.
	TakeSplit(n int) (rest, prefix I)
	// Offset returns the distance in units from the start of the
	// receiver to the start of other.
	Offset(other I) int
	// Position returns the unit offset of the first element satisfying
	// pred, or -1 when none does.
	Position(pred func(E) bool) int
	// SliceIndex translates an element count into the unit offset just
	// past those elements. When fewer elements remain it returns an
	// Incomplete error carrying the deficit, precise where the window
	// can know it.
	SliceIndex(count int) (int, error)
	// Elements iterates the window's elements.
	Elements() Iter[E]
	// Indices iterates (unit offset, element) pairs.
	Indices() IndexIter[E]
}

// Composite constraints naming the capability sets the mode-specific
// parsers require.

// CompareInput is consumed by Tag-style parsers.
type CompareInput[I, E any] interface {
	Input[I, E]
	Comparer
}

// SearchInput is consumed by TakeUntil-style parsers.
type SearchInput[I, E any] interface {
	Input[I, E]
	SubstringSearcher
}

// ExtendInput is consumed by accumulator-driven parsers.
type ExtendInput[I, E, B any] interface {
	Input[I, E]
	Extender[B]
}

// CoerceInput is consumed by parsers that coerce what they recognize.
type CoerceInput[I, E any] interface {
	Input[I, E]
	TextSource
}

// SplitAtPosition splits in before the first element satisfying pred.
// When no element matches, streaming semantics apply: at least one
// more element is needed to decide.
func SplitAtPosition[I Input[I, E], E any](in I, pred func(E) bool) (rest, prefix I, err error) {
	pos := in.Position(pred)
	if pos < 0 {
		var zero I
		return zero, zero, Incomplete{Needed: 1}
	}
	rest, prefix = in.TakeSplit(pos)
	return rest, prefix, nil
}

// SplitAtPosition1 is SplitAtPosition requiring a non-empty prefix: a
// match at position zero is an error of the given kind.
func SplitAtPosition1[I Input[I, E], E any](in I, pred func(E) bool, kind Kind) (rest, prefix I, err error) {
	pos := in.Position(pred)
	switch pos {
	case -1:
		var zero I
		return zero, zero, Incomplete{Needed: 1}
	case 0:
		var zero I
		return zero, zero, Error[I]{Input: in, Kind: kind}
	default:
		rest, prefix = in.TakeSplit(pos)
		return rest, prefix, nil
	}
}

// SplitAtPositionComplete is SplitAtPosition for complete input: when
// nothing matches, the whole window is the prefix.
func SplitAtPositionComplete[I Input[I, E], E any](in I, pred func(E) bool) (rest, prefix I) {
	if pos := in.Position(pred); pos >= 0 {
		return in.TakeSplit(pos)
	}
	return in.TakeSplit(in.Len())
}

// SplitAtPosition1Complete is SplitAtPositionComplete requiring a
// non-empty prefix: empty input or a match at position zero is an
// error of the given kind.
func SplitAtPosition1Complete[I Input[I, E], E any](in I, pred func(E) bool, kind Kind) (rest, prefix I, err error) {
	pos := in.Position(pred)
	if pos == 0 || pos < 0 && in.Len() == 0 {
		var zero I
		return zero, zero, Error[I]{Input: in, Kind: kind}
	}
	if pos < 0 {
		pos = in.Len()
	}
	rest, prefix = in.TakeSplit(pos)
	return rest, prefix, nil
}
