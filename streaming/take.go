// Package streaming has parsers for input that may grow: running off
// the end of the current window yields an Incomplete error rather
// than a parse failure, so a caller can fetch more data and retry.
package streaming

import (
	"github.com/nibblekit/nibble"
)

// Tag matches pattern at the head of the input and yields the matched
// window.
func Tag[I nibble.CompareInput[I, E], E any](pattern string) nibble.Parser[I, I] {
	return func(in I) (I, I, error) {
		var zero I
		switch in.Compare(pattern) {
		case nibble.CompareIncomplete:
			return in, zero, nibble.Incomplete{Needed: nibble.Needed(len(pattern) - in.Len())}
		case nibble.CompareMismatch:
			return in, zero, nibble.Error[I]{Input: in, Kind: nibble.KindTag}
		}
		rest, prefix := in.TakeSplit(len(pattern))
		return rest, prefix, nil
	}
}

// TagNoCase is Tag with ASCII case folded on both sides.
func TagNoCase[I nibble.CompareInput[I, E], E any](pattern string) nibble.Parser[I, I] {
	return func(in I) (I, I, error) {
		var zero I
		switch in.CompareNoCase(pattern) {
		case nibble.CompareIncomplete:
			return in, zero, nibble.Incomplete{Needed: nibble.Needed(len(pattern) - in.Len())}
		case nibble.CompareMismatch:
			return in, zero, nibble.Error[I]{Input: in, Kind: nibble.KindTag}
		}
		rest, prefix := in.TakeSplit(len(pattern))
		return rest, prefix, nil
	}
}

// Take consumes exactly count elements.
func Take[I nibble.Input[I, E], E any](count int) nibble.Parser[I, I] {
	return func(in I) (I, I, error) {
		off, err := in.SliceIndex(count)
		if err != nil {
			var zero I
			return in, zero, err
		}
		rest, prefix := in.TakeSplit(off)
		return rest, prefix, nil
	}
}

// TakeWhile consumes elements as long as pred holds.
func TakeWhile[I nibble.Input[I, E], E any](pred func(E) bool) nibble.Parser[I, I] {
	return split0[I, E](func(e E) bool { return !pred(e) })
}

// TakeWhile1 is TakeWhile requiring at least one element.
func TakeWhile1[I nibble.Input[I, E], E any](pred func(E) bool) nibble.Parser[I, I] {
	return split1[I, E](func(e E) bool { return !pred(e) }, nibble.KindTakeWhile1)
}

// TakeTill consumes elements until pred holds.
func TakeTill[I nibble.Input[I, E], E any](pred func(E) bool) nibble.Parser[I, I] {
	return split0[I, E](pred)
}

// TakeTill1 is TakeTill requiring at least one element.
func TakeTill1[I nibble.Input[I, E], E any](pred func(E) bool) nibble.Parser[I, I] {
	return split1[I, E](pred, nibble.KindTakeTill1)
}

// TakeWhileMN consumes at least m and at most n elements satisfying
// pred. Reaching the end of the window before n elements reports
// Incomplete, since more input could extend the match.
func TakeWhileMN[I nibble.Input[I, E], E any](m, n int, pred func(E) bool) nibble.Parser[I, I] {
	return func(in I) (I, I, error) {
		var zero I
		if n < m {
			return in, zero, nibble.Error[I]{Input: in, Kind: nibble.KindTakeWhileMN}
		}
		it := in.Indices()
		count := 0
		for count < n {
			off, e, ok := it.Next()
			if !ok {
				return in, zero, nibble.Incomplete{Needed: 1}
			}
			if !pred(e) {
				if count < m {
					return in, zero, nibble.Error[I]{Input: in, Kind: nibble.KindTakeWhileMN}
				}
				rest, prefix := in.TakeSplit(off)
				return rest, prefix, nil
			}
			count++
		}
		boundary := in.Len()
		if off, _, ok := it.Next(); ok {
			boundary = off
		}
		rest, prefix := in.TakeSplit(boundary)
		return rest, prefix, nil
	}
}

// TakeUntil consumes up to, not including, the first occurrence of
// sub. When sub does not occur, at least its length is still needed.
func TakeUntil[I nibble.SearchInput[I, E], E any](sub string) nibble.Parser[I, I] {
	return func(in I) (I, I, error) {
		pos := in.FindSubstring(sub)
		if pos < 0 {
			var zero I
			return in, zero, nibble.Incomplete{Needed: nibble.Needed(len(sub))}
		}
		rest, prefix := in.TakeSplit(pos)
		return rest, prefix, nil
	}
}

func split0[I nibble.Input[I, E], E any](pred func(E) bool) nibble.Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, prefix, err := nibble.SplitAtPosition(in, pred)
		if err != nil {
			var zero I
			return in, zero, err
		}
		return rest, prefix, nil
	}
}

func split1[I nibble.Input[I, E], E any](pred func(E) bool, kind nibble.Kind) nibble.Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, prefix, err := nibble.SplitAtPosition1(in, pred, kind)
		if err != nil {
			var zero I
			return in, zero, err
		}
		return rest, prefix, nil
	}
}
