package streaming

import (
	"github.com/nibblekit/nibble"
)

// EscapedTransform parses alternating plain spans and escape
// sequences, accumulating decoded output: normal matches a plain
// span, escape introduces a sequence, transform decodes what follows
// it into a rune. Reaching the end of the window mid-run reports
// Incomplete, since more input could extend it.
func EscapedTransform[I nibble.ExtendInput[I, E, B], E nibble.Item, B nibble.ExtendBuilder](
	normal nibble.Parser[I, I], escape rune, transform nibble.Parser[I, rune],
) nibble.Parser[I, string] {
	return func(in I) (I, string, error) {
		acc := in.NewBuilder()
		rest := in
		for rest.Len() > 0 {
			next, span, err := normal(rest)
			switch {
			case err == nil:
				span.ExtendInto(acc)
				if next.Len() == 0 {
					return in, "", nibble.Incomplete{Needed: nibble.NeededUnknown}
				}
				if next.Len() == rest.Len() {
					return next, acc.String(), nil
				}
				rest = next
			case !nibble.IsRecoverable(err):
				return in, "", err
			default:
				e, _ := rest.Elements().Next()
				if nibble.ToRune(e) != escape {
					if rest.Len() == in.Len() {
						return in, "", nibble.Error[I]{Input: rest, Kind: nibble.KindEscapedTransform}
					}
					return rest, acc.String(), nil
				}
				afterEsc := one[I, E](rest)
				if afterEsc.Len() == 0 {
					return in, "", nibble.Incomplete{Needed: nibble.NeededUnknown}
				}
				next, r, err := transform(afterEsc)
				if err != nil {
					return in, "", err
				}
				acc.WriteRune(r)
				if next.Len() == 0 {
					return in, "", nibble.Incomplete{Needed: nibble.NeededUnknown}
				}
				rest = next
			}
		}
		return in, "", nibble.Incomplete{Needed: nibble.NeededUnknown}
	}
}
