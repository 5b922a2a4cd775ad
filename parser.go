package nibble

// Parser consumes a prefix of its input and produces a value. On
// success it returns the remaining input and the value; on failure it
// returns the input unchanged along with the error.
type Parser[I, O any] func(I) (I, O, error)

// Map applies f to the parser's output.
func Map[I, O, P any](p Parser[I, O], f func(O) P) Parser[I, P] {
	return func(in I) (I, P, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero P
			return in, zero, err
		}
		return rest, f(out), nil
	}
}

// TryMap applies f to the parser's output; an error from f becomes a
// recoverable parse error at the original input.
func TryMap[I, O, P any](p Parser[I, O], f func(O) (P, error)) Parser[I, P] {
	return func(in I) (I, P, error) {
		var zero P
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		v, err := f(out)
		if err != nil {
			return in, zero, Error[I]{Input: in, Kind: KindMapRes}
		}
		return rest, v, nil
	}
}

// Opt makes p optional: a recoverable failure yields the zero value
// and consumes nothing. Incomplete and Failure still propagate.
func Opt[I, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero O
			if IsRecoverable(err) {
				return in, zero, nil
			}
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Value discards p's output and yields v instead.
func Value[I, O, P any](v P, p Parser[I, O]) Parser[I, P] {
	return Map(p, func(O) P { return v })
}

// Verify fails with KindVerify when the output does not satisfy pred.
func Verify[I, O any](p Parser[I, O], pred func(O) bool) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		if !pred(out) {
			return in, zero, Error[I]{Input: in, Kind: KindVerify}
		}
		return rest, out, nil
	}
}

// Recognize discards p's output and yields the consumed input slice
// instead.
func Recognize[I Input[I, E], E, O any](p Parser[I, O]) Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, _, err := p(in)
		if err != nil {
			var zero I
			return in, zero, err
		}
		return rest, in.Take(in.Offset(rest)), nil
	}
}

// AllConsuming succeeds only when p consumes the whole input.
func AllConsuming[I Input[I, E], E, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		if rest.Len() != 0 {
			return in, zero, Error[I]{Input: rest, Kind: KindEof}
		}
		return rest, out, nil
	}
}

// Cut commits to p: a recoverable failure is promoted to a Failure so
// enclosing alternatives stop backtracking.
func Cut[I, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil && IsRecoverable(err) {
			var zero O
			return in, zero, Failure{Err: err}
		}
		return rest, out, err
	}
}
