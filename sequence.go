package nibble

// Pair holds the outputs of two sequenced parsers.
type Pair[F, S any] struct {
	First  F
	Second S
}

// Both runs first then second, yielding both outputs.
func Both[I, F, S any](first Parser[I, F], second Parser[I, S]) Parser[I, Pair[F, S]] {
	return func(in I) (I, Pair[F, S], error) {
		var zero Pair[F, S]
		rest, f, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, s, err := second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, Pair[F, S]{First: f, Second: s}, nil
	}
}

// Separated runs first, sep, then second, discarding sep's output.
func Separated[I, F, X, S any](first Parser[I, F], sep Parser[I, X], second Parser[I, S]) Parser[I, Pair[F, S]] {
	return func(in I) (I, Pair[F, S], error) {
		var zero Pair[F, S]
		rest, f, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = sep(rest)
		if err != nil {
			return in, zero, err
		}
		rest, s, err := second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, Pair[F, S]{First: f, Second: s}, nil
	}
}

// Preceded runs prefix then p, yielding p's output.
func Preceded[I, X, O any](prefix Parser[I, X], p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, _, err := prefix(in)
		if err != nil {
			return in, zero, err
		}
		rest, out, err := p(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Terminated runs p then suffix, yielding p's output.
func Terminated[I, O, X any](p Parser[I, O], suffix Parser[I, X]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = suffix(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Delimited runs open, p, then closing, yielding p's output.
func Delimited[I, X, O, Y any](open Parser[I, X], p Parser[I, O], closing Parser[I, Y]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, _, err := open(in)
		if err != nil {
			return in, zero, err
		}
		rest, out, err := p(rest)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = closing(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}
