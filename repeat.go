package nibble

// upperAllows reports whether the upper edge permits the repetition
// count reaching next.
func upperAllows(b Bound, next uint) bool {
	switch b.hi.Kind {
	case EdgeIncluded:
		return next <= b.hi.N
	case EdgeExcluded:
		return next < b.hi.N
	}
	return true
}

// Many applies p repeatedly, collecting the outputs, until the bound's
// upper edge is reached or p stops matching. The final count must
// satisfy the bound. An inverted bound is a program error and yields a
// Failure. Each repetition must consume input.
func Many[I Input[I, E], E, O any](b Bound, p Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		if b.IsInverted() {
			return in, nil, Failure{Err: Error[I]{Input: in, Kind: KindMany}}
		}
		var out []O
		rest := in
		count := uint(0)
		it := b.BoundedIter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
			if !upperAllows(b, count+1) {
				break
			}
			next, o, err := p(rest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				if b.Contains(count) {
					return rest, out, nil
				}
				return in, nil, err
			}
			if next.Len() == rest.Len() {
				return in, nil, Error[I]{Input: rest, Kind: KindMany}
			}
			out = append(out, o)
			rest = next
			count++
		}
		if b.Contains(count) {
			return rest, out, nil
		}
		return in, nil, Error[I]{Input: rest, Kind: KindMany}
	}
}

// Fold applies p repeatedly under the bound, folding each output into
// an accumulator seeded by init.
func Fold[I Input[I, E], E, O, A any](b Bound, p Parser[I, O], init func() A, f func(A, O) A) Parser[I, A] {
	return func(in I) (I, A, error) {
		var zero A
		if b.IsInverted() {
			return in, zero, Failure{Err: Error[I]{Input: in, Kind: KindFold}}
		}
		acc := init()
		rest := in
		count := uint(0)
		it := b.SaturatingIter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
			if !upperAllows(b, count+1) {
				break
			}
			next, o, err := p(rest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, zero, err
				}
				if b.Contains(count) {
					return rest, acc, nil
				}
				return in, zero, err
			}
			if next.Len() == rest.Len() {
				return in, zero, Error[I]{Input: rest, Kind: KindFold}
			}
			acc = f(acc, o)
			rest = next
			count++
		}
		if b.Contains(count) {
			return rest, acc, nil
		}
		return in, zero, Error[I]{Input: rest, Kind: KindFold}
	}
}

// Many0 applies p zero or more times, collecting the outputs. Each
// repetition must consume input.
func Many0[I Input[I, E], E, O any](p Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		var out []O
		rest := in
		for {
			next, o, err := p(rest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			if next.Len() == rest.Len() {
				return in, nil, Error[I]{Input: rest, Kind: KindMany0}
			}
			out = append(out, o)
			rest = next
		}
	}
}

// Many1 applies p one or more times, collecting the outputs.
func Many1[I Input[I, E], E, O any](p Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		rest, first, err := p(in)
		if err != nil {
			return in, nil, err
		}
		out := []O{first}
		for {
			next, o, err := p(rest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			if next.Len() == rest.Len() {
				return in, nil, Error[I]{Input: rest, Kind: KindMany1}
			}
			out = append(out, o)
			rest = next
		}
	}
}

// Count applies p exactly n times.
func Count[I, O any](n int, p Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		out := make([]O, 0, n)
		rest := in
		for i := 0; i < n; i++ {
			next, o, err := p(rest)
			if err != nil {
				return in, nil, err
			}
			out = append(out, o)
			rest = next
		}
		return rest, out, nil
	}
}

// SeparatedList0 parses zero or more items separated by sep. The
// separator's output is discarded, and a trailing separator is left
// unconsumed.
func SeparatedList0[I Input[I, E], E, X, O any](sep Parser[I, X], item Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		rest, first, err := item(in)
		if err != nil {
			if !IsRecoverable(err) {
				return in, nil, err
			}
			return in, nil, nil
		}
		out := []O{first}
		for {
			sepRest, _, err := sep(rest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			itemRest, o, err := item(sepRest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			if itemRest.Len() == rest.Len() {
				return in, nil, Error[I]{Input: rest, Kind: KindSeparatedList}
			}
			out = append(out, o)
			rest = itemRest
		}
	}
}

// SeparatedList1 parses one or more items separated by sep.
func SeparatedList1[I Input[I, E], E, X, O any](sep Parser[I, X], item Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		rest, first, err := item(in)
		if err != nil {
			return in, nil, err
		}
		out := []O{first}
		for {
			sepRest, _, err := sep(rest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			itemRest, o, err := item(sepRest)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			if itemRest.Len() == rest.Len() {
				return in, nil, Error[I]{Input: rest, Kind: KindSeparatedList}
			}
			out = append(out, o)
			rest = itemRest
		}
	}
}
