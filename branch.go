package nibble

// Alt tries each parser in turn, returning the first success. Only
// recoverable failures move on to the next alternative; Incomplete and
// Failure propagate immediately. When every alternative fails, the
// last error is returned.
func Alt[I, O any](parsers ...Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		var last error
		for _, p := range parsers {
			rest, out, err := p(in)
			if err == nil {
				return rest, out, nil
			}
			if !IsRecoverable(err) {
				return in, zero, err
			}
			last = err
		}
		if last == nil {
			last = Error[I]{Input: in, Kind: KindAlt}
		}
		return in, zero, last
	}
}
