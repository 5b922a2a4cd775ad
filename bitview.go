package nibble

// Lengther is anything with a length in elements.
type Lengther interface {
	Len() int
}

// BitView exposes an input at bit granularity: Inner is the byte-level
// view, Off the bit offset into its first element. Off stays in 0..7;
// whole consumed bytes move into Inner instead.
type BitView[I Lengther] struct {
	Inner I
	Off   int
}

// Len returns the number of bits left.
func (v BitView[I]) Len() int {
	return v.Inner.Len()*8 - v.Off
}

// DropBitOffset rewrites an error produced against a BitView so it
// refers to the byte-level input instead. Errors of other shapes pass
// through unchanged.
func DropBitOffset[I Lengther](err error) error {
	switch e := err.(type) {
	case Error[BitView[I]]:
		return Error[I]{Input: e.Input.Inner, Kind: e.Kind}
	case Failure:
		return Failure{Err: DropBitOffset[I](e.Err)}
	}
	return err
}

// WithBitOffset rewrites a byte-level error so it refers to a BitView
// with a zero bit offset. It is the inverse of DropBitOffset.
func WithBitOffset[I Lengther](err error) error {
	switch e := err.(type) {
	case Error[I]:
		return Error[BitView[I]]{Input: BitView[I]{Inner: e.Input}, Kind: e.Kind}
	case Failure:
		return Failure{Err: WithBitOffset[I](e.Err)}
	}
	return err
}
