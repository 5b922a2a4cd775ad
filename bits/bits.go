// Package bits parses bit-level fields out of fully buffered byte
// input. A run of bit-level parsers is wrapped with Bits to fit into
// a byte-level parser; inside the run, input threads through as a
// BitView pairing the byte window with a bit offset.
package bits

import (
	"github.com/nibblekit/nibble"
)

// Input is the bit-level input the parsers in this package consume.
type Input = nibble.BitView[nibble.Bytes]

// Bits adapts a bit-level parser to byte-level input. A byte the
// parser consumed only part of is discarded on exit, and bit deficits
// in Incomplete errors round up to whole bytes.
func Bits[O any](p nibble.Parser[Input, O]) nibble.Parser[nibble.Bytes, O] {
	return func(in nibble.Bytes) (nibble.Bytes, O, error) {
		rest, out, err := p(Input{Inner: in})
		if err != nil {
			var zero O
			if inc, isInc := err.(nibble.Incomplete); isInc {
				if inc.Needed.Known() {
					return in, zero, nibble.Incomplete{Needed: (inc.Needed + 7) / 8}
				}
				return in, zero, err
			}
			return in, zero, nibble.DropBitOffset[nibble.Bytes](err)
		}
		if rest.Off > 0 {
			return rest.Inner.TakeFrom(1), out, nil
		}
		return rest.Inner, out, nil
	}
}

// Take reads count bits as a big-endian unsigned value. count must
// not exceed 64.
func Take(count uint) nibble.Parser[Input, uint64] {
	if count > 64 {
		panic("nibble/bits: take count exceeds 64")
	}
	return func(in Input) (Input, uint64, error) {
		if count == 0 {
			return in, 0, nil
		}
		if int(count) > in.Len() {
			return in, 0, nibble.Error[Input]{Input: in, Kind: nibble.KindEof}
		}
		buf := in.Inner.Bytes()
		off := in.Off
		var acc uint64
		remaining := count
		for remaining > 0 {
			avail := uint(8 - off)
			n := remaining
			if n > avail {
				n = avail
			}
			b := buf[0] << off
			acc = acc<<n | uint64(b>>(8-n))
			off += int(n)
			remaining -= n
			if off == 8 {
				buf = buf[1:]
				off = 0
			}
		}
		rest := Input{Inner: in.Inner.TakeFrom(in.Inner.Len() - len(buf)), Off: off}
		return rest, acc, nil
	}
}

// Tag matches an exact bit pattern of the given width.
func Tag(pattern uint64, count uint) nibble.Parser[Input, uint64] {
	take := Take(count)
	return func(in Input) (Input, uint64, error) {
		rest, v, err := take(in)
		if err != nil {
			return in, 0, err
		}
		if v != pattern {
			return in, 0, nibble.Error[Input]{Input: in, Kind: nibble.KindTagBits}
		}
		return rest, v, nil
	}
}

// Bool reads a single bit.
func Bool() nibble.Parser[Input, bool] {
	take := Take(1)
	return func(in Input) (Input, bool, error) {
		rest, v, err := take(in)
		if err != nil {
			return in, false, err
		}
		return rest, v == 1, nil
	}
}
