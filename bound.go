package nibble

import (
	"fmt"
	"math"
)

// EdgeKind says how one end of a Bound treats its value.
type EdgeKind uint8

const (
	// EdgeUnbounded places no constraint at this end.
	EdgeUnbounded EdgeKind = iota
	// EdgeIncluded allows the value itself.
	EdgeIncluded
	// EdgeExcluded stops counts short of the value.
	EdgeExcluded
)

// Edge is one endpoint of a repetition bound.
type Edge struct {
	Kind EdgeKind
	N    uint
}

// Bound is a repetition quantifier: how many times a repeated parser
// must and may match.
type Bound struct {
	lo, hi Edge
}

// Exactly matches n repetitions, no more, no fewer.
func Exactly(n uint) Bound {
	return Bound{lo: Edge{EdgeIncluded, n}, hi: Edge{EdgeIncluded, n}}
}

// Between matches at least m but fewer than n repetitions (half-open).
func Between(m, n uint) Bound {
	return Bound{lo: Edge{EdgeIncluded, m}, hi: Edge{EdgeExcluded, n}}
}

// Through matches m through n repetitions inclusive.
func Through(m, n uint) Bound {
	return Bound{lo: Edge{EdgeIncluded, m}, hi: Edge{EdgeIncluded, n}}
}

// AtLeast matches m or more repetitions.
func AtLeast(m uint) Bound {
	return Bound{lo: Edge{EdgeIncluded, m}, hi: Edge{Kind: EdgeUnbounded}}
}

// LessThan matches fewer than n repetitions.
func LessThan(n uint) Bound {
	return Bound{lo: Edge{Kind: EdgeUnbounded}, hi: Edge{EdgeExcluded, n}}
}

// AtMost matches up to n repetitions inclusive.
func AtMost(n uint) Bound {
	return Bound{lo: Edge{Kind: EdgeUnbounded}, hi: Edge{EdgeIncluded, n}}
}

// Unbounded matches any number of repetitions.
func Unbounded() Bound {
	return Bound{lo: Edge{Kind: EdgeUnbounded}, hi: Edge{Kind: EdgeUnbounded}}
}

func (b Bound) String() string {
	if b.lo.Kind == EdgeIncluded && b.hi.Kind == EdgeIncluded && b.lo.N == b.hi.N {
		return fmt.Sprintf("%d", b.lo.N)
	}
	s := ""
	if b.lo.Kind != EdgeUnbounded {
		s = fmt.Sprintf("%d", b.lo.N)
	}
	s += ".."
	switch b.hi.Kind {
	case EdgeIncluded:
		s += fmt.Sprintf("=%d", b.hi.N)
	case EdgeExcluded:
		s += fmt.Sprintf("%d", b.hi.N)
	}
	return s
}

// Bounds returns both endpoints.
func (b Bound) Bounds() (lo, hi Edge) { return b.lo, b.hi }

// Contains reports whether count repetitions satisfy the bound.
func (b Bound) Contains(count uint) bool {
	switch b.lo.Kind {
	case EdgeIncluded:
		if count < b.lo.N {
			return false
		}
	case EdgeExcluded:
		if count <= b.lo.N {
			return false
		}
	}
	switch b.hi.Kind {
	case EdgeIncluded:
		if count > b.hi.N {
			return false
		}
	case EdgeExcluded:
		if count >= b.hi.N {
			return false
		}
	}
	return true
}

// IsInverted reports whether the bound can never be satisfied: a
// half-open range needs lo < hi, a closed one lo <= hi. Ranges open
// at either end are never inverted.
func (b Bound) IsInverted() bool {
	if b.lo.Kind == EdgeUnbounded || b.hi.Kind == EdgeUnbounded {
		return false
	}
	if b.hi.Kind == EdgeExcluded {
		return !(b.lo.N < b.hi.N)
	}
	return b.lo.N > b.hi.N
}

// SaturatingIter returns the counter repetition folds drive. For an
// unbounded upper edge it never terminates on its own, saturating at
// the maximum count instead of wrapping; the repetition loop supplies
// the exit condition.
func (b Bound) SaturatingIter() *Counter {
	return b.counter(true)
}

// BoundedIter returns the counter with a hard termination guarantee:
// for an unbounded upper edge it stops after the largest representable
// count.
func (b Bound) BoundedIter() *Counter {
	return b.counter(false)
}

func (b Bound) counter(saturate bool) *Counter {
	switch b.hi.Kind {
	case EdgeIncluded:
		return &Counter{last: b.hi.N, limited: true}
	case EdgeExcluded:
		if b.hi.N == 0 {
			return &Counter{done: true}
		}
		return &Counter{last: b.hi.N - 1, limited: true}
	}
	if saturate {
		return &Counter{saturate: true}
	}
	return &Counter{last: math.MaxUint, limited: true}
}

// Counter yields successive repetition counts, starting at zero. Both
// counter kinds yield exactly the counts the upper edge permits; they
// differ only when the bound is unbounded above.
type Counter struct {
	cur      uint
	last     uint
	limited  bool
	saturate bool
	done     bool
}

// Next yields the next count. The second result is false once the
// counter is exhausted; a saturating counter over an unbounded edge
// never is.
func (c *Counter) Next() (uint, bool) {
	if c.done {
		return 0, false
	}
	n := c.cur
	switch {
	case c.limited:
		if c.cur == c.last {
			c.done = true
		} else {
			c.cur++
		}
	case c.saturate:
		if c.cur < math.MaxUint {
			c.cur++
		}
	default:
		if c.cur == math.MaxUint {
			c.done = true
		} else {
			c.cur++
		}
	}
	return n, true
}
