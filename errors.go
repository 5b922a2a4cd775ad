package nibble

import "fmt"

// Kind identifies which operation produced a parse error.
type Kind uint

const (
	KindTag Kind = iota
	KindTagBits
	KindMapRes
	KindAlt
	KindSeparatedList
	KindEof
	KindChar
	KindSatisfy
	KindOneOf
	KindNoneOf
	KindAlpha
	KindDigit
	KindHexDigit
	KindOctDigit
	KindAlphaNumeric
	KindSpace
	KindMultiSpace
	KindTakeWhile1
	KindTakeTill1
	KindTakeWhileMN
	KindTakeUntil
	KindEscaped
	KindEscapedTransform
	KindVerify
	KindMany0
	KindMany1
	KindMany
	KindFold
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindTagBits:
		return "bit tag"
	case KindMapRes:
		return "map result"
	case KindAlt:
		return "alternative"
	case KindSeparatedList:
		return "separated list"
	case KindEof:
		return "end of input"
	case KindChar:
		return "char"
	case KindSatisfy:
		return "satisfy"
	case KindOneOf:
		return "one of"
	case KindNoneOf:
		return "none of"
	case KindAlpha:
		return "alphabetic"
	case KindDigit:
		return "digit"
	case KindHexDigit:
		return "hex digit"
	case KindOctDigit:
		return "octal digit"
	case KindAlphaNumeric:
		return "alphanumeric"
	case KindSpace:
		return "space"
	case KindMultiSpace:
		return "multispace"
	case KindTakeWhile1:
		return "take while 1"
	case KindTakeTill1:
		return "take till 1"
	case KindTakeWhileMN:
		return "take while m..n"
	case KindTakeUntil:
		return "take until"
	case KindEscaped:
		return "escaped"
	case KindEscapedTransform:
		return "escaped transform"
	case KindVerify:
		return "verify"
	case KindMany0:
		return "many 0"
	case KindMany1:
		return "many 1"
	case KindMany:
		return "many"
	case KindFold:
		return "fold"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Error is the default recoverable parse error: the remaining input at
// the point of failure plus the kind of operation that failed.
type Error[I any] struct {
	Input I
	Kind  Kind
}

func (e Error[I]) Error() string {
	return fmt.Sprintf("error %s at: %v", e.Kind, e.Input)
}

// Needed is the amount of additional input a streaming parser requires
// before it can decide. Zero means the amount is unknown.
type Needed uint

const NeededUnknown Needed = 0

// Known reports whether the deficit is a precise unit count.
func (n Needed) Known() bool { return n != 0 }

func (n Needed) String() string {
	if n == 0 {
		return "an unknown amount of data"
	}
	return fmt.Sprintf("%d more units", uint(n))
}

// Incomplete signals that the input ended before the parser could
// decide. Streaming callers retry with more data; complete-mode
// parsers never return it.
type Incomplete struct {
	Needed Needed
}

func (e Incomplete) Error() string {
	return fmt.Sprintf("parsing requires %s", e.Needed)
}

// Failure wraps an error that must not be backtracked over. Alt, Opt
// and the repetition combinators propagate it instead of trying the
// next alternative.
type Failure struct {
	Err error
}

func (f Failure) Error() string { return f.Err.Error() }

func (f Failure) Unwrap() error { return f.Err }

// IsIncomplete reports whether err is a need-more-data signal.
func IsIncomplete(err error) bool {
	_, ok := err.(Incomplete)
	return ok
}

// IsFailure reports whether err is committed and must not be caught by
// a backtracking combinator.
func IsFailure(err error) bool {
	_, ok := err.(Failure)
	return ok
}

// IsRecoverable reports whether a backtracking combinator may catch
// err and try something else.
func IsRecoverable(err error) bool {
	return err != nil && !IsFailure(err) && !IsIncomplete(err)
}
