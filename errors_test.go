package nibble

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	t.Run("error names the kind and the input", func(t *testing.T) {
		err := Error[Text]{Input: NewText("rest"), Kind: KindTag}
		assert.Equal(t, "error tag at: rest", err.Error())
	})

	t.Run("known deficit", func(t *testing.T) {
		assert.Equal(t, "parsing requires 3 more units", Incomplete{Needed: 3}.Error())
	})

	t.Run("unknown deficit", func(t *testing.T) {
		assert.Equal(t, "parsing requires an unknown amount of data", Incomplete{}.Error())
	})

	t.Run("failure repeats the wrapped message", func(t *testing.T) {
		inner := Error[Text]{Input: NewText("x"), Kind: KindChar}
		assert.Equal(t, inner.Error(), Failure{Err: inner}.Error())
	})
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{kind: KindTag, expected: "tag"},
		{kind: KindTagBits, expected: "bit tag"},
		{kind: KindAlt, expected: "alternative"},
		{kind: KindEof, expected: "end of input"},
		{kind: KindTakeWhileMN, expected: "take while m..n"},
		{kind: KindEscapedTransform, expected: "escaped transform"},
		{kind: KindFloat, expected: "float"},
		{kind: Kind(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestErrorClassification(t *testing.T) {
	plain := Error[Text]{Input: NewText("x"), Kind: KindTag}
	inc := Incomplete{Needed: 2}
	fail := Failure{Err: plain}

	tests := []struct {
		name        string
		err         error
		incomplete  bool
		failure     bool
		recoverable bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: plain, recoverable: true},
		{name: "incomplete", err: inc, incomplete: true},
		{name: "failure", err: fail, failure: true},
		{name: "foreign error", err: errors.New("boom"), recoverable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.incomplete, IsIncomplete(tt.err))
			assert.Equal(t, tt.failure, IsFailure(tt.err))
			assert.Equal(t, tt.recoverable, IsRecoverable(tt.err))
		})
	}

	t.Run("failure unwraps", func(t *testing.T) {
		var target Error[Text]
		require.ErrorAs(t, fail, &target)
		assert.Equal(t, KindTag, target.Kind)
	})
}

func TestNeeded(t *testing.T) {
	assert.False(t, NeededUnknown.Known())
	assert.True(t, Needed(1).Known())
	assert.Equal(t, "5 more units", Needed(5).String())
}

func TestBitView_Len(t *testing.T) {
	in := NewBytes([]byte{0xAB, 0xCD})

	assert.Equal(t, 16, BitView[Bytes]{Inner: in}.Len())
	assert.Equal(t, 13, BitView[Bytes]{Inner: in, Off: 3}.Len())
	assert.Equal(t, 0, BitView[Bytes]{Inner: NewBytes(nil)}.Len())
}

func TestBitOffsetConversions(t *testing.T) {
	in := NewBytes([]byte("abc"))
	bitErr := Error[BitView[Bytes]]{
		Input: BitView[Bytes]{Inner: in, Off: 5},
		Kind:  KindTagBits,
	}

	t.Run("drop strips the view", func(t *testing.T) {
		got := DropBitOffset[Bytes](bitErr)
		var byteErr Error[Bytes]
		require.ErrorAs(t, got, &byteErr)
		assert.Equal(t, KindTagBits, byteErr.Kind)
		assert.Equal(t, "abc", byteErr.Input.String())
	})

	t.Run("drop descends through failure", func(t *testing.T) {
		got := DropBitOffset[Bytes](Failure{Err: bitErr})
		require.True(t, IsFailure(got))
		var byteErr Error[Bytes]
		require.ErrorAs(t, got, &byteErr)
		assert.Equal(t, KindTagBits, byteErr.Kind)
	})

	t.Run("drop passes other errors through", func(t *testing.T) {
		assert.Equal(t, Incomplete{Needed: 2}, DropBitOffset[Bytes](Incomplete{Needed: 2}))
	})

	t.Run("with restores a zero offset view", func(t *testing.T) {
		byteErr := Error[Bytes]{Input: in, Kind: KindTag}
		got := WithBitOffset[Bytes](byteErr)
		var restored Error[BitView[Bytes]]
		require.ErrorAs(t, got, &restored)
		assert.Equal(t, 0, restored.Input.Off)
		assert.Equal(t, "abc", restored.Input.Inner.String())
	})

	t.Run("round trip", func(t *testing.T) {
		byteErr := Error[Bytes]{Input: in, Kind: KindTag}
		assert.Equal(t, byteErr, DropBitOffset[Bytes](WithBitOffset[Bytes](byteErr)))
	})
}
