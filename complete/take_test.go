package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibblekit/nibble"
)

// requireKind asserts err is a recoverable text error of the given
// kind and returns it.
func requireKind(t *testing.T, err error, kind nibble.Kind) nibble.Error[nibble.Text] {
	t.Helper()
	var perr nibble.Error[nibble.Text]
	require.ErrorAs(t, err, &perr)
	require.Equal(t, kind, perr.Kind)
	return perr
}

func TestTag(t *testing.T) {
	p := Tag[nibble.Text]("hello")

	t.Run("match", func(t *testing.T) {
		rest, out, err := p(nibble.NewText("hello world"))
		require.NoError(t, err)
		assert.Equal(t, "hello", out.String())
		assert.Equal(t, " world", rest.String())
	})

	t.Run("short input is a plain mismatch", func(t *testing.T) {
		rest, _, err := p(nibble.NewText("hel"))
		require.False(t, nibble.IsIncomplete(err))
		requireKind(t, err, nibble.KindTag)
		assert.Equal(t, "hel", rest.String())
	})

	t.Run("mismatch", func(t *testing.T) {
		_, _, err := p(nibble.NewText("help me"))
		requireKind(t, err, nibble.KindTag)
	})

	t.Run("no case", func(t *testing.T) {
		_, out, err := TagNoCase[nibble.Text]("hello")(nibble.NewText("HeLLo!"))
		require.NoError(t, err)
		assert.Equal(t, "HeLLo", out.String())

		_, _, err = TagNoCase[nibble.Text]("hello")(nibble.NewText("HEL"))
		requireKind(t, err, nibble.KindTag)
	})
}

func TestTake(t *testing.T) {
	t.Run("counts runes on text", func(t *testing.T) {
		rest, out, err := Take[nibble.Text](4)(nibble.NewText("cafés"))
		require.NoError(t, err)
		assert.Equal(t, "café", out.String())
		assert.Equal(t, "s", rest.String())
	})

	t.Run("short input is an eof error", func(t *testing.T) {
		_, _, err := Take[nibble.Text](5)(nibble.NewText("ab"))
		require.False(t, nibble.IsIncomplete(err))
		requireKind(t, err, nibble.KindEof)
	})
}

func TestTakeWhile(t *testing.T) {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }

	t.Run("stops at the first miss", func(t *testing.T) {
		rest, out, err := TakeWhile[nibble.Text](isDigit)(nibble.NewText("123abc"))
		require.NoError(t, err)
		assert.Equal(t, "123", out.String())
		assert.Equal(t, "abc", rest.String())
	})

	t.Run("matching the whole window takes it all", func(t *testing.T) {
		rest, out, err := TakeWhile[nibble.Text](isDigit)(nibble.NewText("123"))
		require.NoError(t, err)
		assert.Equal(t, "123", out.String())
		assert.Equal(t, "", rest.String())
	})

	t.Run("empty input is fine", func(t *testing.T) {
		_, out, err := TakeWhile[nibble.Text](isDigit)(nibble.NewText(""))
		require.NoError(t, err)
		assert.Equal(t, "", out.String())
	})

	t.Run("while1 drains the window", func(t *testing.T) {
		_, out, err := TakeWhile1[nibble.Text](isDigit)(nibble.NewText("123"))
		require.NoError(t, err)
		assert.Equal(t, "123", out.String())
	})

	t.Run("while1 on empty input fails", func(t *testing.T) {
		_, _, err := TakeWhile1[nibble.Text](isDigit)(nibble.NewText(""))
		requireKind(t, err, nibble.KindTakeWhile1)
	})

	t.Run("while1 without a match fails", func(t *testing.T) {
		_, _, err := TakeWhile1[nibble.Text](isDigit)(nibble.NewText("x1"))
		requireKind(t, err, nibble.KindTakeWhile1)
	})
}

func TestTakeTill(t *testing.T) {
	stop := func(r rune) bool { return r == ';' }

	t.Run("consumes up to the stop", func(t *testing.T) {
		rest, out, err := TakeTill[nibble.Text](stop)(nibble.NewText("ab;cd"))
		require.NoError(t, err)
		assert.Equal(t, "ab", out.String())
		assert.Equal(t, ";cd", rest.String())
	})

	t.Run("no stop takes the whole window", func(t *testing.T) {
		rest, out, err := TakeTill[nibble.Text](stop)(nibble.NewText("abcd"))
		require.NoError(t, err)
		assert.Equal(t, "abcd", out.String())
		assert.Equal(t, "", rest.String())
	})

	t.Run("till1 with the stop at the head fails", func(t *testing.T) {
		_, _, err := TakeTill1[nibble.Text](stop)(nibble.NewText(";x"))
		requireKind(t, err, nibble.KindTakeTill1)
	})
}

func TestTakeWhileMN(t *testing.T) {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }

	tests := []struct {
		name    string
		m, n    int
		input   string
		out     string
		rest    string
		wantErr bool
	}{
		{name: "stops at the miss", m: 2, n: 4, input: "123abc", out: "123", rest: "abc"},
		{name: "stops at n", m: 2, n: 4, input: "12345x", out: "1234", rest: "5x"},
		{name: "window end above m takes it all", m: 1, n: 4, input: "12", out: "12", rest: ""},
		{name: "window end below m", m: 3, n: 4, input: "12", wantErr: true},
		{name: "below the minimum", m: 2, n: 4, input: "1x", wantErr: true},
		{name: "inverted range", m: 3, n: 1, input: "123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, out, err := TakeWhileMN[nibble.Text](tt.m, tt.n, isDigit)(nibble.NewText(tt.input))
			if tt.wantErr {
				requireKind(t, err, nibble.KindTakeWhileMN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.out, out.String())
			assert.Equal(t, tt.rest, rest.String())
		})
	}
}

func TestTakeUntil(t *testing.T) {
	p := TakeUntil[nibble.Text]("==")

	t.Run("stops before the needle", func(t *testing.T) {
		rest, out, err := p(nibble.NewText("ab==cd"))
		require.NoError(t, err)
		assert.Equal(t, "ab", out.String())
		assert.Equal(t, "==cd", rest.String())
	})

	t.Run("needle absent is an error", func(t *testing.T) {
		_, _, err := p(nibble.NewText("abcd"))
		require.False(t, nibble.IsIncomplete(err))
		requireKind(t, err, nibble.KindTakeUntil)
	})
}
