package nibble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoth(t *testing.T) {
	p := Both(lit("ab"), digits1())

	t.Run("both halves", func(t *testing.T) {
		rest, out, err := p(NewText("ab12;"))
		require.NoError(t, err)
		assert.Equal(t, "ab", out.First.String())
		assert.Equal(t, "12", out.Second.String())
		assert.Equal(t, ";", rest.String())
	})

	t.Run("second half fails and nothing is consumed", func(t *testing.T) {
		rest, _, err := p(NewText("abxy"))
		requireKind(t, err, KindDigit)
		assert.Equal(t, "abxy", rest.String())
	})
}

func TestSeparated(t *testing.T) {
	p := Separated(digits1(), lit(":"), digits1())

	rest, out, err := p(NewText("12:34;"))
	require.NoError(t, err)
	assert.Equal(t, "12", out.First.String())
	assert.Equal(t, "34", out.Second.String())
	assert.Equal(t, ";", rest.String())

	t.Run("missing separator", func(t *testing.T) {
		rest, _, err := p(NewText("12;34"))
		requireKind(t, err, KindTag)
		assert.Equal(t, "12;34", rest.String())
	})
}

func TestPrecededTerminated(t *testing.T) {
	t.Run("preceded keeps the second output", func(t *testing.T) {
		rest, out, err := Preceded(lit("$"), digits1())(NewText("$99 "))
		require.NoError(t, err)
		assert.Equal(t, "99", out.String())
		assert.Equal(t, " ", rest.String())
	})

	t.Run("terminated keeps the first output", func(t *testing.T) {
		rest, out, err := Terminated(digits1(), lit(";"))(NewText("99;x"))
		require.NoError(t, err)
		assert.Equal(t, "99", out.String())
		assert.Equal(t, "x", rest.String())
	})

	t.Run("missing suffix rewinds", func(t *testing.T) {
		rest, _, err := Terminated(digits1(), lit(";"))(NewText("99x"))
		requireKind(t, err, KindTag)
		assert.Equal(t, "99x", rest.String())
	})
}

func TestDelimited(t *testing.T) {
	p := Delimited(lit("("), digits1(), lit(")"))

	t.Run("delimiters are dropped", func(t *testing.T) {
		rest, out, err := p(NewText("(42)rest"))
		require.NoError(t, err)
		assert.Equal(t, "42", out.String())
		assert.Equal(t, "rest", rest.String())
	})

	t.Run("unclosed", func(t *testing.T) {
		rest, _, err := p(NewText("(42"))
		requireKind(t, err, KindTag)
		assert.Equal(t, "(42", rest.String())
	})
}
