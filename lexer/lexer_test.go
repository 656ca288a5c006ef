package lexer

import (
	"math/big"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eexpr-lang/eexpr/lexer/token"
)

// reprDump pretty-prints v for inclusion in a failed assertion message,
// matching the teacher's use of alecthomas/repr in test output.
func reprDump(v interface{}) string {
	return repr.String(v, repr.Indent("  "))
}

func TestLexConcreteScenarios(t *testing.T) {
	t.Run("hex number with digit separator", func(t *testing.T) {
		res := Lex([]byte("0x1F_e2"), "test.eexpr")
		require.Empty(t, res.Errors, reprDump(res.Errors))
		require.Nil(t, res.Fatal)
		require.Len(t, res.Tokens, 2)
		num := res.Tokens[0]
		require.Equal(t, token.Number, num.Kind, reprDump(num))
		assert.Equal(t, 0, num.Mantissa.Cmp(big.NewInt(0x1FE2)))
		assert.Equal(t, 16, num.Radix)
		assert.Equal(t, 0, num.FractionalDigits)
		assert.Equal(t, 0, num.Exponent.Sign())
		assert.Equal(t, token.EOF, res.Tokens[1].Kind)
	})

	t.Run("negative decimal with exponent", func(t *testing.T) {
		res := Lex([]byte("-12.50e+2"), "test.eexpr")
		require.Empty(t, res.Errors, reprDump(res.Errors))
		require.Nil(t, res.Fatal)
		require.Len(t, res.Tokens, 2)
		num := res.Tokens[0]
		require.Equal(t, token.Number, num.Kind)
		assert.Equal(t, 0, num.Mantissa.Cmp(big.NewInt(-1250)))
		assert.Equal(t, 10, num.Radix)
		assert.Equal(t, 2, num.FractionalDigits)
		assert.Equal(t, 0, num.Exponent.Cmp(big.NewInt(2)))
	})

	t.Run("codepoint hex escape", func(t *testing.T) {
		res := Lex([]byte(`'é'`), "test.eexpr")
		require.Empty(t, res.Errors, reprDump(res.Errors))
		require.Nil(t, res.Fatal)
		require.Len(t, res.Tokens, 2)
		require.Equal(t, token.Codepoint, res.Tokens[0].Kind)
		assert.Equal(t, rune(0x00E9), res.Tokens[0].CodepointValue)
	})

	t.Run("plain string with embedded newline", func(t *testing.T) {
		res := Lex([]byte("\"a\nb\""), "test.eexpr")
		require.Empty(t, res.Errors, reprDump(res.Errors))
		require.Nil(t, res.Fatal)
		require.Len(t, res.Tokens, 2)
		require.Equal(t, token.String, res.Tokens[0].Kind)
		assert.Equal(t, []byte("a\nb"), res.Tokens[0].StringBytes)
		assert.Equal(t, token.Plain, res.Tokens[0].Splice)
	})

	t.Run("heredoc excludes final newline", func(t *testing.T) {
		src := "\"\"\"END\nhello\nEND\"\"\""
		res := Lex([]byte(src), "test.eexpr")
		require.Empty(t, res.Errors, reprDump(res.Errors))
		require.Nil(t, res.Fatal)
		require.Len(t, res.Tokens, 2)
		require.Equal(t, token.String, res.Tokens[0].Kind)
		assert.Equal(t, []byte("hello"), res.Tokens[0].StringBytes)
		assert.Equal(t, token.Plain, res.Tokens[0].Splice)
	})

	t.Run("doubled digit separator", func(t *testing.T) {
		res := Lex([]byte("1__2"), "test.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Tokens, 2)
		num := res.Tokens[0]
		require.Equal(t, token.Number, num.Kind)
		assert.Equal(t, 0, num.Mantissa.Cmp(big.NewInt(12)))
		require.Len(t, res.Errors, 1, reprDump(res.Errors))
		assert.Equal(t, BadDigitSeparator, res.Errors[0].Kind)
	})
}

func TestLexInvariants(t *testing.T) {
	inputs := []string{
		"",
		"   \t  ",
		"# a comment\nsymbol-one 0x1F.5e2 'a' \"str\\ning\" (){}[];,.. ...",
		"\"\"\"TAG\\\n  \\\nline one\nline two\nTAG\"\"\"",
		"\xff\xfe bad bytes \x80",
		"sym1\r\nsym2\rsym3\n",
	}

	for _, src := range inputs {
		src := src
		t.Run("", func(t *testing.T) {
			res := Lex([]byte(src), "invariants.eexpr")

			for i := 1; i < len(res.Tokens); i++ {
				prevEnd := res.Tokens[i-1].Span.End
				cur := res.Tokens[i].Span.Start
				assert.GreaterOrEqual(t, cur.Offset, prevEnd.Offset,
					"token %d starts before token %d ends", i, i-1)
			}

			for i := 1; i < len(res.Tokens); i++ {
				assert.GreaterOrEqual(t, res.Tokens[i].Span.Start.Offset, res.Tokens[i-1].Span.Start.Offset)
			}
			for i := 1; i < len(res.Errors); i++ {
				assert.GreaterOrEqual(t, res.Errors[i].Span.Start.Offset, 0)
			}

			again := Lex([]byte(src), "invariants.eexpr")
			assert.Equal(t, len(res.Tokens), len(again.Tokens), "idempotence: token count differs")
			for i := range res.Tokens {
				assert.Equal(t, res.Tokens[i].Kind, again.Tokens[i].Kind, "idempotence: token %d kind differs", i)
				assert.Equal(t, res.Tokens[i].Span, again.Tokens[i].Span, "idempotence: token %d span differs", i)
			}
			assert.Equal(t, len(res.Errors), len(again.Errors), "idempotence: error count differs")

			if res.Fatal == nil {
				require.NotEmpty(t, res.Tokens)
				assert.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Kind, "non-fatal lex must end in EOF")
			}
		})
	}
}

func TestLexTerminatesOnTruncatedUTF8(t *testing.T) {
	res := Lex([]byte{0xE2, 0x82}, "truncated.eexpr")
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Kind)
}
