package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eexpr-lang/eexpr/lexer/token"
)

func TestTakeStringSpliceKinds(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		splice token.SpliceKind
		body   string
	}{
		{"plain", `"hello"`, token.Plain, "hello"},
		{"open", "\"hello`", token.Open, "hello"},
		{"middle", "`hello`", token.Middle, "hello"},
		{"close", "`hello\"", token.Close, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Lex([]byte(tt.src), "str.eexpr")
			require.Empty(t, res.Errors, reprDump(res.Errors))
			require.Nil(t, res.Fatal)
			require.Len(t, res.Tokens, 2)
			str := res.Tokens[0]
			require.Equal(t, token.String, str.Kind)
			assert.Equal(t, tt.splice, str.Splice)
			assert.Equal(t, []byte(tt.body), str.StringBytes)
		})
	}
}

func TestTakeStringEscapes(t *testing.T) {
	res := Lex([]byte(`"a\nb\tcé"`), "str.eexpr")
	require.Empty(t, res.Errors, reprDump(res.Errors))
	require.Nil(t, res.Fatal)
	str := res.Tokens[0]
	require.Equal(t, token.String, str.Kind)
	assert.Equal(t, []byte("a\nb\tcé"), str.StringBytes)
}

func TestTakeStringErrors(t *testing.T) {
	t.Run("unclosed string hits EOF", func(t *testing.T) {
		res := Lex([]byte(`"abc`), "str.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, UnclosedString, res.Errors[0].Kind)
		require.Len(t, res.Tokens, 2)
		assert.Equal(t, token.String, res.Tokens[0].Kind)
		assert.Equal(t, []byte("abc"), res.Tokens[0].StringBytes)
	})

	t.Run("bad string char is skipped and reported", func(t *testing.T) {
		res := Lex([]byte("\"a\x01b\""), "str.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, BadStringChar, res.Errors[0].Kind)
		assert.Equal(t, rune(0x01), res.Errors[0].BadStringCharValue)
		assert.Equal(t, []byte("ab"), res.Tokens[0].StringBytes)
	})

	t.Run("unrecognized escape leader reported with its char", func(t *testing.T) {
		res := Lex([]byte(`"a\qb"`), "str.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, BadEscapeChar, res.Errors[0].Kind)
		assert.Equal(t, 'q', res.Errors[0].EscapeChar)
	})
}

func TestTakeCodepointLiteral(t *testing.T) {
	t.Run("common escape", func(t *testing.T) {
		res := Lex([]byte(`'\n'`), "cp.eexpr")
		require.Empty(t, res.Errors, reprDump(res.Errors))
		require.Equal(t, token.Codepoint, res.Tokens[0].Kind)
		assert.Equal(t, rune(0x0A), res.Tokens[0].CodepointValue)
	})

	t.Run("unclosed codepoint still yields its value plus an error", func(t *testing.T) {
		res := Lex([]byte(`'ab`), "cp.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, UnclosedCodepoint, res.Errors[0].Kind)
		require.Len(t, res.Tokens, 2)
		require.Equal(t, token.Codepoint, res.Tokens[0].Kind)
		assert.Equal(t, rune('a'), res.Tokens[0].CodepointValue)
	})

	t.Run("unicode overflow discards the token", func(t *testing.T) {
		res := Lex([]byte(`'\U110000'`), "cp.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, UnicodeOverflow, res.Errors[0].Kind)
		require.Len(t, res.Tokens, 1, "no Codepoint token is emitted on overflow")
		assert.Equal(t, token.EOF, res.Tokens[0].Kind)
	})

	t.Run("bad codepoint has no string char or escape", func(t *testing.T) {
		res := Lex([]byte("'\x01'"), "cp.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, BadCodepoint, res.Errors[0].Kind)
		require.Len(t, res.Tokens, 1)
		assert.Equal(t, token.EOF, res.Tokens[0].Kind)
	})

	t.Run("empty literal closes cleanly on its own tick", func(t *testing.T) {
		res := Lex([]byte(`''`), "cp.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1, reprDump(res.Errors))
		assert.Equal(t, BadCodepoint, res.Errors[0].Kind)
		assert.Equal(t, rune(0), res.Errors[0].BadCodepointValue)
		require.Len(t, res.Tokens, 1)
		assert.Equal(t, token.EOF, res.Tokens[0].Kind)
	})

	t.Run("unrecognized escape reports BadEscapeChar, not BadCodepoint", func(t *testing.T) {
		res := Lex([]byte(`'\q'`), "cp.eexpr")
		require.Nil(t, res.Fatal)
		require.Len(t, res.Errors, 1, reprDump(res.Errors))
		assert.Equal(t, BadEscapeChar, res.Errors[0].Kind)
		assert.Equal(t, 'q', res.Errors[0].EscapeChar)
		require.Len(t, res.Tokens, 1)
		assert.Equal(t, token.EOF, res.Tokens[0].Kind)
	})
}

func TestTakeHeredocIndented(t *testing.T) {
	// Indent-definition line: 2 literal indent chars + the escape leader
	// itself, for an indent width of 3 (spec §4.G.8: the indent count
	// includes the escape leader). Each body line then carries 3 literal
	// indent chars, not 2.
	src := "\"\"\"TAG\\\n  \\\n   line one\n   line two\nTAG\"\"\""
	res := Lex([]byte(src), "heredoc.eexpr")
	require.Empty(t, res.Errors, reprDump(res.Errors))
	require.Nil(t, res.Fatal)
	require.Len(t, res.Tokens, 2)
	require.Equal(t, token.String, res.Tokens[0].Kind)
	assert.Equal(t, []byte("line one\nline two"), res.Tokens[0].StringBytes)
}

func TestTakeHeredocMixedIndentation(t *testing.T) {
	// First heredoc: indent-definition is 1 space + escape leader (width 2),
	// so its body line needs 2 literal spaces.
	first := "\"\"\"A\\\n \\\n  x\nA\"\"\""
	// Second: indent-definition is 1 tab + escape leader + one more tab for
	// column alignment (width 3), so its body line needs 3 literal tabs. Its
	// indent char (tab) differs from the first heredoc's (space).
	second := "\n\"\"\"B\\\n\t\\\t\n\t\t\ty\nB\"\"\""
	res := Lex([]byte(first+second), "heredoc.eexpr")
	require.Nil(t, res.Fatal)
	var kinds []ErrorKind
	for _, e := range res.Errors {
		kinds = append(kinds, e.Kind)
	}
	assert.Contains(t, kinds, MixedIndentation, reprDump(res.Errors))
}

func TestTakeHeredocBadOpen(t *testing.T) {
	res := Lex([]byte(`"""TAG not a newline`), "heredoc.eexpr")
	require.NotNil(t, res.Fatal)
	assert.Equal(t, HeredocBadOpen, res.Fatal.Kind)
}

func TestTakeHeredocUnclosed(t *testing.T) {
	res := Lex([]byte("\"\"\"TAG\nbody with no closer\n"), "heredoc.eexpr")
	require.NotNil(t, res.Fatal)
	assert.Equal(t, UnclosedHeredoc, res.Fatal.Kind)
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.StringError, res.Tokens[len(res.Tokens)-1].Kind)
}

func TestTakeHeredocBadIndentDefinition(t *testing.T) {
	res := Lex([]byte("\"\"\"TAG\\\nnot-an-indent-line\nTAG\"\"\""), "heredoc.eexpr")
	require.NotNil(t, res.Fatal)
	assert.Equal(t, HeredocBadIndentDefinition, res.Fatal.Kind)
}
