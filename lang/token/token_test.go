package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestKeywords(t *testing.T) {
	cases := map[string]Token{
		"and":    AND,
		"class":  CLASS,
		"else":   ELSE,
		"false":  FALSE,
		"for":    FOR,
		"fun":    FUN,
		"if":     IF,
		"nil":    NIL,
		"or":     OR,
		"print":  PRINT,
		"return": RETURN,
		"super":  SUPER,
		"this":   THIS,
		"true":   TRUE,
		"var":    VAR,
		"while":  WHILE,
	}
	for kw, want := range cases {
		got, ok := Keywords[kw]
		require.True(t, ok, "keyword %q not registered", kw)
		require.Equal(t, want, got)
	}

	_, ok := Keywords["notakeyword"]
	require.False(t, ok)
}

func TestPrecedenceNext(t *testing.T) {
	require.Equal(t, PrecAssignment, PrecNone.Next())
	require.Equal(t, PrecPrimary, PrecCall.Next())
	require.Panics(t, func() { PrecPrimary.Next() })
}
