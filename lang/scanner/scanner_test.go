package scanner_test

import (
	"testing"

	"github.com/mna/loxvm/lang/scanner"
	"github.com/mna/loxvm/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []scanner.Token {
	t.Helper()
	s := scanner.New(src + "\x00")
	var toks []scanner.Token
	for {
		tok := s.ScanToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []scanner.Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, `( ) { } , . ; - + * / ^ ! != = == < <= > >=`)
	require.Equal(t, []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.SEMI, token.MINUS, token.PLUS, token.STAR, token.SLASH,
		token.CARET, token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ, token.LT,
		token.LT_EQ, token.GT, token.GT_EQ, token.EOF,
	}, kinds(toks))
}

func TestScanCompoundAssignment(t *testing.T) {
	toks := scanAll(t, `+= -= *= /= ^=`)
	require.Equal(t, []token.Token{
		token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ, token.CARET_EQ, token.EOF,
	}, kinds(toks))
}

func TestScanKeywordsVsIdentifiers(t *testing.T) {
	toks := scanAll(t, `and class else false for fun if nil or print return super this true var while clock x_1`)
	want := []token.Token{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.IDENT, token.IDENT, token.EOF,
	}
	require.Equal(t, want, kinds(toks))
}

func TestScanNumbers(t *testing.T) {
	toks := scanAll(t, `123 3.14 0`)
	require.Equal(t, []token.Token{token.NUMBER, token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
	require.Equal(t, "123", toks[0].Lexeme)
	require.Equal(t, "3.14", toks[1].Lexeme)
}

func TestScanString(t *testing.T) {
	toks := scanAll(t, `"hello, world"`)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, `"hello, world"`, toks[0].Lexeme)
}

func TestScanMultilineString(t *testing.T) {
	toks := scanAll(t, "\"line one\nline two\" 1")
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, 1, toks[0].Line)
	// the NUMBER after the string should be on line 2
	require.Equal(t, token.NUMBER, toks[1].Kind)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	toks := scanAll(t, `"unterminated`)
	require.Equal(t, token.ERROR, toks[0].Kind)
	require.Equal(t, "Unterminated string.", toks[0].Lexeme)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	toks := scanAll(t, "@")
	require.Equal(t, token.ERROR, toks[0].Kind)
	require.Equal(t, "Unexpected character.", toks[0].Lexeme)
}

func TestScanSkipsCommentsAndWhitespace(t *testing.T) {
	toks := scanAll(t, "// a comment\n  1 + 1 // trailing\n")
	require.Equal(t, []token.Token{token.NUMBER, token.PLUS, token.NUMBER, token.EOF}, kinds(toks))
	require.Equal(t, 2, toks[0].Line)
}

func TestScanEOFIsSticky(t *testing.T) {
	s := scanner.New("\x00")
	require.Equal(t, token.EOF, s.ScanToken().Kind)
	require.Equal(t, token.EOF, s.ScanToken().Kind)
}
