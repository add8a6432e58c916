package compiler

import "github.com/mna/loxvm/lang/token"

// parseFn is a prefix or infix parser for one token kind. canAssign reports
// whether the current precedence context permits an assignment target
// (precedence <= PrecAssignment); only namedVariable consults it.
type parseFn func(c *Compiler, canAssign bool)

type rule struct {
	prefix, infix parseFn
	prec          token.Precedence
}

// rules is the parse-rule table: a dense array indexed by token kind, built
// once as a package-level table (spec §4.3, §9 design notes).
var rules [token.NumTokens]rule

func init() {
	rules[token.LPAREN] = rule{grouping, call, token.PrecCall}
	rules[token.MINUS] = rule{unary, binary, token.PrecTerm}
	rules[token.PLUS] = rule{nil, binary, token.PrecTerm}
	rules[token.SLASH] = rule{nil, binary, token.PrecFactor}
	rules[token.STAR] = rule{nil, binary, token.PrecFactor}
	rules[token.CARET] = rule{nil, binary, token.PrecFactor}
	rules[token.BANG] = rule{unary, nil, token.PrecNone}
	rules[token.BANG_EQ] = rule{nil, binary, token.PrecEquality}
	rules[token.EQ_EQ] = rule{nil, binary, token.PrecEquality}
	rules[token.GT] = rule{nil, binary, token.PrecComparison}
	rules[token.GT_EQ] = rule{nil, binary, token.PrecComparison}
	rules[token.LT] = rule{nil, binary, token.PrecComparison}
	rules[token.LT_EQ] = rule{nil, binary, token.PrecComparison}
	rules[token.IDENT] = rule{variable, nil, token.PrecNone}
	rules[token.STRING] = rule{str, nil, token.PrecNone}
	rules[token.NUMBER] = rule{number, nil, token.PrecNone}
	rules[token.AND] = rule{nil, and_, token.PrecAnd}
	rules[token.OR] = rule{nil, or_, token.PrecOr}
	rules[token.FALSE] = rule{literal, nil, token.PrecNone}
	rules[token.NIL] = rule{literal, nil, token.PrecNone}
	rules[token.TRUE] = rule{literal, nil, token.PrecNone}
}

func getRule(kind token.Token) *rule { return &rules[kind] }

// parsePrecedence is the core of the Pratt parser: it advances one token,
// dispatches its prefix rule, then repeatedly consumes infix operators
// whose precedence is at least p.
func (c *Compiler) parsePrecedence(p token.Precedence) {
	c.advance()
	prefixRule := getRule(c.previous.Kind).prefix
	if prefixRule == nil {
		c.error("Expect expression.")
		return
	}

	canAssign := p <= token.PrecAssignment
	prefixRule(c, canAssign)

	for p <= getRule(c.current.Kind).prec {
		c.advance()
		infixRule := getRule(c.previous.Kind).infix
		infixRule(c, canAssign)
	}

	if canAssign && c.match(token.EQ) {
		c.error("Invalid assignment target.")
	}
}

func (c *Compiler) expression() {
	c.parsePrecedence(token.PrecAssignment)
}
