package compiler

import (
	"strconv"

	"github.com/mna/loxvm/lang/bytecode"
	"github.com/mna/loxvm/lang/scanner"
	"github.com/mna/loxvm/lang/token"
	"github.com/mna/loxvm/lang/value"
)

func number(c *Compiler, _ bool) {
	n, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(n))
}

func str(c *Compiler, _ bool) {
	// Strip the surrounding quotes.
	lexeme := c.previous.Lexeme
	c.emitConstant(value.String(lexeme[1 : len(lexeme)-1]))
}

func literal(c *Compiler, _ bool) {
	switch c.previous.Kind {
	case token.FALSE:
		c.emitOp(bytecode.False)
	case token.NIL:
		c.emitOp(bytecode.Nil)
	case token.TRUE:
		c.emitOp(bytecode.True)
	}
}

func grouping(c *Compiler, _ bool) {
	c.expression()
	c.consume(token.RPAREN, "Expect ')' after expression.")
}

func unary(c *Compiler, _ bool) {
	opKind := c.previous.Kind

	// Compile the operand, at unary precedence so nested unary operators
	// associate correctly (e.g. `!!x`).
	c.parsePrecedence(token.PrecUnary)

	switch opKind {
	case token.BANG:
		c.emitOp(bytecode.Not)
	case token.MINUS:
		c.emitOp(bytecode.Negate)
	}
}

func binary(c *Compiler, _ bool) {
	opKind := c.previous.Kind
	r := getRule(opKind)
	c.parsePrecedence(r.prec.Next())

	switch opKind {
	case token.BANG_EQ:
		c.emitOp(bytecode.Equal)
		c.emitOp(bytecode.Not)
	case token.EQ_EQ:
		c.emitOp(bytecode.Equal)
	case token.GT:
		c.emitOp(bytecode.Greater)
	case token.GT_EQ:
		c.emitOp(bytecode.Less)
		c.emitOp(bytecode.Not)
	case token.LT:
		c.emitOp(bytecode.Less)
	case token.LT_EQ:
		c.emitOp(bytecode.Greater)
		c.emitOp(bytecode.Not)
	case token.PLUS:
		c.emitOp(bytecode.Add)
	case token.MINUS:
		c.emitOp(bytecode.Subtract)
	case token.STAR:
		c.emitOp(bytecode.Multiply)
	case token.SLASH:
		c.emitOp(bytecode.Divide)
	case token.CARET:
		c.emitOp(bytecode.Power)
	}
}

// and_ compiles the right operand of a short-circuiting `and`: if the left
// operand (already on the stack) is falsey, jump over the right operand,
// leaving the falsey value as the result.
func and_(c *Compiler, _ bool) {
	endJump := c.emitJump(bytecode.JumpIfFalse)
	c.emitOp(bytecode.Pop)
	c.parsePrecedence(token.PrecAnd)
	c.patchJump(endJump)
}

// or_ compiles the right operand of a short-circuiting `or`: if the left
// operand is truthy, skip the right operand entirely.
func or_(c *Compiler, _ bool) {
	elseJump := c.emitJump(bytecode.JumpIfFalse)
	endJump := c.emitJump(bytecode.Jump)

	c.patchJump(elseJump)
	c.emitOp(bytecode.Pop)

	c.parsePrecedence(token.PrecOr)
	c.patchJump(endJump)
}

func variable(c *Compiler, canAssign bool) {
	namedVariable(c, c.previous, canAssign)
}

func namedVariable(c *Compiler, name scanner.Token, canAssign bool) {
	var getOp, setOp bytecode.Op
	arg := c.resolveLocal(c.cur, name)
	if arg != -1 {
		// locals[0] is the reserved callee slot at stack[slotBase-1], so the
		// operand is the local's index relative to slotBase.
		arg--
		getOp, setOp = bytecode.GetLocal, bytecode.SetLocal
	} else {
		arg = int(c.identifierConstant(name))
		getOp, setOp = bytecode.GetGlobal, bytecode.SetGlobal
	}

	if canAssign && c.match(token.EQ) {
		c.expression()
		c.emitOpByte(setOp, byte(arg))
	} else {
		c.emitOpByte(getOp, byte(arg))
	}
}

func call(c *Compiler, _ bool) {
	argCount := c.argumentList()
	c.emitOpByte(bytecode.Call, argCount)
}

func (c *Compiler) argumentList() byte {
	var argCount int
	if !c.check(token.RPAREN) {
		for {
			c.expression()
			if argCount == maxArity {
				c.error("Can't have more than 255 arguments.")
			}
			argCount++
			if !c.match(token.COMMA) {
				break
			}
		}
	}
	c.consume(token.RPAREN, "Expect ')' after arguments.")
	return byte(argCount)
}
