package compiler

import (
	"github.com/mna/loxvm/lang/bytecode"
	"github.com/mna/loxvm/lang/scanner"
	"github.com/mna/loxvm/lang/token"
	"github.com/mna/loxvm/lang/value"
)

func (c *Compiler) beginScope() { c.cur.scopeDepth++ }

// endScope pops every local declared in the scope just left, emitting one
// OP_POP per popped local so the operand stack matches the new scope depth
// at runtime.
func (c *Compiler) endScope() {
	c.cur.scopeDepth--
	locals := c.cur.locals
	for len(locals) > 0 && locals[len(locals)-1].depth > c.cur.scopeDepth {
		c.emitOp(bytecode.Pop)
		locals = locals[:len(locals)-1]
	}
	c.cur.locals = locals
}

// declareVariable registers name as a local in the current scope. At the
// top level (scope depth 0) this is a no-op: top-level variables are
// globals, identified by name at runtime, not by stack slot.
func (c *Compiler) declareVariable(name scanner.Token) {
	if c.cur.scopeDepth == 0 {
		return
	}

	locals := c.cur.locals
	for i := len(locals) - 1; i >= 0; i-- {
		l := locals[i]
		if l.depth != -1 && l.depth < c.cur.scopeDepth {
			break
		}
		if l.name == name.Lexeme {
			c.error("Already a variable with this name in this scope.")
		}
	}
	c.addLocal(name)
}

func (c *Compiler) addLocal(name scanner.Token) {
	if len(c.cur.locals) >= maxLocals {
		c.error("Too many local variables in function.")
		return
	}
	c.cur.locals = append(c.cur.locals, local{name: name.Lexeme, depth: -1})
}

// markInitialized sets the most recently declared local's depth to the
// current scope depth, making it visible to name resolution. It is a no-op
// at the top level, where there is no local to mark.
func (c *Compiler) markInitialized() {
	if c.cur.scopeDepth == 0 {
		return
	}
	c.cur.locals[len(c.cur.locals)-1].depth = c.cur.scopeDepth
}

// resolveLocal scans the current function's locals from newest to oldest
// and returns the index of the first one named name, or -1 if none match.
// Reading a local whose initializer is still running (depth == -1) is a
// compile error.
func (c *Compiler) resolveLocal(fs *funcState, name scanner.Token) int {
	for i := len(fs.locals) - 1; i >= 0; i-- {
		l := fs.locals[i]
		if l.name == name.Lexeme {
			if l.depth == -1 {
				c.error("Can't read local variable in its own initializer.")
			}
			return i
		}
	}
	return -1
}

func (c *Compiler) identifierConstant(name scanner.Token) byte {
	return c.makeConstant(value.String(name.Lexeme))
}

// parseVariable consumes an identifier and declares it. For a local it
// returns 0 (the caller must not use it: locals are resolved by stack slot,
// not by constant index); for a global it returns the constant-pool index of
// its name.
func (c *Compiler) parseVariable(errMsg string) byte {
	c.consume(token.IDENT, errMsg)
	c.declareVariable(c.previous)
	if c.cur.scopeDepth > 0 {
		return 0
	}
	return c.identifierConstant(c.previous)
}

// defineVariable finishes a variable declaration: for a local it just marks
// it initialized (its value is already sitting in the right stack slot),
// for a global it emits OP_DEFINE_GLOBAL with the name's constant index.
func (c *Compiler) defineVariable(global byte) {
	if c.cur.scopeDepth > 0 {
		c.markInitialized()
		return
	}
	c.emitOpByte(bytecode.DefineGlobal, global)
}
