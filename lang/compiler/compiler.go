// Package compiler implements the single-pass Pratt compiler: it drives the
// scanner, parses with a static per-token-kind rule table, and writes
// bytecode directly into the Chunk of the Function currently being compiled.
// There is no separate AST: parsing and code generation happen in the same
// traversal.
package compiler

import (
	"github.com/mna/loxvm/lang/bytecode"
	"github.com/mna/loxvm/lang/scanner"
	"github.com/mna/loxvm/lang/token"
	"github.com/mna/loxvm/lang/value"
)

// maxLocals is the hard cap on locals tracked per function, including the
// always-reserved slot 0 (see spec §3, Compiler context).
const maxLocals = 257

// maxArity is the hard cap on function parameters and call arguments.
const maxArity = 255

type funcType int

const (
	ftScript funcType = iota
	ftFunction
)

// local is a lexically scoped variable stored directly on the operand
// stack. depth == -1 means "declared but not yet initialized": its own
// initializer expression may not refer to it.
type local struct {
	name  string
	depth int
}

// funcState is the compiler context for one function being compiled. A
// nested `fun` declaration pushes a new funcState on top of the stack and
// pops back to the enclosing one once the nested function's body is done.
type funcState struct {
	enclosing *funcState
	fn        *value.Function
	kind      funcType
	locals    []local
	scopeDepth int
}

// Compiler holds all state for a single compilation: the scanner, the
// current/previous token, error accumulation, and the stack of function
// contexts.
type Compiler struct {
	scanner *scanner.Scanner

	previous scanner.Token
	current  scanner.Token

	hadError  bool
	panicMode bool
	errs      ErrorList

	cur *funcState // top of the compiler-context stack
}

// Compile compiles source into a top-level script Function. On any compile
// error it returns a nil Function and a non-nil error (an ErrorList); the
// caller should treat this as a compile-time failure (spec §7: exit code 65
// when invoked from a file).
func Compile(source string) (*value.Function, error) {
	c := &Compiler{scanner: scanner.New(source)}
	c.pushFunc(ftScript, "")

	c.advance()
	for !c.match(token.EOF) {
		c.declaration()
	}

	fn := c.endFunc()
	if c.hadError {
		return nil, c.errs.Err()
	}
	return fn, nil
}

func (c *Compiler) pushFunc(kind funcType, name string) {
	fs := &funcState{
		enclosing: c.cur,
		kind:      kind,
		fn: &value.Function{
			Chunk: &value.Chunk{},
			Name:  name,
		},
		// Slot 0 is always reserved: it holds the callee itself in the VM's
		// call convention, so the compiler must never hand it out as a
		// user-declared local.
		locals: []local{{name: "", depth: 0}},
	}
	c.cur = fs
}

// endFunc finishes compiling the current function, emits the implicit
// trailing return, and restores the enclosing context.
func (c *Compiler) endFunc() *value.Function {
	c.emitReturn()
	fn := c.cur.fn
	c.cur = c.cur.enclosing
	return fn
}

func (c *Compiler) currentChunk() *value.Chunk {
	return c.cur.fn.Chunk
}

// --- token stream -----------------------------------------------------

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.ScanToken()
		if c.current.Kind != token.ERROR {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) check(kind token.Token) bool {
	return c.current.Kind == kind
}

func (c *Compiler) match(kind token.Token) bool {
	if !c.check(kind) {
		return false
	}
	c.advance()
	return true
}

func (c *Compiler) consume(kind token.Token, msg string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(msg)
}

// --- error reporting ----------------------------------------------------

func (c *Compiler) errorAtCurrent(msg string) { c.errorAt(c.current, msg) }
func (c *Compiler) error(msg string)          { c.errorAt(c.previous, msg) }

func (c *Compiler) errorAt(tok scanner.Token, msg string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	where := "at '" + tok.Lexeme + "'"
	switch tok.Kind {
	case token.EOF:
		where = "at end"
	case token.ERROR:
		where = ""
	}
	c.errs.Add(&CompileError{Line: tok.Line, Where: where, Message: msg})
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so that one error doesn't cascade into a flood of spurious ones.
func (c *Compiler) synchronize() {
	c.panicMode = false

	for c.current.Kind != token.EOF {
		if c.previous.Kind == token.SEMI {
			return
		}
		switch c.current.Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		c.advance()
	}
}

// --- bytecode emission ---------------------------------------------------

func (c *Compiler) emitByte(b byte) {
	c.currentChunk().Write(b, c.previous.Line)
}

func (c *Compiler) emitOp(op bytecode.Op) { c.emitByte(byte(op)) }

func (c *Compiler) emitBytes(a, b byte) {
	c.emitByte(a)
	c.emitByte(b)
}

func (c *Compiler) emitOpByte(op bytecode.Op, arg byte) {
	c.emitBytes(byte(op), arg)
}

func (c *Compiler) emitReturn() {
	c.emitOp(bytecode.Nil)
	c.emitOp(bytecode.Return)
}

// emitJump emits a jump opcode with a two-byte 0xFFFF placeholder and
// returns the offset of the placeholder's first byte, to be patched later.
func (c *Compiler) emitJump(op bytecode.Op) int {
	c.emitOp(op)
	c.emitByte(0xff)
	c.emitByte(0xff)
	return len(c.currentChunk().Code) - 2
}

// patchJump back-fills a jump placeholder emitted by emitJump with the
// distance from just after the placeholder to the current end of code.
func (c *Compiler) patchJump(offset int) {
	jump := len(c.currentChunk().Code) - offset - 2
	if jump > 0xffff {
		c.error("Too much code to jump over.")
		return
	}
	c.currentChunk().Code[offset] = byte(jump>>8) & 0xff
	c.currentChunk().Code[offset+1] = byte(jump) & 0xff
}

// emitLoop emits OP_LOOP with an offset that takes the VM from just after
// the instruction back to loopStart.
func (c *Compiler) emitLoop(loopStart int) {
	c.emitOp(bytecode.Loop)
	offset := len(c.currentChunk().Code) - loopStart + 2
	if offset > 0xffff {
		c.error("Loop body too large.")
		return
	}
	c.emitByte(byte(offset>>8) & 0xff)
	c.emitByte(byte(offset) & 0xff)
}

func (c *Compiler) makeConstant(v value.Value) byte {
	idx, err := c.currentChunk().AddConstant(v)
	if err != nil {
		c.error(err.Error())
		return 0
	}
	return idx
}

func (c *Compiler) emitConstant(v value.Value) {
	c.emitOpByte(bytecode.Constant, c.makeConstant(v))
}
