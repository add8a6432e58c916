package disasm_test

import (
	"testing"

	"github.com/mna/loxvm/lang/compiler"
	"github.com/mna/loxvm/lang/disasm"
	"github.com/stretchr/testify/require"
)

func TestChunkHeader(t *testing.T) {
	fn, err := compiler.Compile("1;\x00")
	require.NoError(t, err)
	out := disasm.Chunk(fn.Chunk, "script")
	require.Contains(t, out, "== script ==")
}

func TestInstructionOffsetsAdvanceByOperandWidth(t *testing.T) {
	fn, err := compiler.Compile("var x = 1;\x00")
	require.NoError(t, err)

	_, next := disasm.Instruction(fn.Chunk, 0)
	require.Equal(t, 2, next, "OP_CONSTANT has a one-byte operand")
}

func TestInstructionRendersConstantValue(t *testing.T) {
	fn, err := compiler.Compile(`print "hi";` + "\x00")
	require.NoError(t, err)
	out := disasm.Chunk(fn.Chunk, "script")
	require.Contains(t, out, "'hi'")
}

func TestInstructionRendersJumpTarget(t *testing.T) {
	fn, err := compiler.Compile("if (true) { print 1; }\x00")
	require.NoError(t, err)
	out := disasm.Chunk(fn.Chunk, "script")
	require.Contains(t, out, "->")
}

func TestInstructionSharedLineOmitsRepeat(t *testing.T) {
	fn, err := compiler.Compile("1; 2;\x00")
	require.NoError(t, err)
	out := disasm.Chunk(fn.Chunk, "script")
	require.Contains(t, out, "   | ")
}

func TestInstructionUnknownOpcode(t *testing.T) {
	fn, err := compiler.Compile("1;\x00")
	require.NoError(t, err)
	fn.Chunk.Code[0] = 0xfe // not a valid opcode
	line, _ := disasm.Instruction(fn.Chunk, 0)
	require.Contains(t, line, "Unknown opcode")
}
