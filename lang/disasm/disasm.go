// Package disasm translates a compiled value.Chunk back into human-readable
// text, for tests. It has no effect
// on compilation or execution; it only reads what the compiler already
// produced (spec §2, Disassembler).
package disasm

import (
	"fmt"
	"strings"

	"github.com/mna/loxvm/lang/bytecode"
	"github.com/mna/loxvm/lang/value"
)

// Chunk renders every instruction in c, labeled with name (typically the
// enclosing function's display name).
func Chunk(c *value.Chunk, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		var line string
		line, offset = Instruction(c, offset)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Instruction renders the single instruction at offset and returns the text
// plus the offset of the next instruction.
func Instruction(c *value.Chunk, offset int) (string, int) {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d ", offset)

	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		b.WriteString("   | ")
	} else {
		fmt.Fprintf(&b, "%4d ", c.Lines[offset])
	}

	op := bytecode.Op(c.Code[offset])
	if !op.Valid() {
		fmt.Fprintf(&b, "Unknown opcode %d", byte(op))
		return b.String(), offset + 1
	}

	switch {
	case bytecode.OneByteOperand(op):
		arg := c.Code[offset+1]
		if op == bytecode.Constant || op == bytecode.GetGlobal || op == bytecode.DefineGlobal || op == bytecode.SetGlobal {
			fmt.Fprintf(&b, "%-18s %4d '%s'", op, arg, constantText(c, int(arg)))
		} else {
			fmt.Fprintf(&b, "%-18s %4d", op, arg)
		}
		return b.String(), offset + 2

	case bytecode.TwoByteOperand(op):
		hi, lo := c.Code[offset+1], c.Code[offset+2]
		jump := int(hi)<<8 | int(lo)
		target := offset + 3 + jump
		if op == bytecode.Loop {
			target = offset + 3 - jump
		}
		fmt.Fprintf(&b, "%-18s %4d -> %d", op, offset, target)
		return b.String(), offset + 3

	default:
		fmt.Fprintf(&b, "%s", op)
		return b.String(), offset + 1
	}
}

func constantText(c *value.Chunk, idx int) string {
	if idx < 0 || idx >= len(c.Constants) {
		return "?"
	}
	return c.Constants[idx].String()
}
