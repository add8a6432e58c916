// Package bytecode defines the instruction set shared by the compiler (which
// emits it into a value.Chunk) and the virtual machine (which decodes and
// executes it). This is the contract described by spec §4.5: every opcode is
// one byte, with a fixed, per-opcode operand width.
package bytecode

import "fmt"

// Op is a single bytecode instruction.
type Op byte

//nolint:revive
const (
	Constant Op = iota // 1-byte constant index
	Nil
	True
	False
	Pop
	GetLocal  // 1-byte local slot
	SetLocal  // 1-byte local slot
	GetGlobal // 1-byte constant index (name)
	DefineGlobal
	SetGlobal
	Equal
	Greater
	Less
	Add
	Subtract
	Multiply
	Divide
	Power // x ^ y: spec §4.3 binds '^' at Factor precedence but does not name
	// a dedicated opcode in §4.5's canonical set; Power fills that gap rather
	// than silently dropping the operator or misrouting it through Multiply.
	Not
	Negate
	Print
	Jump         // 2-byte big-endian offset
	JumpIfFalse  // 2-byte big-endian offset
	Loop         // 2-byte big-endian offset
	Call         // 1-byte argument count
	Return

	opCount
)

var names = [...]string{
	Constant:     "OP_CONSTANT",
	Nil:          "OP_NIL",
	True:         "OP_TRUE",
	False:        "OP_FALSE",
	Pop:          "OP_POP",
	GetLocal:     "OP_GET_LOCAL",
	SetLocal:     "OP_SET_LOCAL",
	GetGlobal:    "OP_GET_GLOBAL",
	DefineGlobal: "OP_DEFINE_GLOBAL",
	SetGlobal:    "OP_SET_GLOBAL",
	Equal:        "OP_EQUAL",
	Greater:      "OP_GREATER",
	Less:         "OP_LESS",
	Add:          "OP_ADD",
	Subtract:     "OP_SUBTRACT",
	Multiply:     "OP_MULTIPLY",
	Divide:       "OP_DIVIDE",
	Power:        "OP_POWER",
	Not:          "OP_NOT",
	Negate:       "OP_NEGATE",
	Print:        "OP_PRINT",
	Jump:         "OP_JUMP",
	JumpIfFalse:  "OP_JUMP_IF_FALSE",
	Loop:         "OP_LOOP",
	Call:         "OP_CALL",
	Return:       "OP_RETURN",
}

func (op Op) String() string {
	if op < opCount {
		return names[op]
	}
	return fmt.Sprintf("OP_UNKNOWN(%d)", byte(op))
}

// Valid reports whether op is a recognized opcode. The VM hard-errors on an
// unrecognized byte rather than silently treating it as any particular
// instruction (see spec §9, known source bugs not to replicate).
func (op Op) Valid() bool { return op < opCount }

// OneByteOperand reports whether op is followed by a single-byte operand
// (a constant index, local slot, or call argument count).
func OneByteOperand(op Op) bool {
	switch op {
	case Constant, GetLocal, SetLocal, GetGlobal, DefineGlobal, SetGlobal, Call:
		return true
	default:
		return false
	}
}

// TwoByteOperand reports whether op is followed by a two-byte, big-endian
// jump offset.
func TwoByteOperand(op Op) bool {
	switch op {
	case Jump, JumpIfFalse, Loop:
		return true
	default:
		return false
	}
}
