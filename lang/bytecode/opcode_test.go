package bytecode

import (
	"strings"
	"testing"
)

func TestOpcodeString(t *testing.T) {
	for op := Op(0); op < opCount; op++ {
		if names[op] == "" {
			t.Errorf("missing string representation of opcode %d", op)
		}
		if s := op.String(); strings.Contains(s, "UNKNOWN") {
			t.Errorf("invalid string representation of opcode %d", op)
		}
	}
}

func TestOpcodeValid(t *testing.T) {
	if !Constant.Valid() {
		t.Error("Constant should be valid")
	}
	if opCount.Valid() {
		t.Error("opCount should not be valid")
	}
	if Op(255).Valid() {
		t.Error("255 should not be valid")
	}
}

func TestOperandWidths(t *testing.T) {
	oneByte := []Op{Constant, GetLocal, SetLocal, GetGlobal, DefineGlobal, SetGlobal, Call}
	for _, op := range oneByte {
		if !OneByteOperand(op) {
			t.Errorf("%s should report a one-byte operand", op)
		}
		if TwoByteOperand(op) {
			t.Errorf("%s should not report a two-byte operand", op)
		}
	}

	twoByte := []Op{Jump, JumpIfFalse, Loop}
	for _, op := range twoByte {
		if !TwoByteOperand(op) {
			t.Errorf("%s should report a two-byte operand", op)
		}
		if OneByteOperand(op) {
			t.Errorf("%s should not report a one-byte operand", op)
		}
	}

	for _, op := range []Op{Nil, True, False, Pop, Equal, Add, Power, Not, Negate, Print, Return} {
		if OneByteOperand(op) || TwoByteOperand(op) {
			t.Errorf("%s should have no operand", op)
		}
	}
}
