package vm

import (
	"fmt"
	"math"

	"github.com/mna/loxvm/lang/bytecode"
	"github.com/mna/loxvm/lang/value"
)

func (vm *VM) frame() *CallFrame { return &vm.frames[len(vm.frames)-1] }

// run is the fetch-decode-execute loop. It always executes the topmost call
// frame; calls push a new frame and return to this same loop, which simply
// reloads vm.frame() afterwards.
func (vm *VM) run() error {
	for {
		fr := vm.frame()
		code := fr.fn.Chunk.Code

		op := bytecode.Op(code[fr.ip])
		fr.ip++
		if !op.Valid() {
			return vm.runtimeError(fmt.Sprintf("Unknown opcode %d.", byte(op)))
		}

		switch op {
		case bytecode.Constant:
			idx := vm.readByte()
			vm.push(fr.fn.Chunk.Constants[idx])

		case bytecode.Nil:
			vm.push(value.None)
		case bytecode.True:
			vm.push(value.Bool(true))
		case bytecode.False:
			vm.push(value.Bool(false))
		case bytecode.Pop:
			vm.pop()

		case bytecode.GetLocal:
			slot := vm.readByte()
			vm.push(vm.stack[fr.slotBase+int(slot)])
		case bytecode.SetLocal:
			slot := vm.readByte()
			vm.stack[fr.slotBase+int(slot)] = vm.peek(0)

		case bytecode.GetGlobal:
			name := string(fr.fn.Chunk.Constants[vm.readByte()].(value.String))
			v, ok := vm.globals.Get(name)
			if !ok {
				return vm.runtimeError(fmt.Sprintf("Undefined variable %s.", name))
			}
			vm.push(v)
		case bytecode.DefineGlobal:
			name := string(fr.fn.Chunk.Constants[vm.readByte()].(value.String))
			vm.globals.Put(name, vm.peek(0))
			vm.pop()
		case bytecode.SetGlobal:
			name := string(fr.fn.Chunk.Constants[vm.readByte()].(value.String))
			if _, ok := vm.globals.Get(name); !ok {
				return vm.runtimeError(fmt.Sprintf("Undefined variable %s.", name))
			}
			vm.globals.Put(name, vm.peek(0))

		case bytecode.Equal:
			b, a := vm.pop(), vm.pop()
			vm.push(value.Bool(value.Equal(a, b)))
		case bytecode.Greater:
			if err := vm.numericCompare(func(a, b float64) bool { return a > b }); err != nil {
				return err
			}
		case bytecode.Less:
			if err := vm.numericCompare(func(a, b float64) bool { return a < b }); err != nil {
				return err
			}

		case bytecode.Add:
			if err := vm.add(); err != nil {
				return err
			}
		case bytecode.Subtract:
			if err := vm.numericBinary(func(a, b float64) float64 { return a - b }); err != nil {
				return err
			}
		case bytecode.Multiply:
			if err := vm.numericBinary(func(a, b float64) float64 { return a * b }); err != nil {
				return err
			}
		case bytecode.Divide:
			if err := vm.numericBinary(func(a, b float64) float64 { return a / b }); err != nil {
				return err
			}
		case bytecode.Power:
			if err := vm.numericBinary(math.Pow); err != nil {
				return err
			}

		case bytecode.Not:
			vm.push(value.Bool(!value.IsTruthy(vm.pop())))
		case bytecode.Negate:
			n, ok := vm.peek(0).(value.Number)
			if !ok {
				return vm.runtimeError("Operand must be a number.")
			}
			vm.pop()
			vm.push(-n)

		case bytecode.Print:
			fmt.Fprintf(vm.stdout, "%s\n", vm.pop().String())

		case bytecode.Jump:
			offset := vm.readShort()
			fr.ip += int(offset)
		case bytecode.JumpIfFalse:
			offset := vm.readShort()
			if !value.IsTruthy(vm.peek(0)) {
				fr.ip += int(offset)
			}
		case bytecode.Loop:
			offset := vm.readShort()
			fr.ip -= int(offset)

		case bytecode.Call:
			argCount := int(vm.readByte())
			if err := vm.callValue(vm.peek(argCount), argCount); err != nil {
				return err
			}

		case bytecode.Return:
			result := vm.pop()
			vm.frames = vm.frames[:len(vm.frames)-1]
			if len(vm.frames) == 0 {
				vm.pop() // the top-level script function itself
				return nil
			}
			vm.sp = fr.slotBase - 1
			vm.push(result)
		}
	}
}

func (vm *VM) readByte() byte {
	fr := vm.frame()
	b := fr.fn.Chunk.Code[fr.ip]
	fr.ip++
	return b
}

func (vm *VM) readShort() uint16 {
	fr := vm.frame()
	hi := fr.fn.Chunk.Code[fr.ip]
	lo := fr.fn.Chunk.Code[fr.ip+1]
	fr.ip += 2
	return uint16(hi)<<8 | uint16(lo)
}

func (vm *VM) numericBinary(f func(a, b float64) float64) error {
	b, ok1 := vm.peek(0).(value.Number)
	a, ok2 := vm.peek(1).(value.Number)
	if !ok1 || !ok2 {
		return vm.runtimeError("Operands must be numbers.")
	}
	vm.pop()
	vm.pop()
	vm.push(value.Number(f(float64(a), float64(b))))
	return nil
}

func (vm *VM) numericCompare(f func(a, b float64) bool) error {
	b, ok1 := vm.peek(0).(value.Number)
	a, ok2 := vm.peek(1).(value.Number)
	if !ok1 || !ok2 {
		return vm.runtimeError("Operands must be numbers.")
	}
	vm.pop()
	vm.pop()
	vm.push(value.Bool(f(float64(a), float64(b))))
	return nil
}

func (vm *VM) add() error {
	b, bIsNum := vm.peek(0).(value.Number)
	a, aIsNum := vm.peek(1).(value.Number)
	if aIsNum && bIsNum {
		vm.pop()
		vm.pop()
		vm.push(a + b)
		return nil
	}

	bs, bIsStr := vm.peek(0).(value.String)
	as, aIsStr := vm.peek(1).(value.String)
	if aIsStr && bIsStr {
		vm.pop()
		vm.pop()
		vm.push(as + bs)
		return nil
	}

	return vm.runtimeError("Operands must be two numbers or two strings.")
}
