package vm

import (
	"github.com/mna/loxvm/lang/value"
)

// callValue implements the Call instruction's protocol (spec §4.7): dispatch
// on the callee's runtime type, found at stack[sp-1-argCount].
func (vm *VM) callValue(callee value.Value, argCount int) error {
	switch fn := callee.(type) {
	case *value.Function:
		return vm.callFunction(fn, argCount)
	case *value.Native:
		return vm.callNative(fn, argCount)
	default:
		return vm.runtimeError("Can only call functions and classes.")
	}
}

func (vm *VM) callFunction(fn *value.Function, argCount int) error {
	if argCount != fn.Arity {
		return vm.runtimeError("Expected %d arguments but got %d.", fn.Arity, argCount)
	}
	if len(vm.frames) >= maxFrames {
		return vm.runtimeError("Stack overflow.")
	}

	vm.frames = append(vm.frames, CallFrame{
		fn:       fn,
		ip:       0,
		slotBase: vm.sp - argCount,
	})
	return nil
}

// callNative calls a host-provided Native with its argCount stack slots as a
// read-only slice, then collapses the callee and its arguments down to a
// single result slot. Natives cannot trigger the Return opcode: they return
// directly to callValue's caller.
func (vm *VM) callNative(n *value.Native, argCount int) error {
	args := vm.stack[vm.sp-argCount : vm.sp]
	result, err := n.Fn(args)
	if err != nil {
		return vm.runtimeError(err.Error())
	}

	vm.sp -= argCount + 1 // drop arguments and the callee
	vm.push(result)
	return nil
}
