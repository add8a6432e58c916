// Package vm implements the stack-based virtual machine: an explicit value
// stack, a bounded array of call frames, a globals table, and the
// fetch-decode-execute loop that dispatches bytecode emitted by
// lang/compiler.
package vm

import (
	"io"
	"os"

	"github.com/dolthub/swiss"
	"github.com/mna/loxvm/lang/compiler"
	"github.com/mna/loxvm/lang/value"
)

// maxFrames bounds the depth of nested function calls.
const maxFrames = 64

// stackMax bounds the operand stack; generous enough that only pathological
// recursion (already capped by maxFrames) could exhaust it.
const stackMax = maxFrames * 256

// A CallFrame is an activation record for one call to a Function: its
// bytecode pointer (ip, a byte index into Function.Chunk.Code) and the
// index in the VM's stack where its locals begin. The callee itself always
// sits at stack[slotBase-1].
type CallFrame struct {
	fn       *value.Function
	ip       int
	slotBase int
}

// VM is a single-threaded, synchronous bytecode interpreter. It owns its
// operand stack, its call-frame array, and its globals table exclusively;
// nothing outside Interpret/run mutates them concurrently.
type VM struct {
	stack  []value.Value
	sp     int
	frames []CallFrame

	globals *swiss.Map[string, value.Value]

	stdout io.Writer
	stderr io.Writer
}

// New returns a ready-to-use VM. A nil stdout/stderr defaults to os.Stdout/
// os.Stderr.
func New(stdout, stderr io.Writer) *VM {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	vm := &VM{
		stack:   make([]value.Value, stackMax),
		frames:  make([]CallFrame, 0, maxFrames),
		globals: swiss.NewMap[string, value.Value](8 /* initial capacity hint */),
		stdout:  stdout,
		stderr:  stderr,
	}
	installNatives(vm)
	return vm
}

func (vm *VM) push(v value.Value) {
	vm.stack[vm.sp] = v
	vm.sp++
}

func (vm *VM) pop() value.Value {
	vm.sp--
	return vm.stack[vm.sp]
}

func (vm *VM) peek(distance int) value.Value {
	return vm.stack[vm.sp-1-distance]
}

// resetStack discards the operand stack and all call frames, per spec §4.7:
// a runtime error clears the stack before returning.
func (vm *VM) resetStack() {
	vm.sp = 0
	vm.frames = vm.frames[:0]
}

// Interpret compiles and runs source to completion. It returns a
// compiler.ErrorList on a compile failure, or a *RuntimeError on a runtime
// failure; both satisfy error, and a caller mapping to process exit codes
// should distinguish the two with a type switch (exit 65 vs 70).
func (vm *VM) Interpret(source string) error {
	fn, err := compiler.Compile(source)
	if err != nil {
		return err
	}

	vm.push(fn)
	vm.frames = append(vm.frames, CallFrame{fn: fn, ip: 0, slotBase: 1})

	return vm.run()
}
