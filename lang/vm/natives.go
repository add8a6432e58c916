package vm

import (
	"time"

	"github.com/mna/loxvm/lang/value"
)

// installNatives defines the global bindings provided by the host rather
// than by user code. Spec §4.8 requires exactly one: clock.
func installNatives(vm *VM) {
	vm.defineNative("clock", func(args []value.Value) (value.Value, error) {
		return value.Number(float64(time.Now().UnixMilli())), nil
	})
}

func (vm *VM) defineNative(name string, fn value.NativeFunc) {
	vm.globals.Put(name, &value.Native{Name: name, Fn: fn})
}
