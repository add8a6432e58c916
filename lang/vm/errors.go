package vm

import (
	"fmt"
	"strings"

	"github.com/mna/loxvm/lang/value"
)

// FrameTrace is one line of a runtime error's stack trace: the source line
// active in that frame and the callable's display name ("script" for the
// implicit top-level frame).
type FrameTrace struct {
	Line int
	Name string
}

// RuntimeError is returned by VM.Interpret when execution fails after a
// successful compile: a type-check failure in an arithmetic/comparison/
// negate op, an undefined global read or write, an arity mismatch, a
// non-callable call target, or frame-stack overflow (spec §7).
type RuntimeError struct {
	Message string
	Frames  []FrameTrace // newest call first
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	for _, fr := range e.Frames {
		fmt.Fprintf(&b, "\n[line %d] in %s", fr.Line, fr.Name)
	}
	return b.String()
}

// runtimeError builds the diagnostic for the current call stack, prints it
// to stderr (spec §4.7/§6), clears the stack, and returns it so the caller
// can map it to a process exit code.
func (vm *VM) runtimeError(format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	frames := make([]FrameTrace, 0, len(vm.frames))
	for i := len(vm.frames) - 1; i >= 0; i-- {
		fr := &vm.frames[i]
		line := 0
		// fr.ip has already advanced past the bytes of the instruction that
		// failed (for a caller frame, past its Call instruction), so ip-1 is
		// the last byte of that instruction. The compiler writes every byte of
		// one instruction with the same source line, so Lines[ip-1] is that
		// instruction's line.
		if idx := fr.ip - 1; idx >= 0 && idx < len(fr.fn.Chunk.Lines) {
			line = fr.fn.Chunk.Lines[idx]
		}
		frames = append(frames, FrameTrace{Line: line, Name: value.CallableName(fr.fn)})
	}

	err := &RuntimeError{Message: msg, Frames: frames}
	fmt.Fprintln(vm.stderr, err.Error())
	vm.resetStack()
	return err
}
