package compiler

import "fmt"

// A CompileError is a single diagnostic produced while compiling, attributed
// to a source line.
type CompileError struct {
	Line    int
	Where   string // "" for an ERROR token, "at end" for EOF, else "at '<lexeme>'"
	Message string
}

func (e *CompileError) Error() string {
	if e.Where == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error %s: %s", e.Line, e.Where, e.Message)
}

// ErrorList is an accumulation of compile errors. Like go/scanner.ErrorList,
// it implements Unwrap() []error so callers can use errors.Is/As over the
// full set, and its Error method renders every diagnostic, one per line.
type ErrorList []*CompileError

func (el *ErrorList) Add(e *CompileError) { *el = append(*el, e) }

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}
	s := el[0].Error()
	for _, e := range el[1:] {
		s += "\n" + e.Error()
	}
	return s
}

func (el ErrorList) Unwrap() []error {
	errs := make([]error, len(el))
	for i, e := range el {
		errs[i] = e
	}
	return errs
}

// Err returns el as an error, or nil if el is empty.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}
