// Package maincmd implements the loxvm command line: `loxvm [path]`. Zero
// arguments starts the REPL; one argument runs that file; more than one is a
// usage error (spec §6).
package maincmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mna/loxvm/lang/compiler"
	"github.com/mna/loxvm/lang/vm"
	"github.com/mna/mainer"
)

const binName = "loxvm"

var usage = fmt.Sprintf(`usage: %s [path]
       %[1]s -h|--help
       %[1]s -v|--version

With no path, start an interactive REPL. With a path, run that script.
`, binName)

// Exit codes, fixed by spec §6. The mainer.ExitCode values returned here are
// the raw process codes the spec mandates (0, 64, 65, 70), plus 74 when the
// script file cannot be read, not mainer's own Success/Failure/InvalidArgs,
// since those don't distinguish a compile error from a runtime one.
const (
	ExitSuccess      mainer.ExitCode = 0
	ExitUsage        mainer.ExitCode = 64
	ExitCompileError mainer.ExitCode = 65
	ExitRuntimeError mainer.ExitCode = 70
	ExitIOError      mainer.ExitCode = 74
)

// Cmd is the loxvm command. It takes no flags beyond -h/-v: the language's
// CLI surface is deliberately just "run this file, or don't".
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)         { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return fmt.Errorf("too many arguments: %s", c.args)
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, usage)
		return ExitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, usage)
		return ExitSuccess
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return ExitSuccess
	}

	switch len(c.args) {
	case 0:
		return c.repl(stdio)
	case 1:
		return c.runFile(stdio, c.args[0])
	default:
		fmt.Fprint(stdio.Stderr, usage)
		return ExitUsage
	}
}

func (c *Cmd) runFile(stdio mainer.Stdio, path string) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
		return ExitIOError
	}

	m := vm.New(stdio.Stdout, stdio.Stderr)
	return interpret(stdio, m, string(src)+"\x00")
}

// repl reuses a single VM across lines, so globals and function definitions
// persist for the session; only the compile step is redone per line (spec
// §7: "The REPL catches both and continues with a fresh interpret call.").
func (c *Cmd) repl(stdio mainer.Stdio) mainer.ExitCode {
	m := vm.New(stdio.Stdout, stdio.Stderr)
	scan := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, ">> ")
		if !scan.Scan() {
			fmt.Fprintln(stdio.Stdout)
			return ExitSuccess
		}
		interpret(stdio, m, scan.Text()+"\x00")
	}
}

// interpret runs one source string against m. Compile errors are printed
// here, one diagnostic per line; runtime errors are already printed by the
// VM itself, so interpret only classifies the result for the exit code.
func interpret(stdio mainer.Stdio, m *vm.VM, source string) mainer.ExitCode {
	err := m.Interpret(source)
	if err == nil {
		return ExitSuccess
	}

	if errs, ok := err.(compiler.ErrorList); ok {
		for _, e := range errs {
			fmt.Fprintln(stdio.Stderr, e.Error())
		}
		return ExitCompileError
	}
	return ExitRuntimeError
}
