// Command loxvm is the bytecode compiler and stack VM's entry point.
package main

import (
	"os"

	"github.com/mna/mainer"
	"github.com/mna/loxvm/internal/maincmd"
)

var (
	buildVersion = "dev"
	buildDate    = "unknown"
)

func main() {
	c := &maincmd.Cmd{BuildVersion: buildVersion, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
