// Command pixbench checks optimized pixel comparison kernels against the
// portable reference and reports their relative speed.
package main

import (
	"os"

	"github.com/cwbudde/algo-pixcmp/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args))
}
