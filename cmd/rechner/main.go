// Command rechner runs the German tax and benefit calculators from the command line or as an HTTP API.
package main

import (
	"os"

	"github.com/steuerkit/rechner/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
