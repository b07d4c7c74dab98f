// Command advdump decodes a binary file according to a TOML layout and
// prints one "name = value" line per field.
//
// Defaults can be supplied through ADVDUMP_* environment variables, which
// are also read from a .env file in the working directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "advdump:", err)
		os.Exit(1)
	}
}
