// Command htmlgen generates the html, attr and css constructor files from
// naming tables and checks that checked-in generated files are current.
//
//	htmlgen generate            # write html/, attr/ and css/ *.gen.go
//	htmlgen check               # report missing or stale generated files
//	htmlgen list                # print the vocabulary
//	htmlgen init                # write a default .htmlgen.yaml
package main

import (
	"errors"
	"fmt"
	"os"
)

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
