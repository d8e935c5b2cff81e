// Package main provides the CLI entry point for peruse.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorLabel.Fprint(os.Stderr, "error: ")
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
