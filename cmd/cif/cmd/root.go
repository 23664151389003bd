// Package cmd implements the cif command line tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Exit codes reported by the tool.
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitParseError       = 3
)

var rootCmd = &cobra.Command{
	Use:   "cif",
	Short: "Validate and convert CIF files",
	Long: `cif validates Crystallographic Information Files and converts them
to JSON or YAML.

Validation reports the first syntax violation of each file with its line
number and the offending text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the tool and returns its exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

// exitError carries an exit code alongside the message cobra propagates.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitInvalidArguments
}

// warnExtension warns when a file does not carry the conventional extension.
func warnExtension(path string) {
	if !strings.EqualFold(filepath.Ext(path), ".cif") {
		fmt.Fprintf(os.Stderr, "Warning: %s does not have a .cif extension\n", path)
	}
}
