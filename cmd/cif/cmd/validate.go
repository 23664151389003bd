package cmd

import (
	"errors"
	"fmt"
	"os"

	cif "github.com/diffractionlab/go-cif"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check CIF files for syntax violations",
	Long: `Check each file for syntax violations. The first violation of each
file is reported with its line number and the offending text; files that pass
are reported as valid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var failed error
	for _, path := range args {
		warnExtension(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return &exitError{code: ExitIOError, err: err}
		}
		switch err := cif.Validate(data); {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
		case errors.Is(err, cif.ErrEmptyInput):
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (empty)\n", path)
		default:
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = &exitError{code: ExitParseError, err: fmt.Errorf("%s is not valid CIF", path)}
		}
	}
	return failed
}
