package cmd

import (
	"fmt"
	"io"
	"os"

	cif "github.com/diffractionlab/go-cif"
	"github.com/spf13/cobra"
)

var (
	convertFormat string
	convertOut    string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a CIF file to JSON or YAML",
	Long: `Parse a CIF file and write its data blocks in the chosen format.
Output goes to stdout unless --out names a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "json", "Output format: json or yaml")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	warnExtension(path)

	var encode func(io.Writer, []*cif.DataBlock) error
	switch convertFormat {
	case "json":
		encode = cif.EncodeJSON
	case "yaml":
		encode = cif.EncodeYAML
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", convertFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &exitError{code: ExitIOError, err: err}
	}
	blocks, err := cif.Parse(data)
	if err != nil {
		return &exitError{code: ExitParseError, err: fmt.Errorf("%s: %w", path, err)}
	}

	out := cmd.OutOrStdout()
	if convertOut != "" {
		f, err := os.Create(convertOut)
		if err != nil {
			return &exitError{code: ExitIOError, err: err}
		}
		defer f.Close()
		out = f
	}
	if err := encode(out, blocks); err != nil {
		return &exitError{code: ExitIOError, err: err}
	}
	return nil
}
