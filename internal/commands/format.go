package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatDontIndentFlag bool

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Normalize Org text to canonical form",
	Long: `format parses the input and serializes it back to Org text. Output is
byte-identical to newline-terminated input; input missing its final
newline gains one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVar(&formatDontIndentFlag, "dont-indent", false,
		"Render property and logbook drawers flush left")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	src, err := inputSerializer(args)
	if err != nil {
		return err
	}
	if formatDontIndentFlag {
		src = src.DontIndent()
	}

	out, warnings, err := src.Render()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	fmt.Print(out)
	return nil
}
