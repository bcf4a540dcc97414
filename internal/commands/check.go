package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Verify the byte round trip",
	Long: `check parses the input, serializes it back and compares the bytes.
Exit status is 1 when the output diverges from the input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := inputSerializer(args)
	if err != nil {
		return err
	}

	ok, warnings, err := src.Check()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	if !ok {
		return fmt.Errorf("round trip diverged")
	}
	fmt.Println("ok")
	return nil
}
