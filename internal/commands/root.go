// Package commands provides CLI commands for the org tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/musicionary/organice"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "org",
	Short: "Lossless Org mode tooling",
	Long: `org parses, checks and serializes Org mode documents without losing
a byte: for any newline-terminated file, formatting reproduces the file
exactly.

Examples:
  org format notes.org          Normalize a file to canonical Org
  org check notes.org           Verify the byte round trip
  org html notes.org            Export a file as HTML
  org outline --bare notes.org  List heading titles without stars
  cat notes.org | org format    Read from stdin`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// inputSerializer builds a Serializer from the file argument, or from
// stdin when no argument is given and stdin is piped.
func inputSerializer(args []string) (*organice.Serializer, error) {
	if len(args) > 0 {
		return organice.Open(args[0]), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return organice.FromReader(os.Stdin), nil
	}

	return nil, fmt.Errorf("no input: pass a file or pipe Org text on stdin")
}

// printWarnings reports warnings on stderr so they never mix with the
// serialized output on stdout.
func printWarnings(warnings []organice.Warning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
}
