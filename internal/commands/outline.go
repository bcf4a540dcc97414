package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/musicionary/organice/render"
)

var outlineBareFlag bool

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "List the heading lines of a document",
	Long: `outline prints one line per heading: stars, TODO keyword, title and
tags. With --bare the leading stars are stripped, leaving flat titles.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().BoolVar(&outlineBareFlag, "bare", false,
		"Strip the leading stars")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	src, err := inputSerializer(args)
	if err != nil {
		return err
	}

	doc, warnings, err := src.Document()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	for _, h := range doc.Headers {
		fmt.Println(render.TitleLineText(h, !outlineBareFlag))
	}
	return nil
}
