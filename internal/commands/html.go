package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/musicionary/organice/orghtml"
)

var (
	htmlFragmentFlag bool
	htmlTitleFlag    string
)

var htmlCmd = &cobra.Command{
	Use:   "html [file]",
	Short: "Export Org text as HTML",
	Long: `html parses the input and exports it as a standalone HTML document.
With --fragment only the document body markup is emitted, ready for
embedding in another page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHTML,
}

func init() {
	htmlCmd.Flags().BoolVar(&htmlFragmentFlag, "fragment", false,
		"Emit an HTML fragment instead of a full document")
	htmlCmd.Flags().StringVar(&htmlTitleFlag, "title", "",
		"Document title (defaults to the #+TITLE config value)")
	rootCmd.AddCommand(htmlCmd)
}

func runHTML(cmd *cobra.Command, args []string) error {
	src, err := inputSerializer(args)
	if err != nil {
		return err
	}

	doc, warnings, err := src.Document()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	config := orghtml.DocumentConfig()
	if htmlFragmentFlag {
		config = orghtml.DefaultConfig()
	}
	config.Title = htmlTitleFlag

	out, err := orghtml.NewExporterWithConfig(config).ExportString(doc)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
