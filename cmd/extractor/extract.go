package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/extract"
)

var (
	extractModel string
	extractFull  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdf-path]",
	Short: "Extract structured data from a PDF",
	Long: `Extract structured data from a PDF document.

The document type is determined from keywords in the filename (for
example "I129_case.pdf" selects the H-1B petition template), the pages
are rendered and sent to the vision model, and the filled-in template
is printed as JSON. Use --full to include the result metadata
(document type, model, request ID, token counts).

When no path is given, the command prompts for one.

Examples:
  extractor extract resume.pdf
  extractor extract passport_scan.pdf --model gpt-4o
  extractor extract --full I129_case.pdf
  extractor extract -o yaml transcript.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pdfPath := ""
		if len(args) > 0 {
			pdfPath = args[0]
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "Enter path to PDF: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read path: %w", err)
			}
			pdfPath = strings.TrimSpace(line)
		}
		if pdfPath == "" {
			return fmt.Errorf("no PDF path provided")
		}
		if _, err := os.Stat(pdfPath); err != nil {
			return fmt.Errorf("cannot read %s: %w", pdfPath, err)
		}

		mgr, err := loadConfig()
		if err != nil {
			return err
		}

		pipeline, err := buildPipeline(mgr.Get(), newLogger())
		if err != nil {
			return err
		}

		result, err := pipeline.RunWithModel(ctx, pdfPath, extractModel)
		if err != nil {
			return err
		}

		out, err := extractOutput(result, extractFull)
		if err != nil {
			return err
		}
		return api.Output(out)
	},
}

// extractOutput chooses what the extract command prints: the extracted
// fields themselves, or the full result envelope with --full.
func extractOutput(result *extract.Result, full bool) (any, error) {
	if full {
		return result, nil
	}
	var fields any
	if err := json.Unmarshal(result.Fields, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode extracted fields: %w", err)
	}
	return fields, nil
}

func init() {
	extractCmd.Flags().StringVar(&extractModel, "model", "", "model alias (default: from config)")
	extractCmd.Flags().BoolVar(&extractFull, "full", false, "print the full result envelope with metadata")

	rootCmd.AddCommand(extractCmd)
}
