package main

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/api"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/export"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/pipeline"
)

var (
	processFromXLSX string
	processSheet    string
	processColumn   int
	processSkipRows int
)

var processCmd = &cobra.Command{
	Use:   "process [text...]",
	Short: "Process expense texts through one session and print the result",
	Long:  "Runs each argument, then each text read from --from-xlsx, through a single session and prints the last result with the session summary as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("cli"); err != nil {
			return err
		}

		texts := append([]string(nil), args...)
		if processFromXLSX != "" {
			more, err := export.ReadTexts(processFromXLSX, export.ReadOptions{
				SheetName: processSheet,
				Column:    processColumn,
				SkipRows:  processSkipRows,
			})
			if err != nil {
				return err
			}
			texts = append(texts, more...)
		}
		if len(texts) == 0 {
			return eris.New("process: no expense text given")
		}

		p, err := initPipeline(cfg, nil)
		if err != nil {
			return err
		}

		return processTexts(cmd.OutOrStdout(), p, texts)
	},
}

// processTexts runs texts through p in order and writes the last result
// with the final summary. Processing stops at the first failure.
func processTexts(w io.Writer, p *pipeline.Pipeline, texts []string) error {
	var resp api.ProcessResponse
	for _, text := range texts {
		res, err := p.Process(text)
		if err != nil {
			return eris.Wrapf(err, "process %q", text)
		}
		resp.Result = res
	}
	resp.Summary = p.Summary()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func init() {
	processCmd.Flags().StringVar(&processFromXLSX, "from-xlsx", "", "read expense texts from a workbook")
	processCmd.Flags().StringVar(&processSheet, "sheet", "", "sheet name (default first sheet)")
	processCmd.Flags().IntVar(&processColumn, "column", 0, "zero-based column holding the expense text")
	processCmd.Flags().IntVar(&processSkipRows, "skip-rows", 0, "number of header rows to skip")
	rootCmd.AddCommand(processCmd)
}
