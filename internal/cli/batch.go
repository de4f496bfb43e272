package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/pipeline"
	"github.com/ppiankov/symptriage/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify one symptom description per line, in parallel",
	Long: `Batch classifies every line of a file concurrently:
- One symptom description per line ("-" reads stdin)
- Empty lines and lines starting with # are skipped
- Results keep input order and carry their line numbers
- Per-tier totals are printed at the end

Example:
  symptriage batch cases.txt
  symptriage batch cases.txt --concurrency 8 --json batch.json --md batch.md`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	batchCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	workers := concurrency
	if workers <= 0 {
		workers = appCfg.Concurrency.Workers
	}

	logger.Info("batch started", "input", file, "workers", workers)

	in, err := openInput(file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	p := newPipeline()
	processor := worker.NewBatchProcessor(p, workers)

	report, err := processor.ProcessReader(ctx, in, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	for _, f := range report.Failures {
		logger.Warn("line failed", "line", f.Line, "error", f.Error)
	}
	logger.Info("batch complete", "assessed", len(report.Assessments), "failed", len(report.Failures))

	return writeBatch(cmd.OutOrStdout(), p, report)
}

func writeBatch(w io.Writer, p *pipeline.Pipeline, report *model.BatchReport) error {
	r := p.Renderer()

	if outJSON != "" {
		if err := r.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if outMD != "" {
		if err := r.RenderBatchMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}

	switch strings.ToLower(appCfg.Output.Format) {
	case "json":
		return r.WriteJSON(w, report)
	case "markdown", "md":
		_, err := io.WriteString(w, r.BatchMarkdown(report))
		return err
	default:
		return r.RenderBatchSummary(w, report)
	}
}
