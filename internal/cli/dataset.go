package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/symptriage/internal/extract"
	"github.com/ppiankov/symptriage/internal/taxonomy"
)

var datasetOut string

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build enrichment documents from disease/symptom datasets",
}

var datasetBuildCmd = &cobra.Command{
	Use:   "build <csv>",
	Short: "Extract symptom phrases from a CSV into an enrichment document",
	Long: `Build reads a disease/symptom CSV (for example the public Kaggle
disease-symptom dataset), collects the distinct symptoms and diseases, and
writes an enrichment document. The output is YAML when the path ends in
.yaml or .yml, JSON otherwise.

Example:
  symptriage dataset build dataset.csv
  symptriage dataset build dataset.csv --out data/enhanced_symptoms.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDatasetBuild,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetBuildCmd)

	datasetBuildCmd.Flags().StringVar(&datasetOut, "out", "", "output path (default: taxonomy.enrichment_path)")
}

func runDatasetBuild(cmd *cobra.Command, args []string) error {
	out := datasetOut
	if out == "" {
		out = appCfg.Taxonomy.EnrichmentPath
	}

	doc, err := extract.NewSymptomExtractor().ExtractFile(args[0])
	if err != nil {
		return fmt.Errorf("extract %s: %w", args[0], err)
	}

	if err := taxonomy.WriteDocument(out, doc); err != nil {
		return fmt.Errorf("write enrichment: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "✓ Wrote %s\n", out)
	fmt.Fprintf(w, "  - %d rows read\n", doc.TotalRows)
	fmt.Fprintf(w, "  - %d unique symptoms\n", len(doc.Symptoms))
	fmt.Fprintf(w, "  - %d diseases\n", len(doc.HighRiskDiseases))
	return nil
}
