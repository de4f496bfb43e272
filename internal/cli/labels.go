package cli

import (
	"github.com/spf13/cobra"
)

var labelConfidence float64

// labelsCmd represents the labels command
var labelsCmd = &cobra.Command{
	Use:   "labels <label...>",
	Short: "Classify labels produced by an image classifier",
	Long: `Labels maps condition names emitted by an external image classifier
(for example "skin infection" or "bruise") to an urgency tier.

Example:
  symptriage labels "skin infection" "swelling" --confidence 0.87`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().Float64Var(&labelConfidence, "confidence", 0, "confidence of the top label (informational)")
	labelsCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	labelsCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
}

func runLabels(cmd *cobra.Command, args []string) error {
	p := newPipeline()
	a := p.AssessLabels(args, labelConfidence)
	return writeAssessment(cmd.OutOrStdout(), p, a, outJSON, outMD)
}
