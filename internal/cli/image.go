package cli

import (
	"github.com/spf13/cobra"
)

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image <predictions.json>",
	Short: "Classify the ranked output of an image classifier",
	Long: `Image reads a JSON list of {"label", "confidence"} predictions produced by
an external image classifier, keeps the top three and maps them to an
urgency tier. Unreadable predictions yield an Unknown tier, not an error.

Example:
  symptriage image predictions.json
  classifier photo.jpg | symptriage image -`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	imageCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
}

func runImage(cmd *cobra.Command, args []string) error {
	in, err := openInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	p := newPipeline()
	a := p.AssessImage(cmd.Context(), in)
	return writeAssessment(cmd.OutOrStdout(), p, a, outJSON, outMD)
}
