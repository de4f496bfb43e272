package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	readStdin bool
	outJSON   string
	outMD     string
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify a symptom description into an urgency tier",
	Long: `Classify matches a free-text symptom description against the high- and
medium-risk phrase lists and prints the urgency tier with its guidance.

The description is never written to disk or logs.

Example:
  symptriage classify "chest pain and shortness of breath"
  echo "mild headache and sneezing" | symptriage classify --stdin
  symptriage classify "fever" --json report.json --md report.md
  symptriage classify "fever" -o json`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&readStdin, "stdin", false, "read the description from stdin")
	classifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	classifyCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if readStdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	p := newPipeline()
	a := p.AssessText(text)
	logger.Debug("classified", "id", a.ID, "tier", a.Tier)

	return writeAssessment(cmd.OutOrStdout(), p, a, outJSON, outMD)
}
