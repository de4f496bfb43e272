package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/symptriage/internal/taxonomy"
)

type phraseSet struct {
	HighRisk   []string `yaml:"high_risk" json:"high_risk"`
	MediumRisk []string `yaml:"medium_risk" json:"medium_risk"`
}

type taxonomyView struct {
	Symptoms phraseSet `yaml:"symptoms" json:"symptoms"`
	Labels   phraseSet `yaml:"labels" json:"labels"`
}

// taxonomyCmd represents the taxonomy command
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect the risk phrase lists",
}

var taxonomyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective symptom and label phrase lists",
	Long: `Show prints the symptom phrase lists in effect (built-in plus any
enrichment) and the image label lists, as YAML (or JSON with -o json).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPipeline()
		symptoms := p.Taxonomy()
		labels := taxonomy.Labels()

		view := taxonomyView{
			Symptoms: phraseSet{HighRisk: symptoms.HighRisk(), MediumRisk: symptoms.MediumRisk()},
			Labels:   phraseSet{HighRisk: labels.HighRisk(), MediumRisk: labels.MediumRisk()},
		}

		if appCfg.Output.Format == "json" {
			return p.Renderer().WriteJSON(cmd.OutOrStdout(), view)
		}

		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshal taxonomy: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
	taxonomyCmd.AddCommand(taxonomyShowCmd)
}
