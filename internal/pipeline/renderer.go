package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/symptriage/internal/model"
)

// Renderer formats assessments as JSON, Markdown or a terminal summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer; includeFooter appends a generator line to Markdown output
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// WriteJSON writes v as indented JSON
func (r *Renderer) WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderJSON writes v as indented JSON to path
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(data, '\n'))
}

// RenderMarkdown writes a single assessment as Markdown to path
func (r *Renderer) RenderMarkdown(a *model.Assessment, path string) error {
	return writeFile(path, []byte(r.Markdown(a)))
}

// RenderBatchMarkdown writes a batch report as Markdown to path
func (r *Renderer) RenderBatchMarkdown(report *model.BatchReport, path string) error {
	return writeFile(path, []byte(r.BatchMarkdown(report)))
}

// Markdown renders a single assessment
func (r *Renderer) Markdown(a *model.Assessment) string {
	var b strings.Builder

	b.WriteString("# Symptom Risk Assessment\n\n")
	fmt.Fprintf(&b, "- **Risk level:** %s\n", a.Tier)
	fmt.Fprintf(&b, "- **Source:** %s\n", a.Source)
	if a.Confidence > 0 {
		fmt.Fprintf(&b, "- **Confidence:** %.1f%%\n", a.Confidence*100)
	}
	fmt.Fprintf(&b, "- **Assessed:** %s\n\n", a.AssessedAt.Format(time.RFC3339))

	b.WriteString("## Recommendation\n\n")
	b.WriteString(a.Recommendation + "\n\n")
	b.WriteString("## Note\n\n")
	b.WriteString(a.EducationalNote + "\n\n")

	if len(a.Matches.High) > 0 || len(a.Matches.Medium) > 0 {
		b.WriteString("## Matched Symptoms\n\n")
		writeMatches(&b, "High-risk", a.Matches.High)
		writeMatches(&b, "Medium-risk", a.Matches.Medium)
		b.WriteString("\n")
	}

	r.writeFooter(&b)
	return b.String()
}

// BatchMarkdown renders a batch report with a totals table and one row per line
func (r *Renderer) BatchMarkdown(report *model.BatchReport) string {
	var b strings.Builder

	b.WriteString("# Batch Symptom Risk Assessment\n\n")
	if report.Input != "" {
		fmt.Fprintf(&b, "- **Input:** %s\n", report.Input)
	}
	fmt.Fprintf(&b, "- **Generated:** %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Assessed:** %d\n", len(report.Assessments))
	if len(report.Failures) > 0 {
		fmt.Fprintf(&b, "- **Failed:** %d\n", len(report.Failures))
	}
	b.WriteString("\n## Totals\n\n")
	b.WriteString("| Risk level | Count |\n|---|---|\n")
	for i := len(model.Tiers) - 1; i >= 0; i-- {
		tier := model.Tiers[i]
		fmt.Fprintf(&b, "| %s | %d |\n", tier, report.Totals[tier])
	}

	if len(report.Assessments) > 0 {
		b.WriteString("\n## Assessments\n\n")
		b.WriteString("| Line | Risk level | High | Medium | Recommendation |\n|---|---|---|---|---|\n")
		for _, a := range report.Assessments {
			fmt.Fprintf(&b, "| %d | %s | %d | %d | %s |\n",
				a.Line, a.Tier, a.Counts.High, a.Counts.Medium, escapeCell(a.Recommendation))
		}
	}

	if len(report.Failures) > 0 {
		b.WriteString("\n## Failures\n\n")
		for _, f := range report.Failures {
			fmt.Fprintf(&b, "- line %d: %s\n", f.Line, f.Error)
		}
	}

	b.WriteString("\n")
	r.writeFooter(&b)
	return b.String()
}

// RenderSummary prints a short human-readable summary
func (r *Renderer) RenderSummary(w io.Writer, a *model.Assessment) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Risk level:     %s\n", a.Tier)
	if a.Confidence > 0 {
		fmt.Fprintf(&b, "Confidence:     %.1f%%\n", a.Confidence*100)
	}
	fmt.Fprintf(&b, "Recommendation: %s\n", a.Recommendation)
	fmt.Fprintf(&b, "Note:           %s\n", a.EducationalNote)
	if a.Counts.High+a.Counts.Medium > 0 {
		fmt.Fprintf(&b, "Matched:        %d high-risk, %d medium-risk\n", a.Counts.High, a.Counts.Medium)
	}
	fmt.Fprintf(&b, "\n%s\n", a.Disclaimer)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderBatchSummary prints per-tier totals for a batch
func (r *Renderer) RenderBatchSummary(w io.Writer, report *model.BatchReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Assessed %d line(s)", len(report.Assessments))
	if len(report.Failures) > 0 {
		fmt.Fprintf(&b, ", %d failed", len(report.Failures))
	}
	b.WriteString("\n")
	for i := len(model.Tiers) - 1; i >= 0; i-- {
		tier := model.Tiers[i]
		fmt.Fprintf(&b, "  %-11s %d\n", tier.String()+":", report.Totals[tier])
	}
	fmt.Fprintf(&b, "\n%s\n", model.Disclaimer)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) writeFooter(b *strings.Builder) {
	b.WriteString("---\n\n")
	b.WriteString("> " + model.Disclaimer + "\n")
	if r.includeFooter {
		b.WriteString("\n*Generated by symptriage*\n")
	}
}

func writeMatches(b *strings.Builder, label string, phrases []string) {
	if len(phrases) == 0 {
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, strings.Join(phrases, ", "))
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
