package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/pipeline"
)

// writeAssessment writes optional report files, then prints a in the configured format
func writeAssessment(w io.Writer, p *pipeline.Pipeline, a *model.Assessment, jsonPath, mdPath string) error {
	r := p.Renderer()

	switch strings.ToLower(appCfg.Output.Format) {
	case "json":
		if err := writeFiles(p, a, jsonPath, mdPath); err != nil {
			return err
		}
		return r.WriteJSON(w, a)
	case "markdown", "md":
		if err := writeFiles(p, a, jsonPath, mdPath); err != nil {
			return err
		}
		_, err := io.WriteString(w, r.Markdown(a))
		return err
	default:
		return p.RenderReport(a, jsonPath, mdPath, w)
	}
}

func writeFiles(p *pipeline.Pipeline, a *model.Assessment, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.Renderer().RenderJSON(a, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if mdPath != "" {
		if err := p.Renderer().RenderMarkdown(a, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	return nil
}

// openInput opens path for reading; "-" means stdin
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
