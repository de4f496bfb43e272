package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/symptriage/internal/cache"
	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/score"
	"github.com/ppiankov/symptriage/internal/taxonomy"
)

// Pipeline wires the classifiers, the optional result cache and rendering
type Pipeline struct {
	classifier *score.Classifier
	labels     *score.LabelMapper
	images     *score.ImageAssessor
	symptoms   *taxonomy.Taxonomy
	cache      cache.Cache // nil when caching is disabled
	cacheTTL   time.Duration
	renderer   *Renderer
	logger     *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewPipeline creates a pipeline scoring text against symptoms
func NewPipeline(cfg *model.Config, symptoms *taxonomy.Taxonomy, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	labels := score.NewLabelMapper(taxonomy.Labels())

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Pipeline{
		classifier: score.NewClassifier(symptoms),
		labels:     labels,
		images:     score.NewImageAssessor(score.PredictionDecoder{}, labels, logger),
		symptoms:   symptoms,
		cache:      c,
		cacheTTL:   cfg.Cache.TTL,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Taxonomy returns the symptom taxonomy in use
func (p *Pipeline) Taxonomy() *taxonomy.Taxonomy {
	return p.symptoms
}

// Renderer returns the pipeline's report renderer
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// AssessText classifies a free-text symptom description
func (p *Pipeline) AssessText(text string) *model.Assessment {
	c := p.cached("text", text, func() model.Classification {
		return p.classifier.Classify(text)
	})
	p.logger.Debug("assessed text", "tier", c.Tier, "high", c.Counts.High, "medium", c.Counts.Medium)
	return p.wrap(model.SourceText, c)
}

// AssessLabels classifies labels emitted by an external image classifier
func (p *Pipeline) AssessLabels(labels []string, confidence float64) *model.Assessment {
	c := p.cached("labels", strings.Join(labels, "\x00"), func() model.Classification {
		return p.labels.Map(labels)
	})
	a := p.wrap(model.SourceLabels, c)
	a.Confidence = confidence
	return a
}

// AssessImage classifies a ranked prediction list read from r.
// Decoding failures yield an Unknown assessment, never an error.
func (p *Pipeline) AssessImage(ctx context.Context, r io.Reader) *model.Assessment {
	res := p.images.Assess(ctx, r)
	a := p.wrap(model.SourceImage, res.Classification)
	a.Confidence = res.Confidence
	return a
}

// RenderReport writes an assessment as JSON and/or Markdown and prints a summary to w
func (p *Pipeline) RenderReport(a *model.Assessment, jsonPath, mdPath string, w io.Writer) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(a, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		p.logger.Info("wrote JSON report", "path", jsonPath)
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(a, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		p.logger.Info("wrote Markdown report", "path", mdPath)
	}

	return p.renderer.RenderSummary(w, a)
}

func (p *Pipeline) wrap(source model.Source, c model.Classification) *model.Assessment {
	return &model.Assessment{
		ID:             p.newID(),
		Source:         source,
		AssessedAt:     p.now(),
		Classification: c,
		Disclaimer:     model.Disclaimer,
	}
}

// cached memoizes classify by a hash of input. Classification is pure, so a hit
// is indistinguishable from recomputing.
func (p *Pipeline) cached(namespace, input string, classify func() model.Classification) model.Classification {
	if p.cache == nil {
		return classify()
	}

	key := cache.Key(namespace, input)
	if data, ok := p.cache.Get(key); ok {
		var c model.Classification
		if err := json.Unmarshal(data, &c); err == nil {
			return c
		}
		_ = p.cache.Delete(key)
	}

	c := classify()
	data, err := json.Marshal(c)
	if err != nil {
		p.logger.Warn("cache encode failed", "error", err)
		return c
	}
	if err := p.cache.Set(key, data, p.cacheTTL); err != nil {
		p.logger.Warn("cache store failed", "error", err)
	}
	return c
}
