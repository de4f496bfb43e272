package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/ppiankov/symptriage/internal/model"
)

// DefaultTopK is how many ranked predictions are considered
const DefaultTopK = 3

// ErrNoPredictions is returned when a predictor yields nothing to map
var ErrNoPredictions = errors.New("no predictions")

// Predictor is the boundary to an external image classifier
type Predictor interface {
	Predict(ctx context.Context, r io.Reader) ([]model.Prediction, error)
}

// PredictionDecoder reads the ranked prediction list an external model wrote as JSON
type PredictionDecoder struct{}

// Predict decodes predictions and sorts them by descending confidence
func (PredictionDecoder) Predict(ctx context.Context, r io.Reader) ([]model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var preds []model.Prediction
	if err := json.NewDecoder(r).Decode(&preds); err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Confidence > preds[j].Confidence
	})
	return preds, nil
}

// ImageResult is a label classification plus the top prediction's confidence
type ImageResult struct {
	Classification model.Classification
	Confidence     float64
	Err            error
}

// ImageAssessor turns predictor output into a risk classification
type ImageAssessor struct {
	predictor Predictor
	mapper    *LabelMapper
	topK      int
	logger    *slog.Logger
}

// NewImageAssessor creates an assessor over the top DefaultTopK predictions
func NewImageAssessor(predictor Predictor, mapper *LabelMapper, logger *slog.Logger) *ImageAssessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageAssessor{
		predictor: predictor,
		mapper:    mapper,
		topK:      DefaultTopK,
		logger:    logger,
	}
}

// Assess never fails: predictor errors become an Unknown classification.
// The underlying error is kept on the result for logging.
func (a *ImageAssessor) Assess(ctx context.Context, r io.Reader) ImageResult {
	preds, err := a.predictor.Predict(ctx, r)
	if err == nil && len(preds) == 0 {
		err = ErrNoPredictions
	}
	if err != nil {
		a.logger.Warn("image analysis failed", "error", err)
		return ImageResult{Classification: a.mapper.Failed(), Err: err}
	}

	if len(preds) > a.topK {
		preds = preds[:a.topK]
	}
	labels := make([]string, len(preds))
	for i, p := range preds {
		labels[i] = p.Label
	}

	return ImageResult{
		Classification: a.mapper.Map(labels),
		Confidence:     preds[0].Confidence,
	}
}
