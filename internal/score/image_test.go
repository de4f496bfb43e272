package score

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	preds []model.Prediction
	err   error
}

func (s stubPredictor) Predict(ctx context.Context, r io.Reader) ([]model.Prediction, error) {
	return s.preds, s.err
}

func newAssessor(p Predictor) *ImageAssessor {
	return NewImageAssessor(p, NewLabelMapper(taxonomy.Labels()), nil)
}

func TestImageAssessor_UsesTopThree(t *testing.T) {
	a := newAssessor(stubPredictor{preds: []model.Prediction{
		{Label: "bandage", Confidence: 0.61},
		{Label: "bruise", Confidence: 0.2},
		{Label: "lotion", Confidence: 0.1},
		{Label: "abscess", Confidence: 0.05},
	}})

	got := a.Assess(context.Background(), strings.NewReader(""))

	require.NoError(t, got.Err)
	assert.Equal(t, model.TierMedium, got.Classification.Tier)
	assert.InDelta(t, 0.61, got.Confidence, 1e-9)
}

func TestImageAssessor_ErrorBecomesUnknown(t *testing.T) {
	a := newAssessor(stubPredictor{err: errors.New("model not loaded")})

	got := a.Assess(context.Background(), strings.NewReader(""))

	assert.Error(t, got.Err)
	assert.Equal(t, model.TierUnknown, got.Classification.Tier)
	assert.Zero(t, got.Confidence)
}

func TestImageAssessor_EmptyPredictionsBecomeUnknown(t *testing.T) {
	got := newAssessor(stubPredictor{}).Assess(context.Background(), strings.NewReader(""))

	assert.ErrorIs(t, got.Err, ErrNoPredictions)
	assert.Equal(t, model.TierUnknown, got.Classification.Tier)
}

func TestPredictionDecoder(t *testing.T) {
	a := newAssessor(PredictionDecoder{})
	input := `[
		{"label": "lotion", "confidence": 0.12},
		{"label": "eczema", "confidence": 0.55},
		{"label": "sunscreen", "confidence": 0.08}
	]`

	got := a.Assess(context.Background(), strings.NewReader(input))

	require.NoError(t, got.Err)
	assert.Equal(t, model.TierHigh, got.Classification.Tier)
	assert.InDelta(t, 0.55, got.Confidence, 1e-9)
}

func TestPredictionDecoder_Malformed(t *testing.T) {
	got := newAssessor(PredictionDecoder{}).Assess(context.Background(), strings.NewReader(`{"label":`))

	assert.Error(t, got.Err)
	assert.Equal(t, model.TierUnknown, got.Classification.Tier)
}

func TestPredictionDecoder_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PredictionDecoder{}.Predict(ctx, strings.NewReader(`[]`))
	assert.ErrorIs(t, err, context.Canceled)
}
