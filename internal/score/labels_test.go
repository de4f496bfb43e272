package score

import (
	"testing"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestLabelMapper_Map(t *testing.T) {
	m := NewLabelMapper(taxonomy.Labels())
	catalog := LabelCatalog()

	tests := []struct {
		name   string
		labels []string
		tier   model.RiskTier
	}{
		{name: "high-risk label", labels: []string{"Band_Aid", "skin_lesion", "lotion"}, tier: model.TierHigh},
		{name: "medium-risk label", labels: []string{"bruise", "bandage"}, tier: model.TierMedium},
		{name: "high beats medium", labels: []string{"scratch", "eczema"}, tier: model.TierHigh},
		{name: "substring inside label", labels: []string{"cutlery"}, tier: model.TierMedium},
		{name: "nothing relevant", labels: []string{"golden_retriever", "tennis_ball"}, tier: model.TierLow},
		{name: "no labels", labels: nil, tier: model.TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Map(tt.labels)
			assert.Equal(t, tt.tier, got.Tier)
			assert.Equal(t, catalog.Lookup(tt.tier, VariantStandard), got.Guidance)
		})
	}
}

func TestLabelMapper_NoLowMediumTier(t *testing.T) {
	m := NewLabelMapper(taxonomy.Labels())
	got := m.Map([]string{"sore"})

	assert.Equal(t, model.TierMedium, got.Tier)
	assert.Equal(t, 1, got.Counts.Medium)
}

func TestLabelMapper_Failed(t *testing.T) {
	got := NewLabelMapper(taxonomy.Labels()).Failed()

	assert.Equal(t, model.TierUnknown, got.Tier)
	assert.Equal(t, "Please try again or consult a healthcare professional directly.", got.Recommendation)
	assert.Equal(t, "An error occurred during image analysis.", got.EducationalNote)
}
