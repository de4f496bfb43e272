package score

import (
	"strings"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/taxonomy"
)

// LabelMapper maps image classifier labels to a risk tier.
// It reuses the symptom matching pattern with its own taxonomy and a two-tier table.
type LabelMapper struct {
	taxonomy *taxonomy.Taxonomy
	catalog  Catalog
}

// NewLabelMapper creates a mapper over tax (typically taxonomy.Labels())
func NewLabelMapper(tax *taxonomy.Taxonomy) *LabelMapper {
	return &LabelMapper{
		taxonomy: tax,
		catalog:  LabelCatalog(),
	}
}

// Map classifies the joined labels. No labels yields Low.
func (m *LabelMapper) Map(labels []string) model.Classification {
	result := match(m.taxonomy, strings.ToLower(strings.Join(labels, " ")))
	tier, variant := decide(labelRules, result.Counts)
	result.Tier = tier
	result.Guidance = m.catalog.Lookup(tier, variant)
	return result
}

// Failed returns the Unknown classification reported when upstream analysis fails
func (m *LabelMapper) Failed() model.Classification {
	return model.Classification{
		Tier:     model.TierUnknown,
		Guidance: m.catalog.Lookup(model.TierUnknown, VariantStandard),
	}
}
