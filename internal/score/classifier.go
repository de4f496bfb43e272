package score

import (
	"strings"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/taxonomy"
)

// rule is one row of a decision table; the first matching row wins
type rule struct {
	when    func(model.MatchCounts) bool
	tier    model.RiskTier
	variant Variant
}

// symptomRules is the canonical decision table for free-text symptoms.
// Any high-risk phrase decides High on its own; medium-risk phrases must accumulate.
var symptomRules = []rule{
	{func(c model.MatchCounts) bool { return c.High >= 2 }, model.TierHigh, VariantMultiple},
	{func(c model.MatchCounts) bool { return c.High == 1 }, model.TierHigh, VariantStandard},
	{func(c model.MatchCounts) bool { return c.Medium >= 3 }, model.TierMedium, VariantMultiple},
	{func(c model.MatchCounts) bool { return c.Medium == 2 }, model.TierMedium, VariantStandard},
	{func(c model.MatchCounts) bool { return c.Medium == 1 }, model.TierLowMedium, VariantStandard},
}

// labelRules is the two-tier table used for image classifier labels
var labelRules = []rule{
	{func(c model.MatchCounts) bool { return c.High > 0 }, model.TierHigh, VariantStandard},
	{func(c model.MatchCounts) bool { return c.Medium > 0 }, model.TierMedium, VariantStandard},
}

func decide(rules []rule, counts model.MatchCounts) (model.RiskTier, Variant) {
	for _, r := range rules {
		if r.when(counts) {
			return r.tier, r.variant
		}
	}
	return model.TierLow, VariantStandard
}

// Classifier scores free-text symptom descriptions against a taxonomy.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	taxonomy *taxonomy.Taxonomy
	catalog  Catalog
}

// NewClassifier creates a classifier over tax
func NewClassifier(tax *taxonomy.Taxonomy) *Classifier {
	return &Classifier{
		taxonomy: tax,
		catalog:  SymptomCatalog(),
	}
}

// Classify returns the risk tier and guidance for text
func (c *Classifier) Classify(text string) model.Classification {
	if strings.TrimSpace(text) == "" {
		return model.Classification{
			Tier:     model.TierLow,
			Guidance: c.catalog.Lookup(model.TierLow, VariantPrompt),
		}
	}

	result := match(c.taxonomy, strings.ToLower(text))
	tier, variant := decide(symptomRules, result.Counts)
	result.Tier = tier
	result.Guidance = c.catalog.Lookup(tier, variant)
	return result
}

// Count returns the distinct phrase counts for text without deciding a tier
func (c *Classifier) Count(text string) model.MatchCounts {
	return match(c.taxonomy, strings.ToLower(text)).Counts
}

func match(tax *taxonomy.Taxonomy, lowered string) model.Classification {
	high, medium := tax.Match(lowered)
	return model.Classification{
		Counts:  model.MatchCounts{High: len(high), Medium: len(medium)},
		Matches: model.Matches{High: high, Medium: medium},
	}
}
