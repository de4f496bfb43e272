package score

import "github.com/ppiankov/symptriage/internal/model"

// Variant selects between message wordings that share a tier
type Variant int

const (
	VariantStandard Variant = iota
	VariantMultiple         // Several matches of the deciding set
	VariantPrompt           // Blank input
)

type catalogKey struct {
	tier    model.RiskTier
	variant Variant
}

// Catalog maps a tier and variant to its fixed guidance
type Catalog struct {
	entries map[catalogKey]model.Guidance
}

// Lookup returns the guidance for tier/variant, falling back to the standard variant
func (c Catalog) Lookup(tier model.RiskTier, variant Variant) model.Guidance {
	if g, ok := c.entries[catalogKey{tier, variant}]; ok {
		return g
	}
	return c.entries[catalogKey{tier, VariantStandard}]
}

var promptGuidance = model.Guidance{
	Recommendation:  "Please describe your symptoms for analysis.",
	EducationalNote: "Enter detailed symptoms for a better assessment.",
}

// SymptomCatalog returns the guidance used for free-text symptom scoring
func SymptomCatalog() Catalog {
	return Catalog{entries: map[catalogKey]model.Guidance{
		{model.TierLow, VariantPrompt}: promptGuidance,
		{model.TierHigh, VariantMultiple}: {
			Recommendation:  "Seek medical attention as soon as possible. Multiple high-risk symptoms detected. This may indicate a serious condition requiring immediate care.",
			EducationalNote: "Multiple high-risk symptoms often indicate serious conditions. Don't delay seeking professional medical help. In emergencies, call emergency services immediately.",
		},
		{model.TierHigh, VariantStandard}: {
			Recommendation:  "Seek medical attention as soon as possible. These symptoms may indicate a serious condition that requires immediate care.",
			EducationalNote: "High-risk symptoms often require prompt medical evaluation. Don't delay seeking professional help.",
		},
		{model.TierMedium, VariantMultiple}: {
			Recommendation:  "Monitor your symptoms closely. Consider visiting a clinic within 24-48 hours if symptoms persist or worsen. Rest and stay hydrated.",
			EducationalNote: "Multiple symptoms that persist may require medical attention. Rest, stay hydrated, and monitor your condition. If symptoms don't improve, seek medical advice.",
		},
		{model.TierMedium, VariantStandard}: {
			Recommendation:  "Monitor your symptoms closely. Consider visiting a clinic within 24-48 hours if symptoms persist or worsen.",
			EducationalNote: "Rest, stay hydrated, and monitor your condition. If symptoms don't improve, seek medical advice.",
		},
		{model.TierLowMedium, VariantStandard}: {
			Recommendation:  "Monitor symptoms and rest. Visit a clinic if symptoms worsen or persist for more than a few days.",
			EducationalNote: "Many symptoms resolve on their own with rest and hydration. Keep track of any changes.",
		},
		{model.TierLow, VariantStandard}: {
			Recommendation:  "Continue monitoring. Maintain good hygiene, stay hydrated, and rest. Consult a healthcare professional if symptoms persist.",
			EducationalNote: "General wellness practices can help. If symptoms persist or concern you, don't hesitate to seek medical advice.",
		},
	}}
}

// LabelCatalog returns the guidance used for image classifier labels
func LabelCatalog() Catalog {
	return Catalog{entries: map[catalogKey]model.Guidance{
		{model.TierHigh, VariantStandard}: {
			Recommendation:  "Visit a healthcare provider as soon as possible. This may require immediate medical attention.",
			EducationalNote: "Skin infections and rashes can indicate various conditions. Early medical intervention is important.",
		},
		{model.TierMedium, VariantStandard}: {
			Recommendation:  "Monitor the condition closely. Consider visiting a clinic within 24-48 hours if it worsens.",
			EducationalNote: "Keep the area clean and avoid scratching. Watch for signs of infection like increased redness or pus.",
		},
		{model.TierLow, VariantStandard}: {
			Recommendation:  "Monitor your symptoms and stay alert for changes. Maintain good hygiene.",
			EducationalNote: "Continue monitoring. If symptoms persist or worsen, consult a healthcare professional.",
		},
		{model.TierUnknown, VariantStandard}: {
			Recommendation:  "Please try again or consult a healthcare professional directly.",
			EducationalNote: "An error occurred during image analysis.",
		},
	}}
}
