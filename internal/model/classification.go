package model

// MatchCounts holds the number of distinct taxonomy phrases found in an input
type MatchCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
}

// Matches lists the taxonomy phrases that were found, per set
type Matches struct {
	High   []string `json:"high,omitempty"`
	Medium []string `json:"medium,omitempty"`
}

// Guidance is the fixed message pair shown for a tier
type Guidance struct {
	Recommendation  string `json:"recommendation"`
	EducationalNote string `json:"educational_note"`
}

// Classification is the outcome of scoring one input against a taxonomy
type Classification struct {
	Tier RiskTier `json:"tier"`
	Guidance
	Counts  MatchCounts `json:"counts"`
	Matches Matches     `json:"matches"`
}

// Prediction is one ranked label emitted by an external image classifier
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}
