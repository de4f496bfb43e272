package model

import "time"

// Source identifies which input path produced an assessment
type Source string

const (
	SourceText   Source = "text"   // Free-text symptom description
	SourceLabels Source = "labels" // Labels supplied by an image classifier
	SourceImage  Source = "image"  // Raw prediction output of an image classifier
)

// Disclaimer is attached to every rendered assessment
const Disclaimer = "This tool does not provide medical diagnoses. It is a screening aid only; " +
	"always consult a qualified healthcare professional. In an emergency, call emergency services immediately."

// Assessment wraps a classification for output. The input itself is never retained.
type Assessment struct {
	ID         string    `json:"id"`
	Source     Source    `json:"source"`
	Line       int       `json:"line,omitempty"`       // 1-based line number for batch input
	Confidence float64   `json:"confidence,omitempty"` // Top prediction confidence (image path only)
	AssessedAt time.Time `json:"assessed_at"`
	Classification
	Disclaimer string `json:"disclaimer"`
}

// BatchReport aggregates the assessments of one batch run
type BatchReport struct {
	Input       string           `json:"input"`
	GeneratedAt time.Time        `json:"generated_at"`
	Assessments []*Assessment    `json:"assessments"`
	Totals      map[RiskTier]int `json:"totals"`
	Failures    []BatchFailure   `json:"failures,omitempty"`
}

// BatchFailure records a line that could not be assessed
type BatchFailure struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// Tally recomputes Totals from Assessments
func (r *BatchReport) Tally() {
	r.Totals = make(map[RiskTier]int, len(Tiers))
	for _, a := range r.Assessments {
		r.Totals[a.Tier]++
	}
}
