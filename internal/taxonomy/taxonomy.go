package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPhrase is returned when a phrase is empty after trimming
var ErrEmptyPhrase = errors.New("empty taxonomy phrase")

// Taxonomy is the read-only pair of phrase sets used for substring matching.
// Phrases are stored lowercase; overlapping phrases are kept as-is.
type Taxonomy struct {
	high   []string
	medium []string
}

// New creates a Taxonomy, lowercasing every phrase once
func New(high, medium []string) (*Taxonomy, error) {
	h, err := normalize(high)
	if err != nil {
		return nil, fmt.Errorf("high-risk: %w", err)
	}
	m, err := normalize(medium)
	if err != nil {
		return nil, fmt.Errorf("medium-risk: %w", err)
	}
	return &Taxonomy{high: h, medium: m}, nil
}

// HighRisk returns a copy of the high-risk phrases
func (t *Taxonomy) HighRisk() []string {
	return append([]string(nil), t.high...)
}

// MediumRisk returns a copy of the medium-risk phrases
func (t *Taxonomy) MediumRisk() []string {
	return append([]string(nil), t.medium...)
}

// Len returns the total number of phrases in both sets
func (t *Taxonomy) Len() int {
	return len(t.high) + len(t.medium)
}

// WithMedium returns a new Taxonomy whose medium-risk set has extra appended.
// The receiver is left untouched.
func (t *Taxonomy) WithMedium(extra []string) (*Taxonomy, error) {
	m, err := normalize(extra)
	if err != nil {
		return nil, fmt.Errorf("medium-risk: %w", err)
	}
	medium := make([]string, 0, len(t.medium)+len(m))
	medium = append(append(medium, t.medium...), m...)
	return &Taxonomy{high: t.HighRisk(), medium: medium}, nil
}

// Match returns the distinct phrases of each set found in already-lowercased text
func (t *Taxonomy) Match(lowered string) (high, medium []string) {
	return matchAll(t.high, lowered), matchAll(t.medium, lowered)
}

// matchAll counts a phrase once even if enrichment listed it twice
func matchAll(phrases []string, text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, p := range phrases {
		if seen[p] || !strings.Contains(text, p) {
			continue
		}
		seen[p] = true
		found = append(found, p)
	}
	return found
}

func normalize(phrases []string) ([]string, error) {
	out := make([]string, 0, len(phrases))
	for i, p := range phrases {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("phrase %d: %w", i, ErrEmptyPhrase)
		}
		out = append(out, strings.ToLower(p))
	}
	return out, nil
}
