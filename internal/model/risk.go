package model

import (
	"fmt"
	"strings"
)

// RiskTier is the ordinal triage category assigned to an input
type RiskTier int

const (
	TierUnknown   RiskTier = iota // Upstream failure (image analysis errors); never produced by text scoring
	TierLow                       // Nothing alarming matched
	TierLowMedium                 // A single vague symptom
	TierMedium                    // Several medium-risk symptoms together
	TierHigh                      // At least one high-risk symptom
)

// Tiers lists the classifiable tiers from lowest to highest urgency
var Tiers = []RiskTier{TierLow, TierLowMedium, TierMedium, TierHigh}

func (t RiskTier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierLowMedium:
		return "Low-Medium"
	case TierMedium:
		return "Medium"
	case TierHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Rank orders tiers by urgency. Unknown ranks below Low.
func (t RiskTier) Rank() int {
	if t < TierUnknown || t > TierHigh {
		return 0
	}
	return int(t)
}

// ParseRiskTier is the inverse of String. Matching ignores case, spaces and dashes.
func ParseRiskTier(s string) (RiskTier, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "low":
		return TierLow, nil
	case "lowmedium":
		return TierLowMedium, nil
	case "medium":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	case "unknown":
		return TierUnknown, nil
	default:
		return TierUnknown, fmt.Errorf("unknown risk tier: %q", s)
	}
}

// MarshalText encodes the tier by its display name
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a display name produced by MarshalText
func (t *RiskTier) UnmarshalText(b []byte) error {
	parsed, err := ParseRiskTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
