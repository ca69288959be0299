// Package render turns assessment results into terminal output.
package render

import "github.com/Adel13Lis/infs3208-routegate/internal/models"

// Category is the visual treatment family of a recommendation
type Category int

const (
	CategoryNeutral Category = iota
	CategoryAffirmative
	CategoryWarning
	CategoryNegative
)

func (c Category) String() string {
	switch c {
	case CategoryAffirmative:
		return "affirmative"
	case CategoryWarning:
		return "warning"
	case CategoryNegative:
		return "negative"
	default:
		return "neutral"
	}
}

const (
	IconOK         = "✔"
	IconReschedule = "⚠"
	IconCancel     = "✘"
)

// Treatment describes how a recommendation is presented.
// Callout means the reason goes in a separate warning block instead of the assessment line.
type Treatment struct {
	Category Category
	Icon     string
	Callout  bool
}

// Classify maps a recommendation to its treatment. Unknown values get the
// neutral treatment and are shown as-is.
func Classify(rec models.Recommendation) Treatment {
	switch rec {
	case models.RecommendationOK:
		return Treatment{Category: CategoryAffirmative, Icon: IconOK}
	case models.RecommendationReschedule:
		return Treatment{Category: CategoryWarning, Icon: IconReschedule, Callout: true}
	case models.RecommendationCancel:
		return Treatment{Category: CategoryNegative, Icon: IconCancel}
	default:
		return Treatment{Category: CategoryNeutral}
	}
}

// Severity orders recommendations for visual weight: OK < RESCHEDULE < CANCEL.
// Unknown values rank 0.
func Severity(rec models.Recommendation) int {
	switch rec {
	case models.RecommendationOK:
		return 1
	case models.RecommendationReschedule:
		return 2
	case models.RecommendationCancel:
		return 3
	default:
		return 0
	}
}

// Badge returns the icon-prefixed recommendation text
func Badge(rec models.Recommendation) string {
	t := Classify(rec)
	if t.Icon == "" {
		return string(rec)
	}
	return t.Icon + " " + string(rec)
}
