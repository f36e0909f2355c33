package services

import (
	"sort"

	"receipt-tracker/internal/models"

	"github.com/agnivade/levenshtein"
)

const (
	DefaultSuggestionLimit = 5
	// MinSuggestionSimilarity drops candidates that share too little with the query.
	MinSuggestionSimilarity = 0.6
)

// rankSuggestions orders mappings by edit distance to the normalized merchant
// name, keeping those at least MinSuggestionSimilarity similar. An exact
// match is excluded since it would be applied directly.
func rankSuggestions(normalized string, mappings []*models.MerchantMapping, limit int) []*models.MerchantSuggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	suggestions := make([]*models.MerchantSuggestion, 0, len(mappings))
	for _, mapping := range mappings {
		if mapping.NormalizedMerchantName == normalized {
			continue
		}

		distance := levenshtein.ComputeDistance(normalized, mapping.NormalizedMerchantName)
		similarity := similarityScore(normalized, mapping.NormalizedMerchantName, distance)
		if similarity < MinSuggestionSimilarity {
			continue
		}

		suggestions = append(suggestions, &models.MerchantSuggestion{
			Mapping:    mapping,
			Distance:   distance,
			Similarity: similarity,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Mapping.NormalizedMerchantName < suggestions[j].Mapping.NormalizedMerchantName
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func similarityScore(a, b string, distance int) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(longest)
}
