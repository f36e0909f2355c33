package services

import (
	"fmt"

	"receipt-tracker/internal/models"
)

const (
	// DefaultConfidenceBoost is added to the AI confidence when a learned
	// mapping overrides its answer. It is a tuning knob, not a derived value.
	DefaultConfidenceBoost = 15
	MaxConfidence          = 100
)

// CategorizationMerger overrides an AI categorization with a tenant's learned
// merchant mapping.
type CategorizationMerger struct {
	ConfidenceBoost int
}

func NewCategorizationMerger(confidenceBoost int) *CategorizationMerger {
	if confidenceBoost < 0 {
		confidenceBoost = DefaultConfidenceBoost
	}
	return &CategorizationMerger{ConfidenceBoost: confidenceBoost}
}

// ApplyMapping merges with the default confidence boost.
func ApplyMapping(receipt models.ReceiptCategorization, mapping *models.MerchantMapping) models.ReceiptCategorization {
	return CategorizationMerger{ConfidenceBoost: DefaultConfidenceBoost}.Apply(receipt, mapping)
}

// Apply returns receipt unchanged when mapping is nil. Otherwise the mapping's
// category and subcategory replace the AI's (a nil subcategory clears it), the
// confidence is boosted up to MaxConfidence, and the explanation records both
// the AI suggestion and the correction.
func (m CategorizationMerger) Apply(receipt models.ReceiptCategorization, mapping *models.MerchantMapping) models.ReceiptCategorization {
	if mapping == nil {
		return receipt
	}

	merged := receipt
	merged.Category = mapping.Category
	merged.Subcategory = nil
	if mapping.Subcategory != nil {
		subcategory := *mapping.Subcategory
		merged.Subcategory = &subcategory
	}
	merged.Confidence = min(MaxConfidence, receipt.Confidence+m.ConfidenceBoost)
	merged.Explanation = mergedExplanation(receipt, mapping)
	merged.Source = models.CategorizationSourceLearned
	merged.MappingApplied = true

	return merged
}

func mergedExplanation(receipt models.ReceiptCategorization, mapping *models.MerchantMapping) string {
	explanation := fmt.Sprintf("Applied learned merchant mapping. AI suggested %q; user correction is %q.",
		receipt.Label(), mapping.Label())
	if receipt.Explanation != "" {
		explanation += " Original reasoning: " + receipt.Explanation
	}
	return explanation
}
