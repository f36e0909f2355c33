package dto

import (
	"receipt-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CategorizeReceiptRequest is the AI pipeline's categorization of one receipt
type CategorizeReceiptRequest struct {
	Merchant    string           `json:"merchant" validate:"required,merchant,max=255"`
	Category    string           `json:"category" validate:"required,category"`
	Subcategory *string          `json:"subcategory,omitempty" validate:"omitempty,max=100"`
	Confidence  int              `json:"confidence" validate:"min=0,max=100"`
	Explanation string           `json:"explanation" validate:"max=2000"`
	Total       *decimal.Decimal `json:"total,omitempty"`
}

func (r CategorizeReceiptRequest) ToModel() models.ReceiptCategorization {
	return models.ReceiptCategorization{
		Merchant:    r.Merchant,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Confidence:  r.Confidence,
		Explanation: r.Explanation,
		Source:      models.CategorizationSourceAI,
	}
}

// CategorizeReceiptResponse carries the final categorization. Total is echoed
// back untouched so the caller can match the response to its receipt.
type CategorizeReceiptResponse struct {
	Merchant       string           `json:"merchant"`
	Category       string           `json:"category"`
	Subcategory    *string          `json:"subcategory,omitempty"`
	Confidence     int              `json:"confidence"`
	Explanation    string           `json:"explanation"`
	Source         string           `json:"source"`
	MappingApplied bool             `json:"mappingApplied"`
	Total          *decimal.Decimal `json:"total,omitempty"`
}

func NewCategorizeReceiptResponse(result models.ReceiptCategorization, total *decimal.Decimal) CategorizeReceiptResponse {
	return CategorizeReceiptResponse{
		Merchant:       result.Merchant,
		Category:       result.Category,
		Subcategory:    result.Subcategory,
		Confidence:     result.Confidence,
		Explanation:    result.Explanation,
		Source:         result.Source,
		MappingApplied: result.MappingApplied,
		Total:          total,
	}
}
