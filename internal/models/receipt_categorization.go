package models

// Sources a categorization can come from
const (
	CategorizationSourceAI      = "AI"
	CategorizationSourceLearned = "LEARNED"
)

// ReceiptCategorization is the AI pipeline's output for one receipt. The
// learning path may overwrite it with a tenant's merchant mapping.
type ReceiptCategorization struct {
	Merchant       string  `json:"merchant"`
	Category       string  `json:"category"`
	Subcategory    *string `json:"subcategory,omitempty"`
	Confidence     int     `json:"confidence"`
	Explanation    string  `json:"explanation"`
	Source         string  `json:"source"`
	MappingApplied bool    `json:"mapping_applied"`
}

// Label renders the categorization as "Category / Subcategory", or just the category.
func (r ReceiptCategorization) Label() string {
	return CategoryLabel(r.Category, r.Subcategory)
}
