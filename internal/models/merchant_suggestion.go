package models

// MerchantSuggestion is a learned mapping whose merchant name is close to the
// one being looked up. Similarity is 0 to 1, higher is closer.
type MerchantSuggestion struct {
	Mapping    *MerchantMapping `json:"mapping"`
	Distance   int              `json:"distance"`
	Similarity float64          `json:"similarity"`
}
