package dto

import (
	"time"

	"receipt-tracker/internal/models"

	"github.com/google/uuid"
)

// UpdateMappingRequest is a user's correction of a merchant's category
type UpdateMappingRequest struct {
	Merchant    string  `json:"merchant" validate:"required,merchant,max=255"`
	Category    string  `json:"category" validate:"required,category"`
	Subcategory *string `json:"subcategory,omitempty" validate:"omitempty,max=100"`
}

// MerchantQuery selects one merchant by its raw or normalized name
type MerchantQuery struct {
	Merchant string `query:"merchant" validate:"required,merchant"`
}

type SuggestionQuery struct {
	Merchant string `query:"merchant" validate:"required,merchant"`
	Limit    int    `query:"limit" validate:"min=0,max=20"`
}

type MappingResponse struct {
	ID                     uuid.UUID `json:"id"`
	NormalizedMerchantName string    `json:"normalizedMerchantName"`
	Category               string    `json:"category"`
	Subcategory            *string   `json:"subcategory,omitempty"`
	CreatedBy              uuid.UUID `json:"createdBy"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func NewMappingResponse(mapping *models.MerchantMapping) MappingResponse {
	return MappingResponse{
		ID:                     mapping.ID,
		NormalizedMerchantName: mapping.NormalizedMerchantName,
		Category:               mapping.Category,
		Subcategory:            mapping.Subcategory,
		CreatedBy:              mapping.CreatedBy,
		CreatedAt:              mapping.CreatedAt,
		UpdatedAt:              mapping.UpdatedAt,
	}
}

type MappingListResponse struct {
	Mappings []MappingResponse `json:"mappings"`
	Total    int               `json:"total"`
}

func NewMappingListResponse(mappings []*models.MerchantMapping) MappingListResponse {
	response := MappingListResponse{
		Mappings: make([]MappingResponse, 0, len(mappings)),
		Total:    len(mappings),
	}
	for _, mapping := range mappings {
		response.Mappings = append(response.Mappings, NewMappingResponse(mapping))
	}
	return response
}

type SuggestionResponse struct {
	Mapping    MappingResponse `json:"mapping"`
	Distance   int             `json:"distance"`
	Similarity float64         `json:"similarity"`
}

type SuggestionListResponse struct {
	Merchant    string               `json:"merchant"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

func NewSuggestionListResponse(normalized string, suggestions []*models.MerchantSuggestion) SuggestionListResponse {
	response := SuggestionListResponse{
		Merchant:    normalized,
		Suggestions: make([]SuggestionResponse, 0, len(suggestions)),
	}
	for _, suggestion := range suggestions {
		response.Suggestions = append(response.Suggestions, SuggestionResponse{
			Mapping:    NewMappingResponse(suggestion.Mapping),
			Distance:   suggestion.Distance,
			Similarity: suggestion.Similarity,
		})
	}
	return response
}

type ResetTenantResponse struct {
	Removed int64  `json:"removed"`
	Message string `json:"message"`
}
