package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type correction struct {
	Merchant    string  `json:"merchant" validate:"required,merchant"`
	Category    string  `json:"category" validate:"required,category"`
	Subcategory *string `json:"subcategory,omitempty" validate:"omitempty,max=10"`
	Confidence  int     `json:"confidence" validate:"min=0,max=100"`
}

func TestValidator_AcceptsValidStruct(t *testing.T) {
	err := GetValidator().Struct(correction{Merchant: "Target Corp", Category: "Shopping", Confidence: 80})

	assert.NoError(t, err)
}

func TestValidator_MerchantThatNormalizesToNothing(t *testing.T) {
	err := GetValidator().Struct(correction{Merchant: " Inc. ", Category: "Shopping"})

	fields := FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "must contain a merchant name", fields["merchant"])
}

func TestValidator_Category(t *testing.T) {
	v := NewValidator()

	for _, category := range []string{"   ", "Bad\x00Label", string(make([]byte, 101))} {
		fields := FieldErrors(v.Struct(correction{Merchant: "Target", Category: category}))
		assert.Contains(t, fields, "category", "category %q should be rejected", category)
	}
}

func TestValidator_RangeMessages(t *testing.T) {
	sub := "Department Stores"
	fields := FieldErrors(NewValidator().Struct(correction{
		Merchant:    "Target",
		Category:    "Shopping",
		Subcategory: &sub,
		Confidence:  101,
	}))

	assert.Equal(t, "must be at most 100", fields["confidence"])
	assert.Equal(t, "must be at most 10", fields["subcategory"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
