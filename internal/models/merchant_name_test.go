package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMerchantName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "suffix with period", input: "Starbucks Inc.", expected: "starbucks"},
		{name: "uppercase with long suffix", input: "TARGET CORPORATION", expected: "target"},
		{name: "short corp suffix", input: "Target Corp", expected: "target"},
		{name: "llc", input: "Acme LLC", expected: "acme"},
		{name: "ltd with period", input: "Tesco Ltd.", expected: "tesco"},
		{name: "company", input: "The Coffee Company", expected: "the coffee"},
		{name: "co with period", input: "Blue Bottle Co.", expected: "blue bottle"},
		{name: "surrounding whitespace", input: "   Whole Foods   ", expected: "whole foods"},
		{name: "internal whitespace collapsed", input: "Whole \t  Foods\nMarket", expected: "whole foods market"},
		{name: "suffix in the middle is removed", input: "Acme Inc Store", expected: "acme store"},
		{name: "suffix inside a word is kept", input: "Costco Wholesale", expected: "costco wholesale"},
		{name: "prefix of a word is kept", input: "Incredible Foods", expected: "incredible foods"},
		{name: "empty", input: "", expected: ""},
		{name: "only suffix", input: "Inc.", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMerchantName(tt.input))
		})
	}
}

func TestNormalizeMerchantName_Idempotent(t *testing.T) {
	inputs := []string{
		"Starbucks Inc.",
		"TARGET CORPORATION",
		"  Blue   Bottle Co. ",
		"Acme LLC Ltd.",
		"co.co",
		"Trader Joe's",
	}

	for _, input := range inputs {
		once := NormalizeMerchantName(input)
		assert.Equal(t, once, NormalizeMerchantName(once), "input %q", input)
	}
}

func TestNormalizeMerchantName_VariantsShareKey(t *testing.T) {
	assert.Equal(t, NormalizeMerchantName("Target Corp"), NormalizeMerchantName("TARGET CORPORATION"))
	assert.Equal(t, NormalizeMerchantName("Starbucks"), NormalizeMerchantName("starbucks inc."))
}
