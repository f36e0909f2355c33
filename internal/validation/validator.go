package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"receipt-tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

const maxCategoryLength = 100

// Validator wraps go-playground/validator with the merchant and category rules
type Validator struct {
	validate *validator.Validate
}

func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("merchant", validateMerchant)
	_ = v.RegisterValidation("category", validateCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// validateMerchant rejects names that normalize to nothing, such as "Inc."
func validateMerchant(fl validator.FieldLevel) bool {
	return models.NormalizeMerchantName(fl.Field().String()) != ""
}

// validateCategory requires a non-blank label of printable characters
func validateCategory(fl validator.FieldLevel) bool {
	category := strings.TrimSpace(fl.Field().String())
	if category == "" || len(category) > maxCategoryLength {
		return false
	}
	for _, r := range category {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// FieldErrors turns a validation failure into field -> message pairs for the
// API error body. Errors that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = messageFor(fe)
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "merchant":
		return "must contain a merchant name"
	case "category":
		return fmt.Sprintf("must be a non-blank label of at most %d characters", maxCategoryLength)
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
