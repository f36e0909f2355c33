package errors

// ErrorCode is the stable, machine-readable code returned in API error bodies
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthInvalidToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthMissingTenant          ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidMerchant ErrorCode = "VALIDATION_005"
	ValidationInvalidCategory ErrorCode = "VALIDATION_006"
)

// Merchant mapping error codes (MAPPING_*)
const (
	MappingNotFound         ErrorCode = "MAPPING_001"
	MappingSaveFailed       ErrorCode = "MAPPING_002"
	MappingDeleteFailed     ErrorCode = "MAPPING_003"
	MappingStoreUnavailable ErrorCode = "MAPPING_004"
)

// Receipt categorization error codes (CATEGORIZATION_*)
const (
	CategorizationInvalidReceipt    ErrorCode = "CATEGORIZATION_001"
	CategorizationInvalidConfidence ErrorCode = "CATEGORIZATION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthInvalidToken:           "Authorization token is invalid",
	AuthExpiredToken:           "Authorization token has expired",
	AuthMissingTenant:          "Authorization token does not identify a tenant",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidMerchant: "Merchant name is empty after normalization",
	ValidationInvalidCategory: "Category is required",

	MappingNotFound:         "No learned mapping exists for this merchant",
	MappingSaveFailed:       "Failed to save merchant mapping",
	MappingDeleteFailed:     "Failed to delete merchant mapping",
	MappingStoreUnavailable: "Merchant mapping store is temporarily unavailable",

	CategorizationInvalidReceipt:    "Receipt categorization is invalid",
	CategorizationInvalidConfidence: "Confidence must be between 0 and 100",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for code, or a generic one if
// the code is not registered.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
