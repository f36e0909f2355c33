package events

import (
	"encoding/json"
	"fmt"

	"receipt-tracker/internal/models"
)

// EncodeInvalidation converts the event to its JSON wire form
func EncodeInvalidation(event models.MappingInvalidation) ([]byte, error) {
	return json.Marshal(event)
}

// DecodeInvalidation parses and checks an event received from the exchange
func DecodeInvalidation(data []byte) (models.MappingInvalidation, error) {
	var event models.MappingInvalidation
	if err := json.Unmarshal(data, &event); err != nil {
		return models.MappingInvalidation{}, err
	}
	if !models.IsValidInvalidationKind(event.Kind) {
		return models.MappingInvalidation{}, fmt.Errorf("unknown invalidation kind %q", event.Kind)
	}
	return event, nil
}
