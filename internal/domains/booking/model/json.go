package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a schemaless JSONB document column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	value, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json document: %w", err)
	}

	return value, nil
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported source type for json document: %T", src)
	}

	if err := json.Unmarshal(raw, m); err != nil {
		return fmt.Errorf("failed to unmarshal json document: %w", err)
	}

	return nil
}

// Merge overlays the top-level keys of other onto a copy of m. Nested values
// are replaced wholesale, never merged.
func (m JSONMap) Merge(other JSONMap) JSONMap {
	merged := make(JSONMap, len(m)+len(other))

	for key, value := range m {
		merged[key] = value
	}

	for key, value := range other {
		merged[key] = value
	}

	return merged
}

// ExtensionRecord captures one stay extension. History is append-only.
type ExtensionRecord struct {
	OriginalCheckIn  string  `json:"originalCheckIn"`
	OriginalCheckOut string  `json:"originalCheckOut"`
	ExtendedCheckOut string  `json:"extendedCheckOut"`
	Reason           string  `json:"reason"`
	AdditionalAmount float64 `json:"additionalAmount"`
	PaymentMode      string  `json:"paymentMode"`
	ApprovedBy       string  `json:"approvedBy"`
	ExtendedAt       string  `json:"extendedAt"`
}

type ExtensionHistory []ExtensionRecord

func (h ExtensionHistory) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}

	value, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extension history: %w", err)
	}

	return value, nil
}

func (h *ExtensionHistory) Scan(src any) error {
	if src == nil {
		*h = ExtensionHistory{}

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported source type for extension history: %T", src)
	}

	if err := json.Unmarshal(raw, h); err != nil {
		return fmt.Errorf("failed to unmarshal extension history: %w", err)
	}

	return nil
}
