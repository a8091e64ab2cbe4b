package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/model"
)

func TestJSONMapMerge(t *testing.T) {
	base := model.JSONMap{
		"firstName": "Asep",
		"address": map[string]any{
			"city":   "Bandung",
			"street": "Jl. Braga",
		},
	}

	merged := base.Merge(model.JSONMap{
		"firstName": "Cecep",
		"address":   map[string]any{"city": "Jakarta"},
	})

	assert.Equal(t, "Cecep", merged["firstName"])

	// Top-level keys replace wholesale, nested maps are not merged.
	address := merged["address"].(map[string]any)
	assert.Equal(t, "Jakarta", address["city"])
	assert.NotContains(t, address, "street")

	// The receiver is untouched.
	assert.Equal(t, "Asep", base["firstName"])
}

func TestJSONMapMergeNilReceiver(t *testing.T) {
	var base model.JSONMap

	merged := base.Merge(model.JSONMap{"key": "value"})

	assert.Equal(t, "value", merged["key"])
}

func TestJSONMapValue(t *testing.T) {
	var empty model.JSONMap

	v, err := empty.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(v.([]byte)))

	v, err = model.JSONMap{"key": "value"}.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"key":"value"}`, string(v.([]byte)))
}

func TestJSONMapScan(t *testing.T) {
	var m model.JSONMap

	assert.NoError(t, m.Scan([]byte(`{"key":"value"}`)))
	assert.Equal(t, "value", m["key"])

	assert.NoError(t, m.Scan(nil))
	assert.Empty(t, m)

	assert.Error(t, m.Scan(42))
}

func TestExtensionHistoryValue(t *testing.T) {
	var empty model.ExtensionHistory

	v, err := empty.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(v.([]byte)))
}

func TestExtensionHistoryScan(t *testing.T) {
	var h model.ExtensionHistory

	raw := `[{"originalCheckIn":"2026-08-01","originalCheckOut":"2026-08-05","extendedCheckOut":"2026-08-07","additionalAmount":150}]`

	assert.NoError(t, h.Scan([]byte(raw)))
	assert.Len(t, h, 1)
	assert.Equal(t, "2026-08-07", h[0].ExtendedCheckOut)
	assert.InDelta(t, 150.0, h[0].AdditionalAmount, 0.001)
}

func TestBookingTotalAmount(t *testing.T) {
	booking := model.Booking{PaymentDetails: model.JSONMap{model.PaymentKeyTotalAmount: 500.0}}
	assert.InDelta(t, 500.0, booking.TotalAmount(), 0.001)

	booking.PaymentDetails = model.JSONMap{model.PaymentKeyTotalAmount: 500}
	assert.InDelta(t, 500.0, booking.TotalAmount(), 0.001)

	booking.PaymentDetails = nil
	assert.Zero(t, booking.TotalAmount())
}
