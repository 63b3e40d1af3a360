package request

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
)

// FlexNumber is a float64 that tolerates the loose payloads the order
// form produces: JSON numbers, numeric strings, empty strings and
// garbage all decode, with anything unparsable coerced to 0.
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = FlexNumber(sanitize(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = FlexNumber(sanitize(f))
		return nil
	}

	*n = 0
	return nil
}

// Quantities, rates and weights are all non-negative magnitudes, so
// negative values coerce to 0 the same way NaN and garbage do. A row
// with a zeroed quantity or rate is then incomplete and cannot reduce
// an order's total.
func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// OrderItemPayload is one row of the JSON-encoded items field of the
// order form. Key names match what the React client sends; "xray" is
// the note field on X-ray orders.
type OrderItemPayload struct {
	Item       string     `json:"item"`
	Quantity   FlexNumber `json:"quantity"`
	Rate       FlexNumber `json:"rate"`
	Weight     FlexNumber `json:"weight"`
	WeightUnit string     `json:"weightUnite"`
	Note       string     `json:"note"`
	Xray       string     `json:"xray"`
}

// ToInput converts the payload rows into service inputs.
func ToInput(items []OrderItemPayload) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, p := range items {
		note := p.Note
		if note == "" {
			note = p.Xray
		}
		inputs = append(inputs, service.OrderItemInput{
			ItemName:   p.Item,
			Quantity:   float64(p.Quantity),
			Rate:       float64(p.Rate),
			Weight:     float64(p.Weight),
			WeightUnit: enum.WeightUnit(p.WeightUnit),
			Note:       note,
		})
	}
	return inputs
}

// CreateItemRequest is the body of POST /items
type CreateItemRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}
