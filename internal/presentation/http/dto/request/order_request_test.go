package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"integer", `500`, 500},
		{"zero", `0`, 0},
		{"negative number", `-3`, 0},
		{"negative string", `"-3.5"`, 0},
		{"numeric string", `"12.5"`, 12.5},
		{"integer string", `"500"`, 500},
		{"padded string", `"  7 "`, 7},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"object", `{"a":1}`, 0},
		{"array", `[1]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			err := json.Unmarshal([]byte(tt.json), &n)
			require.NoError(t, err, "coercion never surfaces an error")
			assert.Equal(t, tt.want, float64(n))
		})
	}
}

func TestOrderItemPayloadDecode(t *testing.T) {
	raw := `[
		{"item":"Chain","quantity":"2","rate":500,"weight":"11.6","weightUnite":"gm","note":""},
		{"item":"Gold Test","quantity":1,"rate":"300","xray":"22 karat"}
	]`

	var rows []OrderItemPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &rows))
	require.Len(t, rows, 2)

	inputs := ToInput(rows)
	require.Len(t, inputs, 2)

	assert.Equal(t, "Chain", inputs[0].ItemName)
	assert.Equal(t, 2.0, inputs[0].Quantity)
	assert.Equal(t, 500.0, inputs[0].Rate)
	assert.Equal(t, 11.6, inputs[0].Weight)
	assert.Equal(t, "gm", string(inputs[0].WeightUnit))

	assert.Equal(t, "22 karat", inputs[1].Note, "xray field backfills the note")
}
