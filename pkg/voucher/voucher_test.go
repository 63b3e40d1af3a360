package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := Generate()
		assert.Len(t, v, Length)
		assert.True(t, IsValid(v), "generated voucher %q should be valid", v)
		assert.NotEqual(t, byte('0'), v[0], "voucher must not have a leading zero")
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name    string
		voucher string
		want    bool
	}{
		{"smallest", "100000", true},
		{"largest", "999999", true},
		{"leading zero", "099999", false},
		{"too short", "12345", false},
		{"too long", "1234567", false},
		{"empty", "", false},
		{"letters", "abc123", false},
		{"negative", "-12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.voucher))
		})
	}
}
