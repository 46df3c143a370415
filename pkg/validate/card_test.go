package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "Valid card number", number: "2377225624", valid: true},
		{name: "Invalid check digit", number: "79927398710", valid: false},
		{name: "Non-numeric", number: "not-a-card", valid: false},
		{name: "Empty string", number: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCardNumber(tt.number))
		})
	}
}
