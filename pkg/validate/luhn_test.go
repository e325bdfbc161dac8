package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReference(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		expected  bool
	}{
		{name: "Empty reference", reference: "", expected: true},
		{name: "Valid number", reference: "79927398713", expected: true},
		{name: "Valid order", reference: "2377225624", expected: true},
		{name: "Wrong checksum", reference: "79927398710", expected: false},
		{name: "Not a number", reference: "order-1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsReference(tt.reference))
		})
	}
}

func TestIsLuhn(t *testing.T) {
	assert.True(t, IsLuhn("4561261212345467"))
}
