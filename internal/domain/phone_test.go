package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+7 999 123-45-67", "+79991234567"},
		{"79991234567", "+79991234567"},
		{"8 (999) 123 45 67", "+89991234567"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}
