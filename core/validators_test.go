package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ymdDateValidation(t *testing.T) {
	type payload struct {
		Date string `json:"date" validate:"ymddate"`
	}

	tests := []struct {
		date  string
		valid bool
	}{
		{date: "2024-01-08", valid: true},
		{date: "2024-02-29", valid: true},  // leap year
		{date: "2023-02-29", valid: false}, // not a leap year
		{date: "2024-02-30", valid: false},
		{date: "2024-13-01", valid: false},
		{date: "2024-1-08", valid: false}, // unpadded
		{date: "08-01-2024", valid: false},
		{date: "2024/01/08", valid: false},
		{date: "not a date", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			err := Validate.Struct(&payload{Date: tt.date})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
