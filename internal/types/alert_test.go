package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAlertRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantError bool
	}{
		{name: "Valid email", email: "candidate@example.com", wantError: false},
		{name: "Missing email", email: "", wantError: true},
		{name: "Not an email", email: "not-an-email", wantError: true},
		{name: "Missing domain", email: "candidate@", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateAlertRequest{Email: tt.email}
			err := req.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
