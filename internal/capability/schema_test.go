package capability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResultJSON_ValidResponse(t *testing.T) {
	raw := `{"valid": true, "confidence": 92, "issues": [], "extractedData": {"name": "A. Candidate", "expiry": "2031-04-12", "documentType": "Passport"}}`

	assert.NoError(t, ValidateResultJSON(raw))
}

func TestValidateResultJSON_MinimalResponse(t *testing.T) {
	raw := `{"valid": false, "confidence": 40, "issues": ["Photo page unreadable."]}`

	assert.NoError(t, ValidateResultJSON(raw))
}

func TestValidateResultJSON_MissingRequiredField(t *testing.T) {
	raw := `{"valid": true, "issues": []}`

	err := ValidateResultJSON(raw)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateResultJSON_ConfidenceOutOfRange(t *testing.T) {
	raw := `{"valid": true, "confidence": 140, "issues": []}`

	err := ValidateResultJSON(raw)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateResultJSON_WrongType(t *testing.T) {
	raw := `{"valid": "yes", "confidence": 90, "issues": []}`

	err := ValidateResultJSON(raw)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateResultJSON_NotJSON(t *testing.T) {
	err := ValidateResultJSON("the document looks fine")

	require.Error(t, err)
	// A non-JSON payload fails before schema evaluation.
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "confidence", Message: "is required"},
	}}

	assert.Contains(t, err.Error(), "confidence")
	assert.Contains(t, err.Error(), "is required")
}
