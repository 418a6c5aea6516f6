package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get("verifier-policy")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "GCC")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	assert.NotPanics(t, func() {
		prompt := MustGet("analyze-document")
		assert.NotEmpty(t, prompt)
	})
}

func TestGet_AllRequiredKeys(t *testing.T) {
	for _, key := range []string{"verifier-policy", "analyze-document", "enhance-selfie", "job-visual"} {
		prompt, err := Get(key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestFormat(t *testing.T) {
	template := "A scene of a {{.Title}} working in {{.Location}}."
	data := map[string]string{
		"Title":    "Head Chef",
		"Location": "Dubai, UAE",
	}

	result := Format(template, data)
	assert.Equal(t, "A scene of a Head Chef working in Dubai, UAE.", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestFormat_JobVisualPrompt(t *testing.T) {
	template := MustGet("job-visual")
	result := Format(template, map[string]string{
		"Title":    "Registered Nurse",
		"Location": "Berlin, Germany",
	})

	assert.Contains(t, result, "Registered Nurse")
	assert.Contains(t, result, "Berlin, Germany")
	assert.NotContains(t, result, "{{.")
}
