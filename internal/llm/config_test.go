package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-3-pro-preview", cfg.GetModel(TaskVerification))
	assert.Equal(t, "gemini-2.5-flash-image", cfg.GetModel(TaskImaging))
}

func TestGetModel_UnknownTaskFallsBack(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, cfg.GetModel(TaskVerification), cfg.GetModel(Task("summarization")))
}

func TestGetModel_NoModelsConfigured(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, Models: map[Task]string{}}

	assert.Empty(t, cfg.GetModel(TaskVerification))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TaskImaging, "gemini-imagen-next")

	assert.Equal(t, "gemini-imagen-next", custom.GetModel(TaskImaging))
	assert.Equal(t, "gemini-2.5-flash-image", base.GetModel(TaskImaging))
	assert.Equal(t, base.GetModel(TaskVerification), custom.GetModel(TaskVerification))
}
