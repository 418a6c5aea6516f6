package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaseddie/globalpath-agent/internal/llm"
)

func TestFromEnv_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := FromEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GLOBALPATH_VERIFICATION_MODEL", "")
	t.Setenv("GLOBALPATH_IMAGING_MODEL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
	assert.Equal(t, "gemini-3-pro-preview", llmCfg.GetModel(llm.TaskVerification))
	assert.Equal(t, "gemini-2.5-flash-image", llmCfg.GetModel(llm.TaskImaging))
}

func TestFromEnv_ModelOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GLOBALPATH_VERIFICATION_MODEL", "gemini-custom-verify")
	t.Setenv("GLOBALPATH_IMAGING_MODEL", "gemini-custom-image")

	cfg, err := FromEnv()
	require.NoError(t, err)

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, "gemini-custom-verify", llmCfg.GetModel(llm.TaskVerification))
	assert.Equal(t, "gemini-custom-image", llmCfg.GetModel(llm.TaskImaging))
}
