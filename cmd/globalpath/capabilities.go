package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kaseddie/globalpath-agent/internal/capability"
	"github.com/kaseddie/globalpath-agent/internal/config"
	"github.com/kaseddie/globalpath-agent/internal/llm"
)

// newCapabilities builds the Gemini-backed capability boundary for commands
// that need model access. The apiKey flag, when set, overrides the
// environment. Callers must Close the returned client.
func newCapabilities(ctx context.Context, apiKey string) (*capability.Gemini, llm.Client, error) {
	if apiKey != "" {
		// Flag wins over the environment for this process
		if err := os.Setenv("GEMINI_API_KEY", apiKey); err != nil {
			return nil, nil, fmt.Errorf("failed to set API key: %w", err)
		}
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return capability.NewGemini(client), client, nil
}
