// Package config provides environment-driven configuration for the agent.
package config

import (
	"fmt"
	"os"

	"github.com/kaseddie/globalpath-agent/internal/llm"
)

// Config holds everything the agent reads from the environment. The Gemini
// API key is the only credential the system needs; the model names have
// working defaults and exist for operators who want to pin something else.
type Config struct {
	APIKey            string
	VerificationModel string
	ImagingModel      string
}

// FromEnv builds a Config from the environment. It reads GEMINI_API_KEY
// (required) and the optional GLOBALPATH_VERIFICATION_MODEL and
// GLOBALPATH_IMAGING_MODEL overrides.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required but not set")
	}

	return &Config{
		APIKey:            apiKey,
		VerificationModel: os.Getenv("GLOBALPATH_VERIFICATION_MODEL"),
		ImagingModel:      os.Getenv("GLOBALPATH_IMAGING_MODEL"),
	}, nil
}

// LLMConfig translates the model overrides into an llm.Config, starting from
// the defaults.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.VerificationModel != "" {
		cfg = cfg.WithModel(llm.TaskVerification, c.VerificationModel)
	}
	if c.ImagingModel != "" {
		cfg = cfg.WithModel(llm.TaskImaging, c.ImagingModel)
	}
	return cfg
}
