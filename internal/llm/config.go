// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between per-task models and future
// multi-provider support.
package llm

// Task represents the kind of generative work a model is asked to do.
type Task string

const (
	// TaskVerification is multimodal document analysis with a structured JSON verdict
	TaskVerification Task = "verification"
	// TaskImaging is image enhancement and image generation
	TaskImaging Task = "imaging"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[Task]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[Task]string{
			TaskVerification: "gemini-3-pro-preview",
			TaskImaging:      "gemini-2.5-flash-image",
		},
	}
}

// GetModel returns the model name for a given task
func (c *Config) GetModel(task Task) string {
	if model, ok := c.Models[task]; ok {
		return model
	}
	// Fall back to the verification model when a task has no mapping
	if model, ok := c.Models[TaskVerification]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a task
func (c *Config) WithModel(task Task, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[Task]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[task] = model
	return newConfig
}
