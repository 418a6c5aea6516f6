package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrNoImage indicates a generation response that carried no image artifact.
var ErrNoImage = errors.New("no image in response")

// Part is one piece of multimodal request content: either text or inline
// binary data with a media type.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// TextPart builds a text request part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart builds an inline-binary request part.
func BlobPart(mimeType string, data []byte) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// Image is an inline image artifact returned by a generation call.
type Image struct {
	MIMEType string
	Data     []byte
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateJSON generates a JSON response for the task's model. The system
	// instruction may be empty.
	GenerateJSON(ctx context.Context, task Task, system string, parts ...Part) (string, error)
	// GenerateImage generates or transforms an image for the task's model.
	// Returns ErrNoImage when the response carries no inline image.
	GenerateImage(ctx context.Context, task Task, parts ...Part) (*Image, error)
	// GetModel returns the underlying provider model for a task (for direct access if needed)
	GetModel(task Task) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateJSON generates a JSON response for the task's model.
func (c *GeminiClient) GenerateJSON(ctx context.Context, task Task, system string, parts ...Part) (string, error) {
	modelName := c.config.GetModel(task)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for task %s", task)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, toGenaiParts(parts)...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// GenerateImage generates or transforms an image for the task's model.
func (c *GeminiClient) GenerateImage(ctx context.Context, task Task, parts ...Part) (*Image, error) {
	modelName := c.config.GetModel(task)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for task %s", task)
	}

	model := c.client.GenerativeModel(modelName)

	resp, err := model.GenerateContent(ctx, toGenaiParts(parts)...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return extractImageFromResponse(resp)
}

// GetModel returns the model name for a task
func (c *GeminiClient) GetModel(task Task) string {
	return c.config.GetModel(task)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// toGenaiParts converts request parts to the provider's part types.
func toGenaiParts(parts []Part) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.Data != nil {
			out = append(out, genai.Blob{MIMEType: p.MIMEType, Data: p.Data})
			continue
		}
		out = append(out, genai.Text(p.Text))
	}
	return out
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// extractImageFromResponse extracts the first inline image from a Gemini API response
func extractImageFromResponse(resp *genai.GenerateContentResponse) (*Image, error) {
	if len(resp.Candidates) == 0 {
		return nil, ErrNoImage
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, ErrNoImage
	}

	for _, part := range candidate.Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return &Image{MIMEType: blob.MIMEType, Data: blob.Data}, nil
		}
	}

	return nil, ErrNoImage
}
