package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kaseddie/globalpath-agent/internal/llm"
	"github.com/kaseddie/globalpath-agent/internal/prompts"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

// Gemini implements all three capabilities over a shared llm.Client.
type Gemini struct {
	client llm.Client
}

// NewGemini wraps an LLM client as the agent's capability provider. The
// caller retains ownership of the client and its Close.
func NewGemini(client llm.Client) *Gemini {
	return &Gemini{client: client}
}

// VerifyDocument sends the uploaded file with the fixed regional policy
// instruction and parses the structured verdict. The response must validate
// against the VerificationResult schema; anything else is an error the
// caller converts to a synthetic failure.
func (g *Gemini) VerifyDocument(ctx context.Context, data []byte, mimeType string) (types.VerificationResult, error) {
	system := prompts.MustGet("verifier-policy")
	question := prompts.MustGet("analyze-document")

	raw, err := g.client.GenerateJSON(ctx, llm.TaskVerification, system,
		llm.BlobPart(mimeType, data),
		llm.TextPart(question),
	)
	if err != nil {
		return types.VerificationResult{}, fmt.Errorf("document verification call failed: %w", err)
	}

	if err := ValidateResultJSON(raw); err != nil {
		return types.VerificationResult{}, err
	}

	var result types.VerificationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return types.VerificationResult{}, fmt.Errorf("failed to parse verification response: %w", err)
	}
	if result.Issues == nil {
		result.Issues = []string{}
	}

	return result, nil
}

// EnhanceSelfie asks the imaging model for an enhanced selfie. On any
// failure the original content comes back unchanged; the error is swallowed
// at this boundary.
func (g *Gemini) EnhanceSelfie(ctx context.Context, data []byte) *ImageArtifact {
	instruction := prompts.MustGet("enhance-selfie")

	img, err := g.client.GenerateImage(ctx, llm.TaskImaging,
		llm.BlobPart("image/jpeg", data),
		llm.TextPart(instruction),
	)
	if err != nil {
		log.Printf("selfie enhancement failed, keeping original: %v", err)
		return &ImageArtifact{MIMEType: "image/jpeg", Data: data}
	}

	return &ImageArtifact{MIMEType: img.MIMEType, Data: img.Data}
}

// GenerateJobVisual produces a cinematic workplace photograph for a job
// title and location. Returns an error when no image comes back.
func (g *Gemini) GenerateJobVisual(ctx context.Context, title, location string) (*ImageArtifact, error) {
	prompt := prompts.Format(prompts.MustGet("job-visual"), map[string]string{
		"Title":    title,
		"Location": location,
	})

	img, err := g.client.GenerateImage(ctx, llm.TaskImaging, llm.TextPart(prompt))
	if err != nil {
		return nil, fmt.Errorf("job visual generation failed: %w", err)
	}

	return &ImageArtifact{MIMEType: img.MIMEType, Data: img.Data}, nil
}
