// Package capability defines the external generative capabilities the agent
// depends on — document verification, selfie enhancement, and job-visual
// generation — and their Gemini-backed implementation. The capabilities are
// opaque: callers see only the request/response contracts.
package capability

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/kaseddie/globalpath-agent/internal/types"
)

// IssueTechnicalFailure is the fixed issue text attached to synthetic
// failure results when a capability call fails or returns an unusable payload.
const IssueTechnicalFailure = "Technical error during document processing."

// DocumentVerifier analyzes an uploaded document against the regional visa
// policy and returns a structured verdict.
type DocumentVerifier interface {
	VerifyDocument(ctx context.Context, data []byte, mimeType string) (types.VerificationResult, error)
}

// ImageEnhancer improves an uploaded selfie for biometric matching. On
// failure the original content comes back unchanged; enhancement never fails
// hard at this boundary.
type ImageEnhancer interface {
	EnhanceSelfie(ctx context.Context, data []byte) *ImageArtifact
}

// VisualGenerator produces an illustrative workplace photograph for a job.
type VisualGenerator interface {
	GenerateJobVisual(ctx context.Context, title, location string) (*ImageArtifact, error)
}

// ImageArtifact is an inline image returned by a capability.
type ImageArtifact struct {
	MIMEType string
	Data     []byte
}

// DataURL renders the artifact as an embeddable data URL, the form the
// catalog stores as a job's image reference.
func (a *ImageArtifact) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MIMEType, base64.StdEncoding.EncodeToString(a.Data))
}

// FailureResult synthesizes the verdict used when a verification call fails:
// invalid, zero confidence, a single technical-failure issue. Callers attach
// it so a step always reaches a terminal status.
func FailureResult() types.VerificationResult {
	return types.VerificationResult{
		Valid:      false,
		Confidence: 0,
		Issues:     []string{IssueTechnicalFailure},
	}
}
