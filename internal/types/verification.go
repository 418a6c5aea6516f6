package types

// ExtractedFields holds the document fields the verifier managed to read.
// All fields are optional; an empty struct means nothing was extracted.
type ExtractedFields struct {
	Name         string `json:"name,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
	DocumentType string `json:"documentType,omitempty"`
}

// VerificationResult is the structured verdict for one uploaded document.
// It is produced only at the capability boundary and is immutable once
// attached to a step, until that step is reset.
type VerificationResult struct {
	Valid      bool             `json:"valid"`
	Confidence float64          `json:"confidence"`
	Issues     []string         `json:"issues"`
	Extracted  *ExtractedFields `json:"extractedData,omitempty"`
}
