// Package pipeline implements the per-application document verification
// session: four independent document-check steps, each a small state machine.
//
// Valid status graph per step:
//
//	pending ──► verifying ──► completed ──► pending (undo)
//	   ▲              │
//	   │              ▼
//	   └─────────── failed ──► verifying (re-upload)
//
// completed and failed are terminal: undo is the only way forward from
// completed, and a failed step accepts either undo or a direct re-upload.
package pipeline

import "fmt"

// Status is the lifecycle state of one verification step.
type Status string

const (
	StatusPending   Status = "pending"
	StatusVerifying Status = "verifying"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusVerifying},
	StatusVerifying: {StatusCompleted, StatusFailed},
	StatusCompleted: {StatusPending},
	StatusFailed:    {StatusVerifying, StatusPending},
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusVerifying, StatusCompleted, StatusFailed:
		return st, nil
	}
	return "", fmt.Errorf("unknown step status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses from which undo is the only forward
// transition besides re-upload.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusFailed
}

// Kind is the fixed identity of a verification step.
type Kind string

const (
	StepPassport Kind = "passport"
	StepMedical  Kind = "medical"
	StepPolice   Kind = "police"
	StepSelfie   Kind = "selfie"
)

// StepOrder is the display order of the four steps in every session.
var StepOrder = []Kind{StepPassport, StepMedical, StepPolice, StepSelfie}

// NumSteps is the number of document checks per session.
const NumSteps = 4

var stepLabels = map[Kind]string{
	StepPassport: "Passport Verification",
	StepMedical:  "GAMCA Medical Report",
	StepPolice:   "Police Clearance Certificate",
	StepSelfie:   "Professional Selfie",
}

// Label returns the human-readable label for a step kind.
func (k Kind) Label() string {
	return stepLabels[k]
}

// ParseKind converts a raw string to a step Kind, returning an error for
// unknown values.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := stepLabels[k]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown verification step %q", s)
}
