package pipeline

import (
	"context"
	"crypto/rand"
	"log"
	"math"
	"sync"

	"github.com/kaseddie/globalpath-agent/internal/capability"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

// selfieConfidence is the fixed confidence synthesized for the selfie step.
// The enhancement capability's own output never gates pass/fail.
const selfieConfidence = 95

// codeAlphabet is the character set for application reference codes.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// codeLength is the length of an application reference code.
const codeLength = 6

// VerifiedMarker records that the user completed verification for a job.
// catalog.Store satisfies it.
type VerifiedMarker interface {
	MarkUserVerified(id string) error
}

// StepView is an immutable snapshot of one step for callers.
type StepView struct {
	Kind   Kind
	Label  string
	Status Status
	Result *types.VerificationResult
}

type step struct {
	kind     Kind
	status   Status
	result   *types.VerificationResult
	inFlight bool
	// gen is bumped on undo and close; a capability response whose captured
	// gen no longer matches is discarded instead of mutating reset state.
	gen uint64
}

// Session is one in-progress document verification attempt tied to a single
// job application. All state transitions go through the session's mutex;
// uploads on distinct steps may run concurrently, but each step admits at
// most one outstanding capability call.
type Session struct {
	mu       sync.Mutex
	job      types.Job
	code     string
	steps    [NumSteps]step
	closed   bool
	verifier capability.DocumentVerifier
	enhancer capability.ImageEnhancer
	marks    VerifiedMarker
}

// NewSession starts a verification session for a job with four fresh pending
// steps and a newly generated application reference code.
func NewSession(job types.Job, verifier capability.DocumentVerifier, enhancer capability.ImageEnhancer, marks VerifiedMarker) *Session {
	s := &Session{
		job:      job,
		code:     newReferenceCode(),
		verifier: verifier,
		enhancer: enhancer,
		marks:    marks,
	}
	for i, k := range StepOrder {
		s.steps[i] = step{kind: k, status: StatusPending}
	}
	return s
}

// Job returns the job this session applies to.
func (s *Session) Job() types.Job {
	return s.job
}

// Code returns the human-readable application reference code.
func (s *Session) Code() string {
	return s.code
}

// Steps returns a snapshot of all steps in display order.
func (s *Session) Steps() []StepView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StepView, NumSteps)
	for i := range s.steps {
		out[i] = s.steps[i].view()
	}
	return out
}

func (st *step) view() StepView {
	v := StepView{Kind: st.kind, Label: st.kind.Label(), Status: st.status}
	if st.result != nil {
		r := *st.result
		v.Result = &r
	}
	return v
}

// Upload runs one document check: the step transitions to verifying
// immediately, the capability is invoked with the file content, and the step
// lands on completed or failed depending on the verdict. A capability error
// or malformed payload becomes a synthetic failure; the step never stays in
// verifying. The selfie step calls the enhancement capability instead and
// always passes with a fixed confidence.
func (s *Session) Upload(ctx context.Context, kind Kind, data []byte, mimeType string) (StepView, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return StepView{}, ErrSessionClosed
	}
	st := s.stepFor(kind)
	if st == nil {
		s.mu.Unlock()
		return StepView{}, &TransitionError{Step: kind, From: "", To: StatusVerifying}
	}
	if st.inFlight {
		s.mu.Unlock()
		return StepView{}, ErrStepBusy
	}
	if !IsTransitionAllowed(st.status, StatusVerifying) {
		err := &TransitionError{Step: kind, From: st.status, To: StatusVerifying}
		s.mu.Unlock()
		return StepView{}, err
	}
	st.status = StatusVerifying
	st.result = nil
	st.inFlight = true
	gen := st.gen
	s.mu.Unlock()

	result := s.check(ctx, kind, data, mimeType)

	s.mu.Lock()
	defer s.mu.Unlock()
	st = s.stepFor(kind)
	st.inFlight = false
	if st.gen != gen || s.closed {
		// The session moved on while the call was outstanding.
		return StepView{}, ErrSessionClosed
	}
	if result.Valid {
		st.status = StatusCompleted
	} else {
		st.status = StatusFailed
	}
	st.result = &result
	return st.view(), nil
}

// check invokes the capability appropriate for the step and always yields a
// result, synthesizing one on failure.
func (s *Session) check(ctx context.Context, kind Kind, data []byte, mimeType string) types.VerificationResult {
	if kind == StepSelfie {
		// The enhanced artifact is produced but deliberately not consumed for
		// pass/fail; the selfie step always succeeds.
		_ = s.enhancer.EnhanceSelfie(ctx, data)
		return types.VerificationResult{Valid: true, Confidence: selfieConfidence, Issues: []string{}}
	}

	result, err := s.verifier.VerifyDocument(ctx, data, mimeType)
	if err != nil {
		log.Printf("verification of %s failed: %v", kind, err)
		return capability.FailureResult()
	}
	return result
}

// Undo resets a terminal step back to pending and discards its result. It is
// permitted at any time, independent of the other steps' states.
func (s *Session) Undo(kind Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	st := s.stepFor(kind)
	if st == nil {
		return &TransitionError{Step: kind, From: "", To: StatusPending}
	}
	if !IsTransitionAllowed(st.status, StatusPending) {
		return &TransitionError{Step: kind, From: st.status, To: StatusPending}
	}
	st.status = StatusPending
	st.result = nil
	st.gen++
	return nil
}

// Complete reports whether every step is completed. Derived, never stored.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeLocked()
}

func (s *Session) completeLocked() bool {
	for i := range s.steps {
		if s.steps[i].status != StatusCompleted {
			return false
		}
	}
	return true
}

// Progress returns the percentage of completed steps, rounded for display.
func (s *Session) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	completed := 0
	for i := range s.steps {
		if s.steps[i].status == StatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / NumSteps * 100))
}

// Finish records the job as verified by this user and closes the session.
// Only valid once every step is completed.
func (s *Session) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if !s.completeLocked() {
		return ErrNotComplete
	}
	if err := s.marks.MarkUserVerified(s.job.ID); err != nil {
		return err
	}
	s.closeLocked()
	return nil
}

// Close abandons the session. Outstanding capability responses are discarded
// when they eventually arrive.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *Session) closeLocked() {
	s.closed = true
	for i := range s.steps {
		s.steps[i].gen++
	}
}

// Closed reports whether the session has been finished or abandoned.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) stepFor(kind Kind) *step {
	for i := range s.steps {
		if s.steps[i].kind == kind {
			return &s.steps[i]
		}
	}
	return nil
}

// newReferenceCode generates the 6-character uppercase alphanumeric
// application reference shown to the user.
func newReferenceCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand does not fail on supported platforms
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
