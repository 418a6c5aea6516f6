// Package enrich implements on-demand visual enrichment: generating an
// illustrative workplace photo for a job and attaching it to the catalog
// record.
package enrich

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/kaseddie/globalpath-agent/internal/capability"
	"github.com/kaseddie/globalpath-agent/internal/catalog"
)

// ErrGenerationInFlight is returned when a visual is already being generated
// for the same job.
var ErrGenerationInFlight = errors.New("visual generation already in flight for this job")

// Enricher generates job visuals and attaches them to the catalog.
type Enricher struct {
	mu         sync.Mutex
	generating map[string]struct{}
	store      catalog.Store
	generator  capability.VisualGenerator
}

// New returns an Enricher over the given catalog and generator.
func New(store catalog.Store, generator capability.VisualGenerator) *Enricher {
	return &Enricher{
		generating: make(map[string]struct{}),
		store:      store,
		generator:  generator,
	}
}

// Generating reports whether a visual is currently being generated for the
// job.
func (e *Enricher) Generating(jobID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.generating[jobID]
	return ok
}

// Generate produces a visual for the job and attaches it to the catalog
// record. On generation failure the job is left without an image and the
// generating marker is cleared; no error is surfaced beyond the absence,
// matching the capture contract — admission and unknown-job errors are still
// returned.
func (e *Enricher) Generate(ctx context.Context, jobID string) error {
	job, err := e.store.Get(jobID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if _, busy := e.generating[jobID]; busy {
		e.mu.Unlock()
		return ErrGenerationInFlight
	}
	e.generating[jobID] = struct{}{}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.generating, jobID)
		e.mu.Unlock()
	}()

	artifact, err := e.generator.GenerateJobVisual(ctx, job.Title, job.Location)
	if err != nil {
		log.Printf("visual generation for job %s failed: %v", jobID, err)
		return nil
	}

	return e.store.AttachImage(jobID, artifact.DataURL())
}
