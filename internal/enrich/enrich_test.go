package enrich

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaseddie/globalpath-agent/internal/capability"
	"github.com/kaseddie/globalpath-agent/internal/catalog"
)

type fakeGenerator struct {
	mu       sync.Mutex
	artifact *capability.ImageArtifact
	err      error
	block    chan struct{}
	titles   []string
}

func (f *fakeGenerator) GenerateJobVisual(_ context.Context, title, _ string) (*capability.ImageArtifact, error) {
	f.mu.Lock()
	f.titles = append(f.titles, title)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.artifact, f.err
}

func TestGenerate_AttachesDataURL(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.Seed())
	gen := &fakeGenerator{artifact: &capability.ImageArtifact{MIMEType: "image/png", Data: []byte("img")}}
	e := New(store, gen)

	require.NoError(t, e.Generate(context.Background(), "1"))

	job, err := store.Get("1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(job.ImageRef, "data:image/png;base64,"))
	assert.Equal(t, []string{"Warehouse Specialist"}, gen.titles)
	assert.False(t, e.Generating("1"))
}

func TestGenerate_UnknownJob(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.Seed())
	e := New(store, &fakeGenerator{})

	err := e.Generate(context.Background(), "404")
	var notFound *catalog.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGenerate_CapabilityFailureLeavesJobUntouched(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.Seed())
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	e := New(store, gen)

	// Generation failures are absorbed; the listing simply keeps no image.
	assert.NoError(t, e.Generate(context.Background(), "1"))

	job, err := store.Get("1")
	require.NoError(t, err)
	assert.Empty(t, job.ImageRef)
}

func TestGenerate_RejectsConcurrentRequestForSameJob(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.Seed())
	gen := &fakeGenerator{
		artifact: &capability.ImageArtifact{MIMEType: "image/png", Data: []byte("img")},
		block:    make(chan struct{}),
	}
	e := New(store, gen)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, e.Generate(context.Background(), "1"))
	}()

	require.Eventually(t, func() bool {
		return e.Generating("1")
	}, 2*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, e.Generate(context.Background(), "1"), ErrGenerationInFlight)

	// A different job is not blocked by the first one.
	release := gen.block
	gen.mu.Lock()
	gen.block = nil
	gen.mu.Unlock()
	assert.NoError(t, e.Generate(context.Background(), "2"))

	close(release)
	<-done
	assert.False(t, e.Generating("1"))
}
