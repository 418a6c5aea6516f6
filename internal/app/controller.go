// Package app wires the catalog, filter engine, alert capture, visual
// enrichment, and verification pipeline behind a single controller. The
// controller owns all mutable state; everything else either computes pure
// derivations or talks to an external capability.
package app

import (
	"context"
	"sync"

	"github.com/kaseddie/globalpath-agent/internal/alerts"
	"github.com/kaseddie/globalpath-agent/internal/capability"
	"github.com/kaseddie/globalpath-agent/internal/catalog"
	"github.com/kaseddie/globalpath-agent/internal/enrich"
	"github.com/kaseddie/globalpath-agent/internal/filter"
	"github.com/kaseddie/globalpath-agent/internal/pipeline"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

// Options configures a Controller. Nil fields fall back to in-memory
// defaults; the capability fields may stay nil when the caller only needs
// filtering and alert capture.
type Options struct {
	Catalog   catalog.Store
	Alerts    alerts.Store
	Notifier  *alerts.Notifier
	Verifier  capability.DocumentVerifier
	Enhancer  capability.ImageEnhancer
	Generator capability.VisualGenerator
}

// Controller is the single owner of application state. Mutation happens only
// through its methods, serialized by a mutex — the Go analog of the
// event-loop serialization the original interaction model assumed.
type Controller struct {
	mu       sync.Mutex
	store    catalog.Store
	criteria types.FilterCriteria
	alerts   alerts.Store
	notifier *alerts.Notifier
	enricher *enrich.Enricher
	verifier capability.DocumentVerifier
	enhancer capability.ImageEnhancer
	session  *pipeline.Session
}

// New builds a Controller from options, filling in in-memory defaults.
func New(opts Options) *Controller {
	store := opts.Catalog
	if store == nil {
		store = catalog.NewMemoryStore(catalog.Seed())
	}
	alertStore := opts.Alerts
	if alertStore == nil {
		alertStore = alerts.NewMemoryStore()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = alerts.NewNotifier(0)
	}
	return &Controller{
		store:    store,
		criteria: types.DefaultCriteria(),
		alerts:   alertStore,
		notifier: notifier,
		enricher: enrich.New(store, opts.Generator),
		verifier: opts.Verifier,
		enhancer: opts.Enhancer,
	}
}

// Criteria returns the current filter criteria.
func (c *Controller) Criteria() types.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// SetSearch sets the free-text search facet.
func (c *Controller) SetSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Search = search
}

// SetRegion sets the region facet.
func (c *Controller) SetRegion(region types.Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Region = region
}

// SetJobType sets the job-type facet. Because the sub-category option set
// depends on the job type, the sub-category constraint is reconciled here —
// as a reaction to the option-set change, not inside the filter computation —
// so a selection the new type no longer offers silently resets.
func (c *Controller) SetJobType(jobType types.JobType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Type = jobType
	options := filter.SubCategories(c.store.List(), jobType)
	c.criteria = filter.Reconcile(c.criteria, options)
}

// SetSubCategory sets the sub-category facet.
func (c *Controller) SetSubCategory(subCategory string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.SubCategory = subCategory
}

// SetSite sets the originating-site facet.
func (c *Controller) SetSite(site string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Site = site
}

// ClearFilters resets all five facets to their defaults atomically.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = types.DefaultCriteria()
}

// HasActiveFilters reports whether any facet differs from its default.
func (c *Controller) HasActiveFilters() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria.Active()
}

// VisibleJobs returns the catalog filtered by the current criteria.
func (c *Controller) VisibleJobs() []types.Job {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()
	return filter.Apply(c.store.List(), criteria)
}

// SubCategoryOptions returns the sub-categories offered under the current
// job-type constraint, derived from the whole catalog.
func (c *Controller) SubCategoryOptions() []string {
	c.mu.Lock()
	jobType := c.criteria.Type
	c.mu.Unlock()
	return filter.SubCategories(c.store.List(), jobType)
}

// SiteOptions returns the distinct sites across the whole catalog.
func (c *Controller) SiteOptions() []string {
	return filter.Sites(c.store.List())
}

// Job returns one catalog entry by ID.
func (c *Controller) Job(id string) (types.Job, error) {
	return c.store.Get(id)
}

// UserVerified reports whether the current user completed verification for a
// job.
func (c *Controller) UserVerified(id string) bool {
	return c.store.UserVerified(id)
}

// CreateAlert snapshots the current filter criteria under the given contact
// address. An empty address is a silent no-op; shape validation belongs to
// the request boundary, not here.
func (c *Controller) CreateAlert(email string) (*types.JobAlert, bool) {
	if email == "" {
		return nil, false
	}
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()

	alert := c.alerts.Append(types.JobAlert{
		Email:  email,
		Search: criteria.Search,
		Region: criteria.Region,
		Type:   criteria.Type,
	})
	c.notifier.Show()
	return &alert, true
}

// Alerts returns the alerts captured during this process run.
func (c *Controller) Alerts() []types.JobAlert {
	return c.alerts.List()
}

// NotificationVisible reports whether the transient alert-created signal is
// currently showing.
func (c *Controller) NotificationVisible() bool {
	return c.notifier.Visible()
}

// StartApplication opens a verification session for a job, replacing (and
// closing) any session already in progress. One session at a time.
func (c *Controller) StartApplication(jobID string) (*pipeline.Session, error) {
	job, err := c.store.Get(jobID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && !c.session.Closed() {
		c.session.Close()
	}
	c.session = pipeline.NewSession(job, c.verifier, c.enhancer, c.store)
	return c.session, nil
}

// Session returns the active verification session, or nil.
func (c *Controller) Session() *pipeline.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// GenerateVisual generates and attaches an illustrative photo for a job.
func (c *Controller) GenerateVisual(ctx context.Context, jobID string) error {
	return c.enricher.Generate(ctx, jobID)
}

// GeneratingVisual reports whether a visual is being generated for a job.
func (c *Controller) GeneratingVisual(jobID string) bool {
	return c.enricher.Generating(jobID)
}
