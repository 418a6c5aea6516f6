// Package filter implements the catalog filter engine: multi-facet job
// filtering, dependent facet option derivation, and the sub-category
// reconciliation rule. Every function here is pure; the engine owns no state.
package filter

import (
	"slices"
	"strings"

	"github.com/kaseddie/globalpath-agent/internal/types"
)

// Apply returns the jobs matching every active criterion. Inactive criteria
// impose no constraint. Search is a case-insensitive substring match against
// title, description, company, and location; a job matches when any of those
// fields contains the search text. Facets combine with logical AND, so the
// evaluation order never affects the result.
func Apply(jobs []types.Job, c types.FilterCriteria) []types.Job {
	out := make([]types.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, c) {
			out = append(out, j)
		}
	}
	return out
}

// Matches reports whether a single job satisfies all active criteria.
func Matches(j types.Job, c types.FilterCriteria) bool {
	if c.Search != "" && !matchesSearch(j, c.Search) {
		return false
	}
	if c.Region != types.RegionAll && j.Region != c.Region {
		return false
	}
	if c.Type != types.TypeAll && j.Type != c.Type {
		return false
	}
	if c.SubCategory != types.SubCategoryAll && j.SubCategory != c.SubCategory {
		return false
	}
	if c.Site != types.SiteAll && string(j.Site) != c.Site {
		return false
	}
	return true
}

func matchesSearch(j types.Job, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{j.Title, j.Description, j.Company, j.Location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SubCategories returns the sorted distinct sub-categories offered under the
// given job-type constraint. It is derived from the full catalog, never from
// an already-filtered result, so switching job type always reveals the
// complete relevant list.
func SubCategories(jobs []types.Job, jobType types.JobType) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, j := range jobs {
		if jobType != types.TypeAll && j.Type != jobType {
			continue
		}
		if _, ok := seen[j.SubCategory]; ok {
			continue
		}
		seen[j.SubCategory] = struct{}{}
		cats = append(cats, j.SubCategory)
	}
	slices.Sort(cats)
	return cats
}

// Sites returns the sorted distinct originating sites across the whole
// catalog. Site options are never narrowed by other filters.
func Sites(jobs []types.Job) []string {
	seen := make(map[string]struct{})
	var sites []string
	for _, j := range jobs {
		s := string(j.Site)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		sites = append(sites, s)
	}
	slices.Sort(sites)
	return sites
}

// Reconcile enforces the facet dependency invariant: a sub-category
// constraint must be a value currently offered under the job-type constraint.
// It returns criteria with the sub-category reset to unconstrained when the
// current selection is absent from options, and the input unchanged
// otherwise. Reconcile is idempotent and is evaluated as a reaction to
// option-set changes, not as part of Apply.
func Reconcile(c types.FilterCriteria, options []string) types.FilterCriteria {
	if c.SubCategory == types.SubCategoryAll {
		return c
	}
	if slices.Contains(options, c.SubCategory) {
		return c
	}
	c.SubCategory = types.SubCategoryAll
	return c
}
