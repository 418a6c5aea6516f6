package types

// SubCategoryAll and SiteAll are the unconstrained values for the free-form
// facets. They mirror RegionAll/TypeAll for the enum facets.
const (
	SubCategoryAll = "ALL"
	SiteAll        = "ALL"
)

// FilterCriteria holds the five independent filter facets. The zero-ish
// defaults (empty search, ALL everywhere) mean "no constraint".
type FilterCriteria struct {
	Search      string  `json:"search"`
	Region      Region  `json:"region"`
	Type        JobType `json:"type"`
	SubCategory string  `json:"sub_category"`
	Site        string  `json:"site"`
}

// DefaultCriteria returns criteria with every facet unconstrained.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Region:      RegionAll,
		Type:        TypeAll,
		SubCategory: SubCategoryAll,
		Site:        SiteAll,
	}
}

// Active reports whether any facet differs from its default.
func (c FilterCriteria) Active() bool {
	return c.Search != "" ||
		c.Region != RegionAll ||
		c.Type != TypeAll ||
		c.SubCategory != SubCategoryAll ||
		c.Site != SiteAll
}
