package main

import (
	"github.com/spf13/cobra"

	"github.com/kaseddie/globalpath-agent/internal/app"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

// filterFlags holds the five facet values shared by the commands that operate
// on the filtered catalog view.
type filterFlags struct {
	search      string
	region      string
	jobType     string
	subCategory string
	site        string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Free-text search across title, description, company, and location")
	cmd.Flags().StringVar(&f.region, "region", string(types.RegionAll), "Region facet (ALL, GCC, EUROPE)")
	cmd.Flags().StringVar(&f.jobType, "type", string(types.TypeAll), "Job type facet (ALL, blue-collar, professional)")
	cmd.Flags().StringVar(&f.subCategory, "sub-category", types.SubCategoryAll, "Sub-category facet (depends on --type)")
	cmd.Flags().StringVar(&f.site, "site", types.SiteAll, "Originating site facet (e.g. bayt)")
}

// apply pushes the facet values into the controller in the same order a user
// would set them, so the type-dependent sub-category reconciliation runs
// before the explicit sub-category choice.
func (f *filterFlags) apply(ctrl *app.Controller) error {
	region, err := types.ParseRegion(f.region)
	if err != nil {
		return err
	}
	jobType, err := types.ParseJobType(f.jobType)
	if err != nil {
		return err
	}

	ctrl.SetSearch(f.search)
	ctrl.SetRegion(region)
	ctrl.SetJobType(jobType)
	if f.subCategory != types.SubCategoryAll {
		ctrl.SetSubCategory(f.subCategory)
	}
	ctrl.SetSite(f.site)
	return nil
}
