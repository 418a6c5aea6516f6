package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaseddie/globalpath-agent/internal/app"
	"github.com/kaseddie/globalpath-agent/internal/observability"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job listings matching the given filters",
	Long:  "List the curated job catalog, narrowed by search text, region, job type, sub-category, and originating site. All facets combine with AND.",
	RunE:  runJobs,
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show the full card for one job listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

var jobsFilters filterFlags

func init() {
	jobsFilters.register(jobsCmd)
	jobsCmd.AddCommand(jobsShowCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(_ *cobra.Command, _ []string) error {
	ctrl := app.New(app.Options{})
	if err := jobsFilters.apply(ctrl); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobList(ctrl.VisibleJobs())

	if ctrl.HasActiveFilters() {
		criteria := ctrl.Criteria()
		fmt.Printf("Filters: search=%q region=%s type=%s sub-category=%s site=%s\n",
			criteria.Search, criteria.Region, criteria.Type, criteria.SubCategory, criteria.Site)
	}
	fmt.Printf("Sub-categories for %s: %s\n", ctrl.Criteria().Type, strings.Join(ctrl.SubCategoryOptions(), ", "))
	return nil
}

func runJobsShow(_ *cobra.Command, args []string) error {
	ctrl := app.New(app.Options{})

	job, err := ctrl.Job(args[0])
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJob(job, ctrl.UserVerified(job.ID))
	return nil
}
