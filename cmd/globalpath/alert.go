package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaseddie/globalpath-agent/internal/app"
	"github.com/kaseddie/globalpath-agent/internal/observability"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Create a job alert from the given filters",
	Long:  "Capture a job alert: a contact email plus a snapshot of the search text, region, and job type facets. Alerts are held in memory for the life of the process.",
	RunE:  runAlert,
}

var alertListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the alerts captured during this process run",
	Long:  "List captured alerts. Alerts live only in process memory, so a fresh invocation starts with none.",
	RunE:  runAlertList,
}

var (
	alertEmail   string
	alertFilters filterFlags
)

func init() {
	alertCmd.Flags().StringVarP(&alertEmail, "email", "e", "", "Contact email for the alert (required)")
	alertFilters.register(alertCmd)

	alertCmd.AddCommand(alertListCmd)
	rootCmd.AddCommand(alertCmd)
}

func runAlertList(_ *cobra.Command, _ []string) error {
	ctrl := app.New(app.Options{})

	list := ctrl.Alerts()
	if len(list) == 0 {
		fmt.Println("No alerts have been captured in this process.")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, alert := range list {
		printer.PrintAlert(alert)
	}
	return nil
}

func runAlert(_ *cobra.Command, _ []string) error {
	req := types.CreateAlertRequest{Email: alertEmail}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid alert request: %w", err)
	}

	ctrl := app.New(app.Options{})
	if err := alertFilters.apply(ctrl); err != nil {
		return err
	}

	alert, created := ctrl.CreateAlert(alertEmail)
	if !created {
		return fmt.Errorf("alert was not created")
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAlert(*alert)
	fmt.Println("Alert created! We'll notify you when matching jobs are posted.")
	return nil
}
