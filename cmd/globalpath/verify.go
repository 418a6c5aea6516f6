package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaseddie/globalpath-agent/internal/app"
	"github.com/kaseddie/globalpath-agent/internal/observability"
	"github.com/kaseddie/globalpath-agent/internal/pipeline"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <job-id>",
	Short: "Run document verification for a job without submitting",
	Long:  "Run the provided documents through AI verification and report each verdict. Unlike apply, the application is not submitted even when all steps pass; use this to pre-check documents.",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

var (
	verifyPassport string
	verifyMedical  string
	verifyPolice   string
	verifySelfie   string
	verifyAPIKey   string
)

func init() {
	verifyCmd.Flags().StringVar(&verifyPassport, "passport", "", "Path to the passport document image")
	verifyCmd.Flags().StringVar(&verifyMedical, "medical", "", "Path to the GAMCA medical report image")
	verifyCmd.Flags().StringVar(&verifyPolice, "police", "", "Path to the police clearance certificate image")
	verifyCmd.Flags().StringVar(&verifySelfie, "selfie", "", "Path to the professional selfie image")
	verifyCmd.Flags().StringVar(&verifyAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	documents := map[pipeline.Kind]string{
		pipeline.StepPassport: verifyPassport,
		pipeline.StepMedical:  verifyMedical,
		pipeline.StepPolice:   verifyPolice,
		pipeline.StepSelfie:   verifySelfie,
	}
	provided := 0
	for _, path := range documents {
		if path != "" {
			provided++
		}
	}
	if provided == 0 {
		return fmt.Errorf("at least one document flag is required (--passport, --medical, --police, --selfie)")
	}

	ctx := context.Background()

	gemini, client, err := newCapabilities(ctx, verifyAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	ctrl := app.New(app.Options{Verifier: gemini, Enhancer: gemini, Generator: gemini})

	session, err := ctrl.StartApplication(args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	printer := observability.NewPrinter(os.Stdout)
	fmt.Printf("Checking documents for %q\n\n", session.Job().Title)

	if err := uploadDocuments(ctx, session, documents, printer); err != nil {
		return err
	}

	if session.Complete() {
		fmt.Println("\nAll documents would be accepted. Run apply to submit.")
	}
	return nil
}
