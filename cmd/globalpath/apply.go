package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kaseddie/globalpath-agent/internal/app"
	"github.com/kaseddie/globalpath-agent/internal/observability"
	"github.com/kaseddie/globalpath-agent/internal/pipeline"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a job by verifying visa documents",
	Long:  "Start a verification session for a job and run the provided documents through AI verification. The four steps run concurrently; the application is submitted once all four complete.",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

var (
	applyPassport string
	applyMedical  string
	applyPolice   string
	applySelfie   string
	applyAPIKey   string
)

func init() {
	applyCmd.Flags().StringVar(&applyPassport, "passport", "", "Path to the passport document image")
	applyCmd.Flags().StringVar(&applyMedical, "medical", "", "Path to the GAMCA medical report image")
	applyCmd.Flags().StringVar(&applyPolice, "police", "", "Path to the police clearance certificate image")
	applyCmd.Flags().StringVar(&applySelfie, "selfie", "", "Path to the professional selfie image")
	applyCmd.Flags().StringVar(&applyAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, args []string) error {
	documents := map[pipeline.Kind]string{
		pipeline.StepPassport: applyPassport,
		pipeline.StepMedical:  applyMedical,
		pipeline.StepPolice:   applyPolice,
		pipeline.StepSelfie:   applySelfie,
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

	gemini, client, err := newCapabilities(ctx, applyAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	ctrl := app.New(app.Options{Verifier: gemini, Enhancer: gemini, Generator: gemini})

	session, err := ctrl.StartApplication(args[0])
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	fmt.Printf("Applying to %q — reference code %s\n\n", session.Job().Title, session.Code())

	if err := uploadDocuments(ctx, session, documents, printer); err != nil {
		return err
	}

	if !session.Complete() {
		fmt.Println("\nNot all documents verified; the application was not submitted.")
		return nil
	}

	if err := session.Finish(); err != nil {
		return fmt.Errorf("failed to submit application: %w", err)
	}
	printer.PrintSessionSummary(session.Job(), session.Code())
	return nil
}

// uploadDocuments runs the provided documents through their verification
// steps concurrently, then prints the per-step verdicts and overall progress.
// Distinct steps verify in parallel; each result lands in its own slot.
func uploadDocuments(ctx context.Context, session *pipeline.Session, documents map[pipeline.Kind]string, printer *observability.Printer) error {
	var mu sync.Mutex
	views := make(map[pipeline.Kind]pipeline.StepView, len(documents))
	g, gctx := errgroup.WithContext(ctx)
	for kind, path := range documents {
		if path == "" {
			continue
		}
		kind, path := kind, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s document: %w", kind, err)
			}
			view, err := session.Upload(gctx, kind, data, mimeTypeFor(path))
			if err != nil {
				return fmt.Errorf("%s upload rejected: %w", kind, err)
			}
			mu.Lock()
			views[kind] = view
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, kind := range pipeline.StepOrder {
		if view, ok := views[kind]; ok && view.Result != nil {
			printer.PrintVerdict(view.Label, *view.Result)
		}
	}
	printer.PrintSteps(session.Steps(), session.Progress())
	return nil
}

func mimeTypeFor(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}
