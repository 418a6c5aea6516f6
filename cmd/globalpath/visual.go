package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaseddie/globalpath-agent/internal/app"
)

var visualCmd = &cobra.Command{
	Use:   "visual <job-id>",
	Short: "Generate an illustrative photo for a job listing",
	Long:  "Generate a photorealistic scene for a job listing from its title and location, attach it to the listing, and optionally write the image to a file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runVisual,
}

var (
	visualOutputFile string
	visualAPIKey     string
)

func init() {
	visualCmd.Flags().StringVarP(&visualOutputFile, "out", "o", "", "Path to write the generated image to")
	visualCmd.Flags().StringVar(&visualAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(visualCmd)
}

func runVisual(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	gemini, client, err := newCapabilities(ctx, visualAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	ctrl := app.New(app.Options{Generator: gemini})

	if err := ctrl.GenerateVisual(ctx, args[0]); err != nil {
		return err
	}

	job, err := ctrl.Job(args[0])
	if err != nil {
		return err
	}
	if job.ImageRef == "" {
		fmt.Println("No image was generated for this listing.")
		return nil
	}
	fmt.Printf("Generated visual for %q\n", job.Title)

	if visualOutputFile == "" {
		return nil
	}
	data, err := decodeDataURL(job.ImageRef)
	if err != nil {
		return err
	}
	if err := os.WriteFile(visualOutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	fmt.Printf("Image written to %s\n", visualOutputFile)
	return nil
}

// decodeDataURL extracts the raw bytes from a base64 data URL.
func decodeDataURL(ref string) ([]byte, error) {
	_, payload, found := strings.Cut(ref, ";base64,")
	if !found {
		return nil, fmt.Errorf("image reference is not a base64 data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return data, nil
}
