package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaseddie/globalpath-agent/internal/pipeline"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := types.Job{
		ID:          "4",
		Title:       "Registered Nurse",
		Company:     "CareFirst Hospital",
		Location:    "London, UK",
		Region:      types.RegionEurope,
		Type:        types.TypeProfessional,
		SubCategory: "Healthcare",
		Site:        types.SiteGoogle,
		PostDate:    "2 days ago",
		SalaryHint:  "£38,000/yr",
		Description: "Staff nurse for an NHS partner hospital.",
	}

	p.PrintJob(job, true)
	output := buf.String()

	assert.Contains(t, output, "REGISTERED NURSE")
	assert.Contains(t, output, "CareFirst Hospital")
	assert.Contains(t, output, "London, UK")
	assert.Contains(t, output, "Documents verified")
}

func TestPrintJobList_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobList(nil)

	assert.Contains(t, buf.String(), "No jobs match")
}

func TestPrintSteps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	steps := []pipeline.StepView{
		{Kind: pipeline.StepPassport, Label: "Passport Verification", Status: pipeline.StatusCompleted},
		{Kind: pipeline.StepMedical, Label: "GAMCA Medical Report", Status: pipeline.StatusFailed},
		{Kind: pipeline.StepPolice, Label: "Police Clearance Certificate", Status: pipeline.StatusVerifying},
		{Kind: pipeline.StepSelfie, Label: "Professional Selfie", Status: pipeline.StatusPending},
	}

	p.PrintSteps(steps, 25)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT VERIFICATION")
	assert.Contains(t, output, "Passport Verification")
	assert.Contains(t, output, "Progress: 25%")
}

func TestPrintVerdict_Rejected(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVerdict("Passport Verification", types.VerificationResult{
		Valid:      false,
		Confidence: 20,
		Issues:     []string{"Document appears expired."},
	})
	output := buf.String()

	assert.Contains(t, output, "REJECTED")
	assert.Contains(t, output, "20%")
	assert.Contains(t, output, "Document appears expired.")
}

func TestPrintVerdict_AcceptedWithExtraction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVerdict("Passport Verification", types.VerificationResult{
		Valid:      true,
		Confidence: 92,
		Issues:     []string{},
		Extracted:  &types.ExtractedFields{Name: "A. Candidate", DocumentType: "Passport"},
	})
	output := buf.String()

	assert.Contains(t, output, "ACCEPTED")
	assert.Contains(t, output, "A. Candidate")
}

func TestPrintSessionSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSessionSummary(types.Job{Title: "Industrial Welder", Company: "SteelFoundry EU"}, "X7K2P9")
	output := buf.String()

	assert.Contains(t, output, "APPLICATION SUBMITTED")
	assert.Contains(t, output, "X7K2P9")
	assert.Contains(t, output, "Industrial Welder")
}
