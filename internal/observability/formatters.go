// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaseddie/globalpath-agent/internal/pipeline"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxIssuesToShow is the default number of issues to display per verdict
	maxIssuesToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable card for a single listing.
func (p *Printer) PrintJob(job types.Job, verified bool) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:   %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location:  %s (%s)\n", job.Location, job.Region))
	sb.WriteString(fmt.Sprintf("Type:      %s / %s\n", job.Type, job.SubCategory))
	sb.WriteString(fmt.Sprintf("Source:    %s, %s\n", job.Site, job.PostDate))
	if job.SalaryHint != "" {
		sb.WriteString(fmt.Sprintf("Salary:    %s\n", job.SalaryHint))
	}
	if verified {
		sb.WriteString("Status:    Documents verified\n")
	}
	sb.WriteString("\n")
	sb.WriteString(job.Overview())

	p.printBox(strings.ToUpper(job.Title), sb.String())
}

// PrintJobList outputs a compact line per visible listing.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobList(jobs []types.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(p.out, "No jobs match the current filters.")
		return
	}
	for _, job := range jobs {
		fmt.Fprintf(p.out, "%-3s %-38s %-22s %s\n", job.ID, job.Title, job.Company, job.Location)
	}
	fmt.Fprintf(p.out, "\n%d job(s)\n", len(jobs))
}

// PrintSteps outputs the state of every verification step plus overall
// progress.
func (p *Printer) PrintSteps(steps []pipeline.StepView, progress int) {
	var sb strings.Builder

	for _, step := range steps {
		marker := statusMarker(step.Status)
		sb.WriteString(fmt.Sprintf("%s %-32s %s\n", marker, step.Label, step.Status))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Progress: %d%%", progress))

	p.printBox("DOCUMENT VERIFICATION", sb.String())
}

// PrintVerdict outputs a single step's verification outcome.
func (p *Printer) PrintVerdict(label string, result types.VerificationResult) {
	var sb strings.Builder

	if result.Valid {
		sb.WriteString("Verdict:     ACCEPTED\n")
	} else {
		sb.WriteString("Verdict:     REJECTED\n")
	}
	sb.WriteString(fmt.Sprintf("Confidence:  %.0f%%\n", result.Confidence))

	if len(result.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(result.Issues), maxIssuesToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Issues[i]))
		}
		if len(result.Issues) > maxIssuesToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Issues)-maxIssuesToShow))
		}
	}

	if result.Extracted != nil {
		sb.WriteString("\nExtracted:\n")
		if result.Extracted.Name != "" {
			sb.WriteString(fmt.Sprintf("  Name:    %s\n", result.Extracted.Name))
		}
		if result.Extracted.DocumentType != "" {
			sb.WriteString(fmt.Sprintf("  Type:    %s\n", result.Extracted.DocumentType))
		}
		if result.Extracted.Expiry != "" {
			sb.WriteString(fmt.Sprintf("  Expiry:  %s\n", result.Extracted.Expiry))
		}
	}

	p.printBox(strings.ToUpper(label), sb.String())
}

// PrintSessionSummary outputs the reference code and job for a finished
// verification session.
func (p *Printer) PrintSessionSummary(job types.Job, code string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:        %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:    %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Reference:  %s\n", code))
	sb.WriteString("\nAll documents verified. The application has been")
	sb.WriteString("\nsubmitted to the employer.")

	p.printBox("APPLICATION SUBMITTED", sb.String())
}

// PrintAlert outputs a captured job alert.
func (p *Printer) PrintAlert(alert types.JobAlert) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Email:   %s\n", alert.Email))
	sb.WriteString(fmt.Sprintf("Search:  %s\n", emptyDash(alert.Search)))
	sb.WriteString(fmt.Sprintf("Region:  %s\n", alert.Region))
	sb.WriteString(fmt.Sprintf("Type:    %s", alert.Type))

	p.printBox(fmt.Sprintf("ALERT %s", alert.ID), sb.String())
}

func statusMarker(status pipeline.Status) string {
	switch status {
	case pipeline.StatusCompleted:
		return "[✓]"
	case pipeline.StatusFailed:
		return "[✗]"
	case pipeline.StatusVerifying:
		return "[…]"
	default:
		return "[ ]"
	}
}

func emptyDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
