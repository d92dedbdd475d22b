// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/jobdesk/internal/richtext"
	"github.com/jonathan/jobdesk/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
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

// PrintJobPreview outputs the human-readable summary shown on the wizard's
// preview step before submission.
func (p *Printer) PrintJobPreview(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	if job.CompanyName != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", job.CompanyName))
	}
	if loc := job.Location(); loc != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", loc))
	}
	if job.EmploymentType != "" {
		sb.WriteString(fmt.Sprintf("Contract: %s", job.EmploymentType))
		if job.WorkMode != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", job.WorkMode))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Salary:   %s\n", FormatSalary(job)))
	if job.Deadline != "" {
		sb.WriteString(fmt.Sprintf("Deadline: %s\n", job.Deadline))
	}

	if len(job.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(job.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(job.Skills[:count], ", ")))
		if len(job.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Skills)-maxItemsToShow))
		}
	}

	if job.OfferDescription != "" {
		sb.WriteString("\nDescription:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", richtext.PreviewText(job.OfferDescription, boxWidth-8)))
	}

	p.printBox("JOB PREVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalyticsSummary outputs the dashboard figures.
func (p *Printer) PrintAnalyticsSummary(summary *types.AnalyticsSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs:          %d (%d open)\n", summary.Jobs, summary.OpenJobs))
	sb.WriteString(fmt.Sprintf("Applications:  %d\n", summary.Applications))
	if summary.AvgScore != nil {
		sb.WriteString(fmt.Sprintf("Average score: %.1f\n", *summary.AvgScore))
	}

	if len(summary.ByStatus) > 0 {
		sb.WriteString("\nBy status:\n")
		for _, status := range sortedKeys(summary.ByStatus) {
			sb.WriteString(fmt.Sprintf("  %-10s %d\n", status, summary.ByStatus[status]))
		}
	}

	if len(summary.Trend30d) > 0 {
		total := 0
		for _, point := range summary.Trend30d {
			total += point.Applications
		}
		sb.WriteString(fmt.Sprintf("\nLast 30 days: %d applications\n", total))
	}

	p.printBox("ANALYTICS SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplication outputs one application row in detail.
func (p *Printer) PrintApplication(app *types.Application) {
	if app == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", app.CandidateName()))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", app.Email))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", app.Status))
	if app.Score != nil {
		sb.WriteString(fmt.Sprintf("Score:     %d\n", *app.Score))
	}
	if app.CoverLetter != "" {
		sb.WriteString("\nCover letter:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", richtext.PreviewText(app.CoverLetter, boxWidth-8)))
	}

	p.printBox("APPLICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// FormatSalary renders a job's salary range for display. Confidential
// postings never reveal figures.
func FormatSalary(job *types.Job) string {
	if job.SalaryIsConfidential {
		return "Confidential"
	}
	currency := job.SalaryCurrency
	switch {
	case job.SalaryMin != nil && job.SalaryMax != nil:
		return strings.TrimSpace(fmt.Sprintf("%d - %d %s", *job.SalaryMin, *job.SalaryMax, currency))
	case job.SalaryMin != nil:
		return strings.TrimSpace(fmt.Sprintf("From %d %s", *job.SalaryMin, currency))
	case job.SalaryMax != nil:
		return strings.TrimSpace(fmt.Sprintf("Up to %d %s", *job.SalaryMax, currency))
	}
	return "Not specified"
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
