// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

// PrintScores outputs the overall and per-section scores.
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f (%s)\n", result.OverallScore, result.ScoreLabel))
	sb.WriteString(fmt.Sprintf("ATS:      %.1f\n", result.ATSScore))
	sb.WriteString("\n")

	names := make([]string, 0, len(result.Sections))
	for name := range result.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		section := result.Sections[name]
		sb.WriteString(fmt.Sprintf("%-12s %.1f\n", name+":", section.Score))
		for _, issue := range section.Issues {
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
	}

	p.printBox("Scores", strings.TrimRight(sb.String(), "\n"))
}

// PrintSkills outputs the extracted skill groups.
func (p *Printer) PrintSkills(skills types.SkillGroups) {
	var sb strings.Builder

	if len(skills.Technical) > 0 {
		sb.WriteString("Technical:\n")
		count := min(len(skills.Technical), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := skills.Technical[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, x%d)\n", s.Name, s.Proficiency, s.Count))
		}
		if len(skills.Technical) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills.Technical)-maxItemsToShow))
		}
	}

	if len(skills.Soft) > 0 {
		sb.WriteString("Soft:\n")
		count := min(len(skills.Soft), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", skills.Soft[i].Name))
		}
		if len(skills.Soft) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills.Soft)-maxItemsToShow))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No skills detected")
	}

	p.printBox("Skills", strings.TrimRight(sb.String(), "\n"))
}

// PrintExperience outputs the parsed experience entries.
func (p *Printer) PrintExperience(entries []types.ExperienceEntry) {
	var sb strings.Builder

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		end := "Present"
		if e.EndDate != nil {
			end = e.EndDate.String()
		}
		sb.WriteString(e.Title)
		if e.Company != "" {
			sb.WriteString(" @ " + e.Company)
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s – %s (%d months, %d bullets)\n",
			e.StartDate.String(), end, e.DurationMonths, len(e.Responsibilities)))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(entries)-maxItemsToShow))
	}
	if sb.Len() == 0 {
		sb.WriteString("No experience entries parsed")
	}

	p.printBox("Experience", strings.TrimRight(sb.String(), "\n"))
}

// PrintSuggestions outputs improvement suggestions in priority order.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	var sb strings.Builder

	for _, s := range suggestions {
		sb.WriteString(fmt.Sprintf("[%s/%s] %s\n", s.Priority, s.Category, s.Text))
		if s.Rationale != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", s.Rationale))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("No suggestions")
	}

	p.printBox("Suggestions", strings.TrimRight(sb.String(), "\n"))
}

// PrintMetrics outputs the content quality metrics.
func (p *Printer) PrintMetrics(m types.ContentMetrics) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Action verb ratio:    %.2f\n", m.ActionVerbRatio))
	sb.WriteString(fmt.Sprintf("Quantification rate:  %.2f\n", m.QuantificationRate))
	sb.WriteString(fmt.Sprintf("Keyword density:      %.2f per 100 words\n", m.KeywordDensity))
	sb.WriteString(fmt.Sprintf("Avg bullet length:    %.1f words\n", m.AvgBulletLength))
	sb.WriteString(fmt.Sprintf("Total words:          %d\n", m.TotalWords))
	sb.WriteString(fmt.Sprintf("Experience:           %.1f years", m.TotalExperienceYears))

	p.printBox("Content Metrics", sb.String())
}

// PrintResult outputs the full analysis in reading order.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintScores(result)
	p.PrintMetrics(result.Metrics)
	p.PrintSkills(result.Skills)
	p.PrintExperience(result.Experience)
	p.PrintSuggestions(result.Suggestions)
}
