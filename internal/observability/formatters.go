// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/jonathan/skillmatch/internal/types"
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

// PrintExtractedSkills outputs a human-readable summary of an extraction.
func (p *Printer) PrintExtractedSkills(skills *types.ExtractedSkills) {
	if skills == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", skills.Confidence))
	sb.WriteString("\n")

	writeSkillList(&sb, "Technical", skills.Technical)
	writeSkillList(&sb, "Soft", skills.Soft)
	writeSkillList(&sb, "Green", skills.Green)

	if len(skills.All) > 0 {
		sb.WriteString(fmt.Sprintf("Total distinct skills: %d\n", len(skills.All)))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchResults outputs a ranked-result summary: one line per result
// with its similarity, blended score and skill coverage.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	var sb strings.Builder

	if len(results) == 0 {
		sb.WriteString("No candidates passed the similarity threshold.")
		p.printBox("MATCH RESULTS", sb.String())
		return
	}

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, r.Candidate.Title))
		sb.WriteString(fmt.Sprintf("   similarity %.3f", r.Similarity))
		if r.Blended > 0 {
			sb.WriteString(fmt.Sprintf("  blended %.3f", r.Blended))
		}
		sb.WriteString("\n")
		if len(r.MatchedSkills) > 0 || len(r.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   skills %d/%d matched\n",
				len(r.MatchedSkills), len(r.MatchedSkills)+len(r.MissingSkills)))
		}
	}

	p.printBox(fmt.Sprintf("MATCH RESULTS (%d)", len(results)), strings.TrimRight(sb.String(), "\n"))
}

// PrintModelInfo outputs the embedding model identity and cache statistics.
func (p *Printer) PrintModelInfo(info embedding.ModelInfo) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Model:      %s\n", info.ModelName))
	sb.WriteString(fmt.Sprintf("Dimension:  %d\n", info.Dimension))
	sb.WriteString(fmt.Sprintf("Cache:      %d entries\n", info.CacheSize))
	sb.WriteString(fmt.Sprintf("Hits/Miss:  %d/%d (%.1f%% hit rate)", info.CacheHits, info.CacheMisses, info.CacheHitRate))

	p.printBox("EMBEDDING MODEL", sb.String())
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("%s:\n", label))
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
