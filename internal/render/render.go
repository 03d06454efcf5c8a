// Package render produces the scorecard report documents.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/scorecard/internal/assessment"
	"github.com/dshills/scorecard/internal/scoring"
)

// Markdown renders a scorecard report. Table rows follow input order.
func Markdown(r *scoring.Report) string {
	var b strings.Builder

	b.WriteString("# Production Readiness Scorecard Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedStamp())

	b.WriteString("## Overall\n\n")
	fmt.Fprintf(&b, "- **Score:** %s%%\n", Percent(r.Aggregate.Percent))
	fmt.Fprintf(&b, "- **Recommendation:** %s\n\n", r.Recommendation)

	if red := scoring.InZone(r.Records, scoring.ZoneRed); len(red) > 0 {
		b.WriteString("## Red zone (score &lt; 4)\n\n")
		b.WriteString("Items that need immediate attention:\n\n")
		renderZoneTable(&b, red)
	}

	if amber := scoring.InZone(r.Records, scoring.ZoneAmber); len(amber) > 0 {
		b.WriteString("## Amber zone (score 4–7)\n\n")
		b.WriteString("Items to review and improve:\n\n")
		renderZoneTable(&b, amber)
	}

	b.WriteString("## All items\n\n")
	b.WriteString("| Question ID | Applicable | Score | Zone | Comment |\n")
	b.WriteString("|-------------|------------|-------|------|---------|\n")
	for _, rec := range r.Records {
		applicable := "no"
		if rec.Applicable {
			applicable = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			rec.QuestionID, applicable, scoreCell(rec.Score), scoring.ZoneOf(rec.Score), EscapeCell(rec.Comment))
	}

	if excluded := scoring.Excluded(r.Records); len(excluded) > 0 {
		b.WriteString("\n## Not applicable\n\n")
		b.WriteString("These items were excluded from scoring:\n\n")
		b.WriteString("| Question ID | Reason |\n")
		b.WriteString("|-------------|--------|\n")
		for _, rec := range excluded {
			fmt.Fprintf(&b, "| %s | %s |\n", rec.QuestionID, EscapeCell(rec.Comment))
		}
	}

	return b.String()
}

func renderZoneTable(b *strings.Builder, records []assessment.Record) {
	b.WriteString("| Question ID | Score | Comment |\n")
	b.WriteString("|-------------|-------|---------|\n")
	for _, rec := range records {
		fmt.Fprintf(b, "| %s | %s | %s |\n", rec.QuestionID, scoreCell(rec.Score), EscapeCell(rec.Comment))
	}
	b.WriteString("\n\n")
}

func scoreCell(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// EscapeCell makes text safe inside a Markdown table cell.
func EscapeCell(s string) string {
	return cellReplacer.Replace(s)
}

// Percent formats a percentage with one decimal place.
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// JSON renders the report as indented JSON with a trailing newline.
func JSON(r *scoring.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render.JSON: %w", err)
	}
	return append(data, '\n'), nil
}
