// Package prompt renders summary records into the single text block sent
// to the language model.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/healthquery/cli/internal/models"
)

const separatorWidth = 40

// defaultQuestions is appended when the user supplies no query.
const defaultQuestions = "Please provide a comprehensive analysis including:\n" +
	"1. Notable patterns or trends\n" +
	"2. Unusual findings\n" +
	"3. Actionable health insights\n" +
	"4. Areas for improvement\n"

// Build renders summaries plus an optional user query into one prompt.
// Output is deterministic for a fixed (summaries, userQuery, today):
// samples and stats render in recorded order, never map order.
func Build(summaries []models.Summary, userQuery string, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today's date is %s. Always use this as the current date.\n\n", today.Format("2006-01-02"))
	b.WriteString("Analyze this Apple Health CSV data and provide insights.\n\n")

	for _, summary := range summaries {
		fmt.Fprintf(&b, "File: %s\n", summary.SourceFile())
		switch s := summary.(type) {
		case *models.GPXSummary:
			writeGPX(&b, s)
		case *models.FITSummary:
			writeFIT(&b, s)
		case *models.CSVSummary:
			writeCSV(&b, s)
		}
		b.WriteString("\n" + strings.Repeat("=", separatorWidth) + "\n")
	}

	if userQuery != "" {
		fmt.Fprintf(&b, "\nUser Query: %s\n", userQuery)
	} else {
		b.WriteString(defaultQuestions)
	}
	return b.String()
}

func writeCSV(b *strings.Builder, s *models.CSVSummary) {
	fmt.Fprintf(b, "Total Records: %d\n", s.TotalRecords)
	fmt.Fprintf(b, "Columns: [%s]\n", strings.Join(s.Columns, ", "))
	fmt.Fprintf(b, "Date Range: %s\n", s.DateRange)
	for _, cs := range s.Stats {
		fmt.Fprintf(b, "%s: mean=%s, min=%s, max=%s\n",
			cs.Column, models.FormatFloat(cs.Mean), models.FormatValue(cs.Min), models.FormatValue(cs.Max))
	}
	b.WriteString("Sample Rows:\n")
	for _, row := range s.Sample {
		b.WriteString(writeRecord(row) + "\n")
	}
}

func writeGPX(b *strings.Builder, s *models.GPXSummary) {
	b.WriteString("Type: GPX\n")
	fmt.Fprintf(b, "Total Points: %d\n", s.TotalPoints)
	fmt.Fprintf(b, "Start: %s\n", s.StartTime)
	fmt.Fprintf(b, "End: %s\n", s.EndTime)
	b.WriteString("Sample Points:\n")
	for _, pt := range s.Sample {
		fmt.Fprintf(b, "{time: %s, latitude: %s, longitude: %s", pt.Time,
			models.FormatFloat(pt.Latitude), models.FormatFloat(pt.Longitude))
		if pt.Elevation != nil {
			fmt.Fprintf(b, ", elevation: %s", models.FormatFloat(*pt.Elevation))
		}
		if pt.HeartRate != "" {
			fmt.Fprintf(b, ", heart_rate: %s", pt.HeartRate)
		}
		b.WriteString("}\n")
	}
}

func writeFIT(b *strings.Builder, s *models.FITSummary) {
	b.WriteString("Type: FIT\n")
	fmt.Fprintf(b, "Total Records: %d\n", s.TotalRecords)
	fmt.Fprintf(b, "Fields: [%s]\n", strings.Join(s.Fields, ", "))
	b.WriteString("Sample Records:\n")
	for _, rec := range s.Sample {
		b.WriteString(writeRecord(rec) + "\n")
	}
}

// writeRecord renders one sample record in its recorded field order.
func writeRecord(rec models.Record) string {
	parts := make([]string, 0, len(rec))
	for _, f := range rec {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, models.FormatValue(f.Value)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
