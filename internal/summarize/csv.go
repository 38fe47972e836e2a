package summarize

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/healthquery/cli/internal/models"
)

// CSVSummarizer loads tabular exports through DuckDB's read_csv_auto,
// which handles delimiter sniffing and numeric type inference.
type CSVSummarizer struct{}

func NewCSVSummarizer() *CSVSummarizer {
	return &CSVSummarizer{}
}

func (s *CSVSummarizer) Name() string { return "csv" }

func (s *CSVSummarizer) Extensions() []string { return []string{".csv"} }

// dateColumn is the only column a date range is derived from.
const dateColumn = "Date"

// numericTypes are the DuckDB column types stats are computed for.
var numericTypes = map[string]bool{
	"TINYINT": true, "SMALLINT": true, "INTEGER": true, "BIGINT": true,
	"UTINYINT": true, "USMALLINT": true, "UINTEGER": true, "UBIGINT": true,
	"FLOAT": true, "DOUBLE": true,
}

func (s *CSVSummarizer) Summarize(filePath string) (models.Summary, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer db.Close()

	escaped := strings.ReplaceAll(filePath, "'", "''")
	rows, err := db.Query(fmt.Sprintf("SELECT * FROM read_csv_auto('%s')", escaped))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", filePath, err)
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column types of %s: %w", filePath, err)
	}

	type accum struct {
		count int
		sum   float64
		min   float64
		max   float64
		minV  interface{}
		maxV  interface{}
	}
	stats := make(map[int]*accum)
	dateIdx := -1
	for i, name := range columns {
		if numericTypes[colTypes[i].DatabaseTypeName()] {
			stats[i] = &accum{}
		}
		if name == dateColumn {
			dateIdx = i
		}
	}

	summary := &models.CSVSummary{
		File:      filepath.Base(filePath),
		Columns:   columns,
		DateRange: "N/A",
	}

	var dateMin, dateMax string
	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", filePath, err)
		}
		summary.TotalRecords++

		for i, a := range stats {
			f, ok := toFloat64(values[i])
			if !ok {
				continue // NULL or non-numeric cell
			}
			if a.count == 0 || f < a.min {
				a.min, a.minV = f, values[i]
			}
			if a.count == 0 || f > a.max {
				a.max, a.maxV = f, values[i]
			}
			a.sum += f
			a.count++
		}

		if dateIdx >= 0 && values[dateIdx] != nil {
			d := models.FormatValue(values[dateIdx])
			if dateMin == "" || d < dateMin {
				dateMin = d
			}
			if d > dateMax {
				dateMax = d
			}
		}

		if len(summary.Sample) < SampleSize {
			row := make(models.Record, len(columns))
			for i, name := range columns {
				row[i] = models.Field{Name: name, Value: values[i]}
			}
			summary.Sample = append(summary.Sample, row)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading %s: %w", filePath, err)
	}

	if dateMin != "" {
		summary.DateRange = dateMin + " to " + dateMax
	}
	for i, name := range columns {
		a, ok := stats[i]
		if !ok || a.count == 0 {
			continue
		}
		summary.Stats = append(summary.Stats, models.ColumnStats{
			Column: name,
			Mean:   a.sum / float64(a.count),
			Min:    a.minV,
			Max:    a.maxV,
		})
	}
	return summary, nil
}

// toFloat64 converts the numeric types the DuckDB driver scans into.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
