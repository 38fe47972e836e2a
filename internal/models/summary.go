// Package models contains domain types for the health data analyzer.
package models

// SourceType identifies the format a summary was extracted from.
type SourceType string

const (
	SourceTypeCSV SourceType = "csv"
	SourceTypeGPX SourceType = "gpx"
	SourceTypeFIT SourceType = "fit"
)

// Summary is the fixed-shape statistics object produced per input file.
// Each format has its own concrete variant so that renderers never have
// to guess what a field holds.
type Summary interface {
	// SourceFile returns the base name of the file the summary came from.
	SourceFile() string
	// Source returns the format tag of the summary.
	Source() SourceType
}

// Field is a single named value inside a sample record.
type Field struct {
	Name  string
	Value interface{} // string, int64, float64, time.Time, or nil
}

// Record is an ordered list of fields. Order is preserved from the source
// file so that rendering is deterministic.
type Record []Field

// ColumnStats holds mean/min/max for one numeric column.
type ColumnStats struct {
	Column string
	Mean   float64
	Min    interface{}
	Max    interface{}
}

// CSVSummary summarizes a tabular health export.
type CSVSummary struct {
	File         string
	TotalRecords int
	Columns      []string
	DateRange    string        // "<min> to <max>" or "N/A"
	Stats        []ColumnStats // one entry per numeric column, in column order
	Sample       []Record      // up to 10 rows
}

func (s *CSVSummary) SourceFile() string { return s.File }
func (s *CSVSummary) Source() SourceType { return SourceTypeCSV }

// TrackPoint is a single GPS track point.
type TrackPoint struct {
	Time      string
	Latitude  float64
	Longitude float64
	Elevation *float64
	HeartRate string // raw extension text, empty when absent
}

// GPXSummary summarizes a GPS track file.
type GPXSummary struct {
	File        string
	TotalPoints int
	StartTime   string // "N/A" when the track is empty
	EndTime     string
	Sample      []TrackPoint // up to 10 points
}

func (s *GPXSummary) SourceFile() string { return s.File }
func (s *GPXSummary) Source() SourceType { return SourceTypeGPX }

// FITSummary summarizes a binary fitness-device file.
//
// Fields lists the field names of the first record message only; files
// whose records disagree on fields are reported by that first record's
// schema. Empty when the file has no record messages.
type FITSummary struct {
	File         string
	TotalRecords int
	Fields       []string
	Sample       []Record // up to 10 records
}

func (s *FITSummary) SourceFile() string { return s.File }
func (s *FITSummary) Source() SourceType { return SourceTypeFIT }
