package summarize

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/healthquery/cli/internal/models"
)

// GPXSummarizer reduces GPS tracks (tracks > segments > points) to a
// point count, time window, and sample points.
type GPXSummarizer struct{}

func NewGPXSummarizer() *GPXSummarizer {
	return &GPXSummarizer{}
}

func (s *GPXSummarizer) Name() string { return "gpx" }

func (s *GPXSummarizer) Extensions() []string { return []string{".gpx"} }

func (s *GPXSummarizer) Summarize(filePath string) (models.Summary, error) {
	doc, err := gpx.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	summary := &models.GPXSummary{
		File:      filepath.Base(filePath),
		StartTime: "N/A",
		EndTime:   "N/A",
	}
	var last string
	for _, track := range doc.Tracks {
		for _, segment := range track.Segments {
			for _, point := range segment.Points {
				pt := models.TrackPoint{
					Latitude:  point.Latitude,
					Longitude: point.Longitude,
					HeartRate: heartRate(point.Extensions.Nodes),
				}
				if !point.Timestamp.IsZero() {
					pt.Time = point.Timestamp.Format("2006-01-02 15:04:05 -0700")
				}
				if point.Elevation.NotNull() {
					ele := point.Elevation.Value()
					pt.Elevation = &ele
				}
				if summary.TotalPoints == 0 {
					summary.StartTime = pt.Time
				}
				last = pt.Time
				summary.TotalPoints++
				if len(summary.Sample) < SampleSize {
					summary.Sample = append(summary.Sample, pt)
				}
			}
		}
	}
	if summary.TotalPoints > 0 {
		summary.EndTime = last
	}
	return summary, nil
}

// heartRate returns the raw text of the first extension node whose tag
// contains "hr" (Garmin exports nest it as TrackPointExtension/hr). The
// value is passed through unvalidated.
func heartRate(nodes []gpx.ExtensionNode) string {
	for _, node := range nodes {
		if strings.Contains(strings.ToLower(node.XMLName.Local), "hr") {
			return node.Data
		}
		if hr := heartRate(node.Nodes); hr != "" {
			return hr
		}
	}
	return ""
}
