package summarize

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/untyped/mesgnum"
	"github.com/muktihari/fit/proto"

	"github.com/healthquery/cli/internal/models"
)

// FITSummarizer decodes binary fitness-device files and keeps only the
// per-second "record" telemetry messages.
type FITSummarizer struct{}

func NewFITSummarizer() *FITSummarizer {
	return &FITSummarizer{}
}

func (s *FITSummarizer) Name() string { return "fit" }

func (s *FITSummarizer) Extensions() []string { return []string{".fit"} }

func (s *FITSummarizer) Summarize(filePath string) (models.Summary, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	dec := decoder.New(bufio.NewReader(f))
	fit, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	return buildFITSummary(filepath.Base(filePath), fit.Messages), nil
}

// buildFITSummary reduces decoded messages to a summary. The field list
// is taken from the first record message; records with diverging fields
// are still counted and sampled but do not widen the reported schema.
func buildFITSummary(fileName string, messages []proto.Message) *models.FITSummary {
	summary := &models.FITSummary{
		File:   fileName,
		Fields: []string{},
	}
	for _, mesg := range messages {
		if mesg.Num != mesgnum.Record {
			continue
		}
		if summary.TotalRecords == 0 {
			for _, field := range mesg.Fields {
				summary.Fields = append(summary.Fields, field.Name)
			}
		}
		summary.TotalRecords++
		if len(summary.Sample) < SampleSize {
			rec := make(models.Record, 0, len(mesg.Fields))
			for _, field := range mesg.Fields {
				rec = append(rec, models.Field{Name: field.Name, Value: field.Value.Any()})
			}
			summary.Sample = append(summary.Sample, rec)
		}
	}
	return summary
}
