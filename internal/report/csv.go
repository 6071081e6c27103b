// Package report renders analysis results as CSV files and console tables.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/trial"
)

// SummaryHeader returns the column names of the summary file.
func SummaryHeader() []string {
	header := []string{
		"strategy", "rules", "table", "trials",
		"min", "max", "mean", "ci_low", "ci_high", "hands",
	}
	for _, c := range payout.Categories {
		header = append(header, c.String())
	}
	return append(header, "stddev", "median", "p5", "p95", "run_id")
}

// SummaryRecord renders one analysis as a summary row.
func SummaryRecord(r *trial.AnalysisResult) []string {
	s := r.Summary
	record := []string{
		r.Strategy,
		r.Rules.Casino.Description,
		r.Rules.Name,
		strconv.Itoa(s.N),
		formatFloat(s.Min),
		formatFloat(s.Max),
		formatFloat(s.Mean),
		formatFloat(s.CILow),
		formatFloat(s.CIHigh),
		strconv.Itoa(r.HandsPlayed),
	}
	for _, n := range r.Tally.Counts() {
		record = append(record, strconv.Itoa(n))
	}
	return append(record,
		formatFloat(s.StdDev),
		formatFloat(s.Median),
		formatFloat(s.P5),
		formatFloat(s.P95),
		r.RunID,
	)
}

// RawRecord renders the per-trial earnings of one analysis.
func RawRecord(r *trial.AnalysisResult) []string {
	earnings := r.Earnings()
	record := make([]string, 0, 3+len(earnings))
	record = append(record, r.Strategy, r.Rules.Name, r.Rules.Casino.Description)
	for _, v := range earnings {
		record = append(record, formatFloat(v))
	}
	return record
}

// WriteSummaryCSV writes a header and one row per analysis.
func WriteSummaryCSV(w io.Writer, results []*trial.AnalysisResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader()); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(SummaryRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRawCSV writes one row of per-trial earnings per analysis. Rows vary
// in length with the trial count, so there is no header.
func WriteRawCSV(w io.Writer, results []*trial.AnalysisResult) error {
	cw := csv.NewWriter(w)
	cw.FieldsPerRecord = -1
	for _, r := range results {
		if err := cw.Write(RawRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Files names the outputs of an analysis batch. Empty paths are skipped.
type Files struct {
	Summary string
	Raw     string
}

// Write writes the batch to the configured files.
func (f Files) Write(results []*trial.AnalysisResult) error {
	if f.Summary != "" {
		err := WriteFileAtomic(f.Summary, 0o644, func(w io.Writer) error {
			return WriteSummaryCSV(w, results)
		})
		if err != nil {
			return fmt.Errorf("write summary %s: %w", f.Summary, err)
		}
	}
	if f.Raw != "" {
		err := WriteFileAtomic(f.Raw, 0o644, func(w io.Writer) error {
			return WriteRawCSV(w, results)
		})
		if err != nil {
			return fmt.Errorf("write raw results %s: %w", f.Raw, err)
		}
	}
	return nil
}

// Exists reports whether any configured output file is already present.
func (f Files) Exists() bool {
	for _, p := range []string{f.Summary, f.Raw} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
