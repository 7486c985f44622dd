// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package audit runs the strength analyzer over password candidate
// files and aggregates the results. Reports carry line numbers and
// derived metrics only; the audited passwords are dropped as soon as
// they are scored.
package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/xuri/excelize/v2"
)

// Row is the audit record for a single input line.
type Row struct {
	Line int `json:"line"`
	strength.Result
}

// Summary aggregates an audit run.
type Summary struct {
	Total        int                      `json:"total"`
	Common       int                      `json:"common"`
	WithPatterns int                      `json:"with_patterns"`
	AverageScore float64                  `json:"average_score"`
	ByVerdict    map[strength.Verdict]int `json:"by_verdict"`
	Duration     time.Duration            `json:"duration"`
}

// Report collects audit rows from concurrent workers.
type Report struct {
	mu    sync.Mutex
	rows  []Row
	start time.Time
}

func NewReport() *Report {
	return &Report{
		rows:  make([]Row, 0),
		start: time.Now(),
	}
}

// Add records one audited line. Safe for concurrent use.
func (r *Report) Add(row Row) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, row)
}

// Rows returns the audited lines ordered by line number.
func (r *Report) Rows() []Row {
	r.mu.Lock()
	defer r.mu.Unlock()

	sort.Slice(r.rows, func(i, j int) bool {
		return r.rows[i].Line < r.rows[j].Line
	})

	return r.rows
}

// Summarize aggregates the collected rows.
func (r *Report) Summarize() Summary {
	rows := r.Rows()

	summary := Summary{
		Total:     len(rows),
		ByVerdict: make(map[strength.Verdict]int),
		Duration:  time.Since(r.start),
	}

	var scoreSum int
	for _, row := range rows {
		summary.ByVerdict[row.Verdict]++
		scoreSum += row.Score
		if row.IsCommon {
			summary.Common++
		}
		if row.HasRepeatRun || row.HasSequentialRun {
			summary.WithPatterns++
		}
	}

	if summary.Total > 0 {
		summary.AverageScore = float64(scoreSum) / float64(summary.Total)
	}

	return summary
}

// WriteNDJSON writes one JSON record per row, ordered by line number.
func (r *Report) WriteNDJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	for _, row := range r.Rows() {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}

	return nil
}

// WriteText writes a human readable summary of the audit.
func (r *Report) WriteText(w io.Writer) error {
	summary := r.Summarize()

	var b strings.Builder
	b.WriteString("Password Audit Summary\n")
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Lines audited  : %d\n", summary.Total)
	fmt.Fprintf(&b, "Elapsed        : %s\n", summary.Duration)
	fmt.Fprintf(&b, "Average score  : %.1f / 100\n", summary.AverageScore)
	fmt.Fprintf(&b, "Common entries : %d\n", summary.Common)
	fmt.Fprintf(&b, "With patterns  : %d\n", summary.WithPatterns)
	b.WriteString("\nVerdicts:\n")
	for _, v := range []strength.Verdict{
		strength.VerdictVeryWeak,
		strength.VerdictWeak,
		strength.VerdictModerate,
		strength.VerdictStrong,
		strength.VerdictVeryStrong,
	} {
		fmt.Fprintf(&b, "  %-11s : %d\n", v, summary.ByVerdict[v])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteXLSX exports the rows to an Excel workbook, one row per audited
// line.
func (r *Report) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := "Audit"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{
		"Line", "Length", "Score", "Verdict", "Common",
		"Repeated Run", "Sequential Run", "Entropy (bits)", "Suggestions",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range r.Rows() {
		values := []interface{}{
			row.Line, row.Length, row.Score, string(row.Verdict), row.IsCommon,
			row.HasRepeatRun, row.HasSequentialRun, row.EntropyBits,
			strings.Join(row.Suggestions, "; "),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
