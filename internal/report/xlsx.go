// Package report renders usage statistics into downloadable workbooks.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"paxscan/internal/domain"
)

const statsSheet = "Strategy Usage"

var statsHeader = []string{
	"Strategy", "Attempts", "Successes", "Failures",
	"Success Rate", "Avg Elapsed (ms)", "Total Tokens", "Estimated Cost (USD)",
}

// StatsWorkbook renders the aggregate stats into an xlsx file and returns
// its bytes.
func StatsWorkbook(stats *domain.Stats) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(statsSheet)
	if err != nil {
		return nil, fmt.Errorf("report: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, title := range statsHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(statsSheet, cell, title); err != nil {
			return nil, fmt.Errorf("report: write header: %w", err)
		}
	}

	for i, s := range stats.PerStrategy {
		rate := 0.0
		if s.Attempts > 0 {
			rate = float64(s.Successes) / float64(s.Attempts)
		}
		values := []interface{}{
			string(s.Strategy), s.Attempts, s.Successes, s.Failures,
			rate, s.AvgElapsedMs, s.TotalTokens, s.EstimatedCost,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(statsSheet, cell, v); err != nil {
				return nil, fmt.Errorf("report: write row %d: %w", i+2, err)
			}
		}
	}

	totalsRow := len(stats.PerStrategy) + 3
	for col, v := range []interface{}{
		"TOTAL", stats.TotalAttempts, stats.TotalSuccesses,
		stats.TotalAttempts - stats.TotalSuccesses,
	} {
		cell, _ := excelize.CoordinatesToCellName(col+1, totalsRow)
		if err := f.SetCellValue(statsSheet, cell, v); err != nil {
			return nil, fmt.Errorf("report: write totals: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("report: serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns a timestamped download name for the stats workbook.
func Filename(now time.Time) string {
	return fmt.Sprintf("extraction-stats-%s.xlsx", now.Format("2006-01-02"))
}
