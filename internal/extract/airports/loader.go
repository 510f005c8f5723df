package airports

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"paxscan/internal/domain"
)

// LoadXLSX reads extra city/code pairs from the first sheet of a spreadsheet
// (column A: city, column B: IATA code, header row tolerated) and returns
// them appended to the built-in table. Rows with a malformed code are
// skipped, not fatal.
func LoadXLSX(path string) ([]domain.CityCodeEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open airports file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read airports sheet %q: %w", sheet, err)
	}

	entries := make([]domain.CityCodeEntry, 0, len(defaultEntries)+len(rows))
	entries = append(entries, defaultEntries...)
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		city := strings.TrimSpace(row[0])
		code := strings.ToUpper(strings.TrimSpace(row[1]))
		if city == "" || len(code) != 3 {
			continue
		}
		if i == 0 && (strings.EqualFold(city, "city") || strings.EqualFold(code, "IATA")) {
			continue
		}
		entries = append(entries, domain.CityCodeEntry{City: city, IATACode: code})
	}
	return entries, nil
}
