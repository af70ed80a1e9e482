package internal

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads scenarios from the first sheet of an Excel workbook.
// The header row may appear anywhere and its columns in any order; it must
// contain "Years" and at least one of "Initial", "Monthly". "Name" and "Rate"
// are optional. Cell values are coerced like form input, so a blank or
// non-numeric cell counts as 0.
func LoadXLSX(path string) ([]Scenario, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	// Find header row and column indices
	cols := map[string]int{"name": -1, FieldInitial: -1, FieldMonthly: -1, FieldRate: -1, FieldYears: -1}
	headerRow := -1
	for i, row := range rows {
		for j, cell := range row {
			key := strings.ToLower(strings.TrimSpace(cell))
			if idx, ok := cols[key]; ok && idx == -1 {
				cols[key] = j
			}
		}
		if cols[FieldYears] >= 0 && (cols[FieldInitial] >= 0 || cols[FieldMonthly] >= 0) {
			headerRow = i
			break
		}
		// Reset partial matches from rows that are not the header
		for k := range cols {
			cols[k] = -1
		}
	}

	if headerRow < 0 {
		return nil, fmt.Errorf("could not find required columns (Years and Initial or Monthly)")
	}

	cell := func(row []string, key string) string {
		idx := cols[key]
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var scenarios []Scenario
	for _, row := range rows[headerRow+1:] {
		// Skip blank rows
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}

		scenarios = append(scenarios, Scenario{
			Name: cell(row, "name"),
			Parameters: Parameters{
				Initial:     ParseAmount(cell(row, FieldInitial)),
				Monthly:     ParseAmount(cell(row, FieldMonthly)),
				RatePercent: ParseAmount(strings.TrimSuffix(cell(row, FieldRate), "%")),
				Years:       ParseYears(cell(row, FieldYears)),
			},
		})
	}

	return scenarios, nil
}

func init() {
	RegisterSource("xlsx", SourceFunc(LoadXLSX), ".xlsx")
}
