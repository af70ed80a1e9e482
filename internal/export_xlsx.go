package internal

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	maxSheetNameLen   = 31
	invalidSheetChars = `:\/?*[]`
)

var summaryHeader = []interface{}{
	"Name", "Initial", "Monthly", "Rate", "Years",
	"Contributed", "Balance", "Interest", "Simple balance",
	"Interest multiplier", "Effective annual rate % (approx.)",
}

var snapshotHeader = []interface{}{"Year", "Contributed", "Balance", "Interest", "Simple balance"}

// ExportXLSX writes a workbook with a Summary sheet and one sheet of yearly rows per scenario
func ExportXLSX(path string, results []ScenarioResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	// Built-in format 3 is "#,##0"
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return fmt.Errorf("creating money style: %w", err)
	}

	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A1", "K1", headerStyle); err != nil {
		return fmt.Errorf("styling summary header: %w", err)
	}

	used := map[string]bool{strings.ToLower(summarySheet): true}
	for i, r := range results {
		p := r.Scenario.Parameters
		s := r.Summary
		row := []interface{}{
			r.Scenario.Name, p.Initial, p.Monthly, p.RatePercent, p.Years,
			s.Final.TotalContributions, s.Final.Balance, s.Final.InterestEarned, s.Final.SimpleBalance,
			s.InterestMultiplier, s.EffectiveAnnualRate,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row for %s: %w", r.Scenario.Name, err)
		}

		sheet := uniqueSheetName(r.Scenario.Name, used)
		if err := writeSnapshotSheet(f, sheet, r.Snapshots, headerStyle, moneyStyle); err != nil {
			return fmt.Errorf("writing sheet for %s: %w", r.Scenario.Name, err)
		}
	}

	if len(results) > 0 {
		last := fmt.Sprintf("I%d", len(results)+1)
		if err := f.SetCellStyle(summarySheet, "F2", last, moneyStyle); err != nil {
			return fmt.Errorf("styling summary: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeSnapshotSheet(f *excelize.File, sheet string, snapshots []YearlySnapshot, headerStyle, moneyStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &snapshotHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}
	for i, s := range snapshots {
		row := []interface{}{s.Year, s.TotalContributions, s.Balance, s.InterestEarned, s.SimpleBalance}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(snapshots) > 0 {
		return f.SetCellStyle(sheet, "B2", fmt.Sprintf("E%d", len(snapshots)+1), moneyStyle)
	}
	return nil
}

// uniqueSheetName turns a scenario name into a valid, unused Excel sheet name.
// Excel sheet names are case-insensitive, at most 31 characters and may not contain :\/?*[].
func uniqueSheetName(name string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Scenario"
	}
	base = truncateRunes(base, maxSheetNameLen)

	candidate := base
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(base, maxSheetNameLen-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
