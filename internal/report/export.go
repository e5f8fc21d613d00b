package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/foryougroup/field-reporter/internal/model"
)

const exportSheet = "Raport"

// ExportXLSX writes one report as an XLSX workbook: report metadata on top,
// then the crew with hours, then the activity rows.
func ExportXLSX(report *model.ProgressReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	f.SetCellValue(exportSheet, "A1", "Data")
	f.SetCellValue(exportSheet, "B1", report.Date)
	f.SetCellValue(exportSheet, "A2", "Projekt")
	f.SetCellValue(exportSheet, "B2", report.ProjectName)
	if report.Comment != "" {
		f.SetCellValue(exportSheet, "A3", "Komentarz")
		f.SetCellValue(exportSheet, "B3", report.Comment)
	}

	row := 5
	writeHeader(f, headerStyle, row, "Pracownik", "Godziny")
	row++
	var totalHours float64
	for _, m := range report.Members {
		f.SetCellValue(exportSheet, cell(1, row), m.Name)
		f.SetCellValue(exportSheet, cell(2, row), m.Hours)
		totalHours += m.Hours
		row++
	}
	f.SetCellValue(exportSheet, cell(1, row), "Razem")
	f.SetCellValue(exportSheet, cell(2, row), totalHours)
	row += 2

	writeHeader(f, headerStyle, row, "Strefa", "Aktywność", "Szczegóły", "Ilość", "Długość")
	row++
	for i := range report.Activities {
		a := &report.Activities[i]
		f.SetCellValue(exportSheet, cell(1, row), a.Zone)
		f.SetCellValue(exportSheet, cell(2, row), a.ActivityType)
		f.SetCellValue(exportSheet, cell(3, row), a.Summary())
		if q, err := strconv.ParseFloat(a.Details.Quantity, 64); err == nil {
			f.SetCellValue(exportSheet, cell(4, row), q)
		}
		if l, err := strconv.ParseFloat(a.Details.Length, 64); err == nil {
			f.SetCellValue(exportSheet, cell(5, row), l)
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeHeader(f *excelize.File, style, row int, names ...string) {
	for i, name := range names {
		f.SetCellValue(exportSheet, cell(i+1, row), name)
	}
	first := cell(1, row)
	last := cell(len(names), row)
	f.SetCellStyle(exportSheet, first, last, style)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
