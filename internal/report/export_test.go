package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/foryougroup/field-reporter/internal/model"
)

func TestExportXLSX(t *testing.T) {
	report := &model.ProgressReport{
		Date:        "2026-08-28",
		ProjectName: "Słoneczna Dolina",
		Comment:     "Silny wiatr po południu",
		Members: []model.ReportMember{
			{Name: "Jan Kowalski", Hours: 8},
			{Name: "Adam Nowak", Hours: 6.5},
		},
		Activities: []model.Activity{
			{
				Zone:         "Strefa A",
				ActivityType: model.ActivityModules,
				Details:      model.ActivityDetails{Row: "1", Table: "2", Quantity: "24"},
			},
			{
				Zone:         "Strefa B",
				ActivityType: model.ActivityElectrical,
				Details: model.ActivityDetails{
					CableType:  model.CableAC,
					Substation: "T1",
					Inverter:   "F1",
					Length:     "120.5",
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "raport.xlsx")
	require.NoError(t, ExportXLSX(report, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Raport", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "2026-08-28", get("B1"))
	assert.Equal(t, "Słoneczna Dolina", get("B2"))
	assert.Equal(t, "Silny wiatr po południu", get("B3"))

	assert.Equal(t, "Pracownik", get("A5"))
	assert.Equal(t, "Jan Kowalski", get("A6"))
	assert.Equal(t, "8", get("B6"))
	assert.Equal(t, "Adam Nowak", get("A7"))
	assert.Equal(t, "6.5", get("B7"))
	assert.Equal(t, "Razem", get("A8"))
	assert.Equal(t, "14.5", get("B8"))

	assert.Equal(t, "Strefa", get("A10"))
	assert.Equal(t, "Strefa A", get("A11"))
	assert.Equal(t, model.ActivityModules, get("B11"))
	assert.Equal(t, "24", get("D11"))
	assert.Equal(t, "Strefa B", get("A12"))
	assert.Equal(t, "120.5", get("E12"))
}

func TestExportXLSXSkipsEmptyComment(t *testing.T) {
	report := &model.ProgressReport{
		Date:        "2026-08-28",
		ProjectName: "Słoneczna Dolina",
	}

	path := filepath.Join(t.TempDir(), "raport.xlsx")
	require.NoError(t, ExportXLSX(report, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Raport", "A3")
	require.NoError(t, err)
	assert.Empty(t, v)
}
