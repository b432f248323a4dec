// Package export renders the selected issues of a report as a spreadsheet.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"portail-rse/internal/csrd/models"
)

const (
	sheetName = "Enjeux"

	originCustom   = "personnel"
	originStandard = "AR"
)

// Variant selects the issues and columns of the export.
type Variant string

const (
	// Selected lists every selected issue.
	Selected Variant = "selection"
	// Analyzed lists the selected issues with a materiality answer.
	Analyzed Variant = "materialite"
)

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Filename is the attachment name for a report export.
func Filename(r *models.Report, v Variant) string {
	if v == Analyzed {
		return fmt.Sprintf("enjeux_materiels_%s_%d.xlsx", r.Siren, r.Year)
	}
	return fmt.Sprintf("enjeux_%s_%d.xlsx", r.Siren, r.Year)
}

// Issues writes the workbook. Rows follow the display order of each standard.
func Issues(r *models.Report, v Variant) ([]byte, error) {
	header := []any{"ESRS", "Enjeu", "Description", "Origine"}
	issues := r.Issues().Selected()
	if v == Analyzed {
		header = append(header, "Matérialité")
		issues = issues.Analyzed()
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	row := 2
	for _, code := range models.ThematicStandards {
		for _, issue := range issues.ByCode(code) {
			values := []any{code.Title(), issue.Name, issue.Description, origin(issue)}
			if v == Analyzed {
				values = append(values, materiality(issue))
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}
	if err := f.SetColWidth(sheetName, "A", "C", 40); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func origin(i models.Issue) string {
	if i.Editable {
		return originCustom
	}
	return originStandard
}

func materiality(i models.Issue) string {
	if i.Material != nil && *i.Material {
		return "Matériel"
	}
	return "Non-matériel"
}
