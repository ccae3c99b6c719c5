// Package report exports evaluation results to a spreadsheet matching a
// fixed template layout.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/giantswarm/sut-eval/internal/evalcase"
)

// SheetName is the worksheet written to. When the template lacks a sheet
// with this name, the first worksheet is used instead.
const SheetName = "Results"

// DefaultTemplateFile and DefaultOutputFile are the well-known template
// and report file names.
const (
	DefaultTemplateFile = "report_template.xlsx"
	DefaultOutputFile   = "evaluation_report.xlsx"
)

// Verdict cell swatches: the classic spreadsheet good/bad styling.
const (
	passFillColor = "C6EFCE"
	passFontColor = "006100"
	failFillColor = "FFC7CE"
	failFontColor = "9C0006"
)

// headers is the fixed fifteen-column layout. Column order and count are
// a compatibility contract with the template and must not change
// independent of it.
var headers = []string{
	"Question",
	"Expected Answer",
	"Obtained Answer",
	"Correctness Score",
	"Correctness Comment",
	"Coverage Score",
	"Coverage Comment",
	"Relevance Score",
	"Relevance Comment",
	"Faithfulness Score",
	"Faithfulness Comment",
	"Clarity Score",
	"Clarity Comment",
	"Final Verdict",
	"Final Comment",
}

const verdictColumn = 14 // 1-based column index of "Final Verdict"

// Export loads the template and writes one row per result starting at row
// 2 (row 1 is reserved for headers). Template errors surface immediately;
// no partial spreadsheet is returned.
func Export(results []evalcase.EvaluationResult, templatePath string) (*excelize.File, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open report template %s: %w", templatePath, err)
	}

	sheet := SheetName
	if idx, err := f.GetSheetIndex(SheetName); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	passStyle, failStyle, err := verdictStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create verdict styles: %w", err)
	}

	for i, result := range results {
		row := i + 2
		if err := writeRow(f, sheet, row, result, passStyle, failStyle); err != nil {
			return nil, fmt.Errorf("failed to write result row %d: %w", row, err)
		}
	}

	return f, nil
}

// ExportToFile exports results and saves the spreadsheet to outPath.
func ExportToFile(results []evalcase.EvaluationResult, templatePath, outPath string) error {
	f, err := Export(results, templatePath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", outPath, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, result evalcase.EvaluationResult, passStyle, failStyle int) error {
	values := []any{
		result.Question,
		result.ExpectedAnswer,
		result.ObtainedAnswer,
	}
	for _, criterion := range evalcase.Criteria() {
		score := result.Scores[criterion]
		values = append(values, score.Score, score.Comment)
	}
	values = append(values, string(result.FinalVerdict), result.FinalComment)

	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}

	verdictCell, err := excelize.CoordinatesToCellName(verdictColumn, row)
	if err != nil {
		return err
	}
	style := failStyle
	if result.FinalVerdict == evalcase.VerdictPass {
		style = passStyle
	}
	return f.SetCellStyle(sheet, verdictCell, verdictCell, style)
}

func verdictStyles(f *excelize.File) (passStyle, failStyle int, err error) {
	passStyle, err = f.NewStyle(verdictStyle(passFillColor, passFontColor))
	if err != nil {
		return 0, 0, err
	}
	failStyle, err = f.NewStyle(verdictStyle(failFillColor, failFontColor))
	if err != nil {
		return 0, 0, err
	}
	return passStyle, failStyle, nil
}

func verdictStyle(fillColor, fontColor string) *excelize.Style {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	return &excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColor}},
		Font:   &excelize.Font{Bold: true, Color: fontColor},
		Border: border,
	}
}

// NewTemplate builds a fresh template workbook carrying only the header
// row, for installations that do not ship one.
func NewTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, err
		}
	}
	return f, nil
}
