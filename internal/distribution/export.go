package distribution

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
)

var workbookHeader = []interface{}{"Category", "Count", "Percent", "Positive rate"}

// WriteWorkbook writes one sheet per chart, each with a count table and a pie chart.
func (ds *Dataset) WriteWorkbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, rule := range Rules {
		chart, ok := ds.Chart(rule.Key)
		if !ok {
			continue
		}
		sheet := rule.Sheet
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename first sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}

		if err := writeChartSheet(f, sheet, chart); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	return f.Write(w)
}

func writeChartSheet(f *excelize.File, sheet string, chart Chart) error {
	if err := f.SetSheetRow(sheet, "A1", &workbookHeader); err != nil {
		return err
	}
	for r, c := range chart.Counts {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		row := []interface{}{c.Label, c.Count, round1(c.Percent), round1(c.PositiveRate * 100)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(chart.Counts) == 0 {
		return nil
	}

	last := len(chart.Counts) + 1
	return f.AddChart(sheet, "F2", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, last),
		}},
		Title:    []excelize.RichTextRun{{Text: chart.Title}},
		PlotArea: excelize.ChartPlotArea{ShowPercent: true, ShowCatName: true},
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
