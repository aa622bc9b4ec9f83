package distribution

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Skufu/healthassistant/internal/apperr"
)

// Columns are the header names expected in a dataset file.
var Columns = []string{
	"Pregnancies", "Glucose", "BloodPressure", "SkinThickness", "Insulin",
	"BMI", "DiabetesPedigreeFunction", "Age", "Outcome",
}

// LoadRecords reads a Pima-style table from the first sheet of an xlsx file or from a csv file.
func LoadRecords(path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperr.Wrapf(apperr.WithCode(apperr.CodeNotFound, err), "dataset %s", path)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readExcel(path)
	default:
		return nil, apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("unsupported dataset type %q", filepath.Ext(path)))
	}
	if err != nil {
		return nil, apperr.Wrapf(err, "read dataset %s", path)
	}

	records, err := parseRows(rows)
	if err != nil {
		return nil, apperr.Wrapf(err, "parse dataset %s", path)
	}
	log.Printf("[distribution] loaded %d records from %s", len(records), path)
	return records, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func parseRows(rows [][]string) ([]Record, error) {
	if len(rows) < 2 {
		return nil, apperr.New(apperr.CodeInvalidInput, "dataset needs a header and at least one row")
	}

	index := map[string]int{}
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	positions := make([]int, len(Columns))
	for i, col := range Columns {
		pos, ok := index[col]
		if !ok {
			return nil, apperr.New(apperr.CodeInvalidInput, "missing column "+col)
		}
		positions[i] = pos
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		values := make([]float64, len(Columns))
		for i, pos := range positions {
			if pos >= len(row) {
				return nil, apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("row %d is missing %s", n+2, Columns[i]))
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[pos]), 64)
			if err != nil {
				return nil, apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("row %d: %s is not numeric", n+2, Columns[i]))
			}
			values[i] = v
		}
		records = append(records, Record{
			Pregnancies:              values[0],
			Glucose:                  values[1],
			BloodPressure:            values[2],
			SkinThickness:            values[3],
			Insulin:                  values[4],
			BMI:                      values[5],
			DiabetesPedigreeFunction: values[6],
			Age:                      values[7],
			Outcome:                  int(values[8]),
		})
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
