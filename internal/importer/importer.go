// Package importer reads building parameters from CSV and Excel sheets.
// A sheet holds one parameter per row as a name,value pair. Names are
// matched case-insensitively against a set of aliases, and the delimiter
// of CSV files is detected automatically.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/sheathcalc/internal/model"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	// Values maps each recognised parameter (by its JSON field name) to the
	// value read from the sheet.
	Values   map[string]string
	Inputs   model.Inputs // DefaultInputs with Values applied
	Errors   []string
	Warnings []string
}

// ApplyTo copies the imported values onto in. Values that failed to parse
// during import are skipped.
func (r ImportResult) ApplyTo(in *model.Inputs) {
	for field, raw := range r.Values {
		_ = setField(in, field, raw)
	}
}

type setter func(in *model.Inputs, v float64)

var numericFields = map[string]setter{
	"length":             func(in *model.Inputs, v float64) { in.Length = v },
	"width":              func(in *model.Inputs, v float64) { in.Width = v },
	"wall_height":        func(in *model.Inputs, v float64) { in.WallHeight = v },
	"pitch":              func(in *model.Inputs, v float64) { in.Pitch = v },
	"overhang_inches":    func(in *model.Inputs, v float64) { in.OverhangInches = v },
	"sheet_width_inches": func(in *model.Inputs, v float64) { in.SheetWidthInches = v },
	"shed_width":         func(in *model.Inputs, v float64) { in.ShedWidth = v },
	"shed_depth":         func(in *model.Inputs, v float64) { in.ShedDepth = v },
	"shed_pitch":         func(in *model.Inputs, v float64) { in.ShedPitch = v },
	"shed_wall_height":   func(in *model.Inputs, v float64) { in.ShedWallHeight = v },
	"porch_length":       func(in *model.Inputs, v float64) { in.PorchLength = v },
	"porch_depth":        func(in *model.Inputs, v float64) { in.PorchDepth = v },
	"porch_pitch":        func(in *model.Inputs, v float64) { in.PorchPitch = v },
}

// nameAliases maps field names to their accepted parameter names (normalised).
var nameAliases = map[string][]string{
	"length":             {"length", "building length", "len", "l"},
	"width":              {"width", "building width", "span", "w"},
	"wall_height":        {"wall height", "height", "eave height", "h"},
	"pitch":              {"pitch", "roof pitch", "slope"},
	"overhang_inches":    {"overhang inches", "overhang", "eave overhang", "overhang in"},
	"sheet_width_inches": {"sheet width inches", "sheet width", "panel width", "sheet", "sheet width in"},
	"attachment":         {"attachment", "addition", "attachment type"},
	"shed_width":         {"shed width"},
	"shed_depth":         {"shed depth", "shed length"},
	"shed_pitch":         {"shed pitch"},
	"shed_wall_height":   {"shed wall height", "shed height"},
	"porch_length":       {"porch length", "porch width"},
	"porch_depth":        {"porch depth"},
	"porch_pitch":        {"porch pitch"},
}

// headerNames are first-row labels that mark a header rather than a parameter.
var headerNames = map[string]bool{
	"name": true, "parameter": true, "param": true, "field": true, "key": true, "setting": true,
}

var aliasIndex = func() map[string]string {
	idx := make(map[string]string)
	for field, aliases := range nameAliases {
		for _, a := range aliases {
			idx[a] = field
		}
	}
	return idx
}()

// normalizeName lowercases a parameter name and reduces separators and unit
// brackets to single spaces, so "Sheet_Width (in)" matches "sheet width in".
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ", "(", " ", ")", " ", ":", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// inchFields are the parameters entered in inches; every other dimension is in feet.
var inchFields = map[string]bool{
	"overhang_inches":    true,
	"sheet_width_inches": true,
}

// LookupField returns the Inputs JSON field a parameter name refers to.
func LookupField(name string) (string, bool) {
	field, _, ok := lookupParameter(name)
	return field, ok
}

// lookupParameter resolves a parameter name and reports whether the name
// carries an explicit feet unit, e.g. "Overhang (ft)".
func lookupParameter(name string) (field string, inFeet bool, ok bool) {
	n := normalizeName(name)
	if field, ok := aliasIndex[n]; ok {
		return field, false, true
	}
	for _, unit := range []string{" ft", " feet"} {
		if trimmed, found := strings.CutSuffix(n, unit); found {
			field, ok := aliasIndex[trimmed]
			return field, ok, ok
		}
	}
	return "", false, false
}

// feetToInches rewrites a value given in feet for an inch field. Values that
// do not parse are returned unchanged so setField reports them.
func feetToInches(raw string) (string, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw, false
	}
	return strconv.FormatFloat(v*12, 'f', -1, 64), true
}

// ParseAttachment accepts an attachment kind by value or display name.
func ParseAttachment(s string) (model.AttachmentKind, bool) {
	switch normalizeName(s) {
	case "", "none", "no", "n/a":
		return model.AttachmentNone, true
	case "shed", "lean to":
		return model.AttachmentShed, true
	case "porch":
		return model.AttachmentPorch, true
	}
	return "", false
}

func setField(in *model.Inputs, field, raw string) error {
	if field == "attachment" {
		kind, ok := ParseAttachment(raw)
		if !ok {
			return fmt.Errorf("unknown attachment %q", raw)
		}
		in.Attachment = kind
		return nil
	}
	set, ok := numericFields[field]
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", raw)
	}
	set(in, v)
	return nil
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportInputs reads a parameter sheet from the local disk, choosing the
// format by extension: .xlsx/.xlsm as Excel, anything else as CSV.
func ImportInputs(path string) ImportResult {
	return ImportInputsFs(afero.NewOsFs(), path)
}

// ImportInputsFs is ImportInputs reading from fsys.
func ImportInputsFs(fsys afero.Fs, path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return importExcel(fsys, path)
	default:
		return importCSV(fsys, path)
	}
}

// ImportCSV imports parameters from a CSV file, detecting the delimiter.
func ImportCSV(path string) ImportResult {
	return importCSV(afero.NewOsFs(), path)
}

func importCSV(fsys afero.Fs, path string) ImportResult {
	result := ImportResult{}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	result = ImportCSVFromReader(bytes.NewReader(data), delimiter)
	result.Warnings = append(warnings, result.Warnings...)
	return result
}

// ImportCSVFromReader imports parameters from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1
	csvReader.Comment = '#'

	// Comment lines are skipped by the reader, so each record keeps the
	// line number it was read from.
	var records [][]string
	var lines []int
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
			return result
		}
		line, _ := csvReader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, lines, "Line")
}

// ImportExcel imports parameters from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	return importExcel(afero.NewOsFs(), path)
}

func importExcel(fsys afero.Fs, path string) ImportResult {
	result := ImportResult{}

	file, err := fsys.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, nil, "Row")
}

// importFromRows is the shared import logic for both CSV and Excel data.
// lines holds the source line of each row; when nil rows are numbered from 1.
func importFromRows(rows [][]string, lines []int, rowPrefix string) ImportResult {
	result := ImportResult{
		Values: make(map[string]string),
		Inputs: model.DefaultInputs(),
	}

	for i, row := range rows {
		number := i + 1
		if lines != nil {
			number = lines[i]
		}
		label := fmt.Sprintf("%s %d", rowPrefix, number)
		if isEmptyRow(row) {
			continue
		}
		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: missing value", label))
			continue
		}

		name, raw := row[0], strings.TrimSpace(row[1])
		if i == 0 && headerNames[normalizeName(name)] {
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
			continue
		}

		field, inFeet, ok := lookupParameter(name)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: unknown parameter %q, skipping", label, name))
			continue
		}
		if inFeet && inchFields[field] {
			if converted, ok := feetToInches(raw); ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: %s converted from %s ft to %s in", label, name, raw, converted))
				raw = converted
			}
		}
		if err := setField(&result.Inputs, field, raw); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s: %v", label, name, err))
			continue
		}
		if _, dup := result.Values[field]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s given more than once, using the last value", label, name))
		}
		result.Values[field] = raw
	}

	if len(result.Values) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No parameters found")
		return result
	}

	if err := result.Inputs.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}
	return result
}
