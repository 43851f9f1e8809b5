// ABOUTME: Spreadsheet file parsing into a headers-plus-rows dataset
// ABOUTME: Supports CSV/TSV via encoding/csv and XLSX via excelize
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Dataset is a parsed sheet: header row plus one string map per data
// row. RawText is a rendering of the whole table for AI prompts.
type Dataset struct {
	Headers   []string
	Rows      []map[string]string
	SheetName string
	RawText   string
}

var (
	ErrEmptySheet  = errors.New("la hoja de cálculo está vacía")
	ErrNoDataRows  = errors.New("la hoja no tiene datos suficientes")
	ErrNoSheets    = errors.New("el archivo no contiene hojas de cálculo")
	ErrUnsupported = errors.New("formato de archivo no soportado")
)

// ParseFile parses a local spreadsheet file by extension.
func ParseFile(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseDelimited(path, ',')
	case ".tsv":
		return parseDelimited(path, '\t')
	case ".xlsx":
		return parseXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
}

func parseDelimited(path string, comma rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo: %w", err)
	}
	return fromRecords(records, filepath.Base(path))
}

func parseXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	// First sheet only, same as the product this replaces.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error al leer la hoja %q: %w", sheets[0], err)
	}
	return fromRecords(rows, sheets[0])
}

// FromValues builds a dataset from a raw value grid (header row first),
// the shape Google Sheets returns.
func FromValues(values [][]string, sheetName string) (*Dataset, error) {
	return fromRecords(values, sheetName)
}

func fromRecords(records [][]string, sheetName string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}
	// A lone header row carries nothing to analyze.
	if len(records) < 2 {
		return nil, ErrNoDataRows
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	ds := &Dataset{
		Headers:   headers,
		Rows:      rows,
		SheetName: sheetName,
	}
	ds.RawText = buildRawText(headers, rows)
	return ds, nil
}

// buildRawText renders the table as the text block fed to the AI
// analysis prompt.
func buildRawText(headers []string, rows []map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "COLUMNAS: %s\n", strings.Join(headers, " | "))
	b.WriteString(strings.Repeat("─", 60))
	b.WriteByte('\n')

	for i, row := range rows {
		values := make([]string, len(headers))
		for j, h := range headers {
			values[j] = row[h]
		}
		fmt.Fprintf(&b, "Fila %d: %s\n", i+1, strings.Join(values, " | "))
	}

	b.WriteString(strings.Repeat("─", 60))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total: %d filas, %d columnas", len(rows), len(headers))
	return b.String()
}
