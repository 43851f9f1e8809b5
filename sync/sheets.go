// ABOUTME: Google Sheets fetcher for spreadsheet-backed KPI import
// ABOUTME: Resolves spreadsheet URLs and pulls sheet values as datasets
package sync

import (
	"fmt"
	"regexp"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"consultorml/tabular"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExtractSpreadsheetID pulls the spreadsheet ID out of a full Google
// Sheets URL. A bare ID passes through unchanged.
func ExtractSpreadsheetID(input string) (string, error) {
	if m := spreadsheetIDPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	if regexp.MustCompile(`^[a-zA-Z0-9-_]+$`).MatchString(input) {
		return input, nil
	}
	return "", fmt.Errorf("no se pudo extraer el ID de la planilla de %q", input)
}

// FetchSheetNames lists the sheet tabs of a spreadsheet.
func FetchSheetNames(service *sheets.Service, spreadsheetID string) ([]string, error) {
	resp, err := service.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Do()
	if err != nil {
		return nil, friendlySheetsError(err)
	}

	names := make([]string, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties != nil {
			names = append(names, sheet.Properties.Title)
		}
	}
	return names, nil
}

// FetchSheetData pulls a sheet's values and shapes them as a dataset.
// The first row is treated as headers.
func FetchSheetData(service *sheets.Service, spreadsheetID, sheetName string) (*tabular.Dataset, error) {
	resp, err := service.Spreadsheets.Values.Get(spreadsheetID, sheetName).Do()
	if err != nil {
		return nil, friendlySheetsError(err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		values = append(values, cells)
	}

	return tabular.FromValues(values, sheetName)
}

func friendlySheetsError(err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 403:
			return fmt.Errorf("sin permiso para leer la planilla (verificá que tu cuenta tenga acceso): %w", err)
		case 404:
			return fmt.Errorf("planilla no encontrada (verificá la URL): %w", err)
		}
	}
	return fmt.Errorf("failed to fetch spreadsheet: %w", err)
}
