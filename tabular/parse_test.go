package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCSV(t *testing.T) {
	path := writeTempFile(t, "ventas.csv", "SKU,Ventas,Conversión\nA1,1000,5.0\nB2,2000,7.0\n")

	ds, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(ds.Headers) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(ds.Headers))
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(ds.Rows))
	}
	if ds.Rows[0]["Ventas"] != "1000" {
		t.Errorf("expected Ventas=1000, got %q", ds.Rows[0]["Ventas"])
	}
	if ds.SheetName != "ventas.csv" {
		t.Errorf("expected sheet name from file, got %q", ds.SheetName)
	}
}

func TestParseTSV(t *testing.T) {
	path := writeTempFile(t, "datos.tsv", "Col A\tCol B\nx\ty\n")

	ds, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Rows[0]["Col B"] != "y" {
		t.Errorf("expected y, got %q", ds.Rows[0]["Col B"])
	}
}

func TestParseShortRowsPadded(t *testing.T) {
	path := writeTempFile(t, "corto.csv", "A,B,C\n1,2\n")

	ds, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Rows[0]["C"] != "" {
		t.Errorf("expected empty cell for missing column, got %q", ds.Rows[0]["C"])
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "datos.pdf", "whatever")

	if _, err := ParseFile(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestParseEmptyFile(t *testing.T) {
	path := writeTempFile(t, "vacio.csv", "")

	if _, err := ParseFile(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestHeaderOnlyRejected(t *testing.T) {
	_, err := FromValues([][]string{{"Ventas", "Conversión"}}, "Hoja 1")
	if err != ErrNoDataRows {
		t.Fatalf("expected ErrNoDataRows, got %v", err)
	}

	path := writeTempFile(t, "solo-encabezado.csv", "SKU,Ventas\n")
	if _, err := ParseFile(path); err != ErrNoDataRows {
		t.Fatalf("expected ErrNoDataRows for header-only file, got %v", err)
	}
}

func TestFromValues(t *testing.T) {
	ds, err := FromValues([][]string{
		{"Ventas", "Tickets"},
		{"100", "2"},
	}, "Hoja 1")
	if err != nil {
		t.Fatal(err)
	}
	if ds.SheetName != "Hoja 1" {
		t.Errorf("unexpected sheet name %q", ds.SheetName)
	}
	if ds.Rows[0]["Tickets"] != "2" {
		t.Errorf("expected 2, got %q", ds.Rows[0]["Tickets"])
	}
}

func TestRawTextFormat(t *testing.T) {
	ds, err := FromValues([][]string{
		{"A", "B"},
		{"1", "2"},
		{"3", "4"},
	}, "Hoja 1")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(ds.RawText, "COLUMNAS: A | B\n") {
		t.Errorf("raw text missing column line:\n%s", ds.RawText)
	}
	if !strings.Contains(ds.RawText, "Fila 1: 1 | 2") {
		t.Errorf("raw text missing row line:\n%s", ds.RawText)
	}
	if !strings.HasSuffix(ds.RawText, "Total: 2 filas, 2 columnas") {
		t.Errorf("raw text missing totals footer:\n%s", ds.RawText)
	}
}
