// ABOUTME: Heuristic KPI extraction from tabular spreadsheet data
// ABOUTME: Maps recognized columns to a partial KPI patch for a client
package kpi

import (
	"math"
	"strconv"
	"strings"
)

// Patch is a partial KPI update. A nil field means the column was not
// found or produced no parseable values; absence is not zero.
type Patch struct {
	SalesAmount    *float64
	ConversionRate *float64
	ACOS           *float64
	OpenTickets    *float64
}

// IsEmpty reports whether no key was extracted.
func (p *Patch) IsEmpty() bool {
	return p == nil || (p.SalesAmount == nil && p.ConversionRate == nil && p.ACOS == nil && p.OpenTickets == nil)
}

type aggregation int

const (
	aggSum aggregation = iota
	aggAvg
)

type keySpec struct {
	keywords []string
	agg      aggregation
}

// Header keyword fragments per recognized KPI, matched case-insensitively
// against trimmed header text. Spanish terms first: that is what the
// seller reports exported from MercadoLibre actually carry.
var keySpecs = map[string]keySpec{
	"salesAmount":    {keywords: []string{"venta", "sales", "facturaci", "ingreso", "revenue"}, agg: aggSum},
	"conversionRate": {keywords: []string{"conversi", "conversion", "cvr"}, agg: aggAvg},
	"acos":           {keywords: []string{"acos", "tacos"}, agg: aggAvg},
	"openTickets":    {keywords: []string{"ticket", "reclamo"}, agg: aggSum},
}

// keyOrder fixes the scan order so acos keywords cannot shadow others
// across runs; each key still picks the first matching header in
// header order.
var keyOrder = []string{"salesAmount", "conversionRate", "acos", "openTickets"}

// Extract scans headers for recognized KPI columns and aggregates the
// numeric cells underneath. Sum keys round to the nearest integer,
// average keys to one decimal. Returns nil when nothing was extracted.
func Extract(headers []string, rows []map[string]string) *Patch {
	if len(headers) == 0 || len(rows) == 0 {
		return nil
	}

	patch := &Patch{}
	for _, key := range keyOrder {
		spec := keySpecs[key]
		header, found := findHeader(headers, spec.keywords)
		if !found {
			continue
		}

		values := collectValues(rows, header)
		if len(values) == 0 {
			// Column matched but every cell was empty or unparseable.
			continue
		}

		result := aggregate(values, spec.agg)
		switch key {
		case "salesAmount":
			patch.SalesAmount = &result
		case "conversionRate":
			patch.ConversionRate = &result
		case "acos":
			patch.ACOS = &result
		case "openTickets":
			patch.OpenTickets = &result
		}
	}

	if patch.IsEmpty() {
		return nil
	}
	return patch
}

// findHeader returns the first header whose lowercased, trimmed text
// contains any of the keyword fragments.
func findHeader(headers []string, keywords []string) (string, bool) {
	for _, h := range headers {
		lower := strings.ToLower(strings.TrimSpace(h))
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return h, true
			}
		}
	}
	return "", false
}

func collectValues(rows []map[string]string, header string) []float64 {
	var values []float64
	for _, row := range rows {
		if v, ok := parseCell(row[header]); ok {
			values = append(values, v)
		}
	}
	return values
}

// parseCell scrubs a cell down to digits, '.', ',' and '-', converts
// decimal commas to points, and parses the result. Anything that still
// fails to parse is silently excluded.
func parseCell(cell string) (float64, bool) {
	var b strings.Builder
	for _, r := range cell {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func aggregate(values []float64, agg aggregation) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	if agg == aggSum {
		return math.Round(total)
	}
	avg := total / float64(len(values))
	return math.Round(avg*10) / 10
}
