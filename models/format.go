// ABOUTME: Display formatting helpers for currency and dates
// ABOUTME: Currency code is chosen from the client's marketplace country
package models

import (
	"fmt"
	"strings"
	"time"
)

var countryCurrencies = map[string]string{
	"Argentina": "ARS",
	"México":    "MXN",
	"Brasil":    "BRL",
	"Colombia":  "COP",
	"Chile":     "CLP",
	"Uruguay":   "UYU",
	"Perú":      "PEN",
}

// CurrencyCode returns the ISO currency code for a marketplace
// country, defaulting to USD.
func CurrencyCode(country string) string {
	if code, ok := countryCurrencies[country]; ok {
		return code
	}
	return "USD"
}

// FormatCurrency renders an amount with thousands separators and the
// country's currency code, e.g. "ARS 2.850.000".
func FormatCurrency(val float64, country string) string {
	return fmt.Sprintf("%s %s", CurrencyCode(country), groupThousands(int64(val)))
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

// Today returns the current calendar date in entity date format.
func Today() string {
	return time.Now().Format(DateFormat)
}
