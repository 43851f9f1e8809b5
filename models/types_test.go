package models

import "testing"

func TestNextTaskStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{TaskPending, TaskInProgress},
		{TaskInProgress, TaskDone},
		{TaskDone, TaskPending},
		{TaskBlocked, TaskBlocked},
	}

	for _, tt := range tests {
		if got := NextTaskStatus(tt.status); got != tt.expected {
			t.Errorf("NextTaskStatus(%q) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestCurrencyCode(t *testing.T) {
	if got := CurrencyCode("Argentina"); got != "ARS" {
		t.Errorf("expected ARS, got %s", got)
	}
	if got := CurrencyCode("España"); got != "USD" {
		t.Errorf("expected USD fallback, got %s", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		val      float64
		country  string
		expected string
	}{
		{2850000, "Argentina", "ARS 2.850.000"},
		{580000, "México", "MXN 580.000"},
		{0, "Chile", "CLP 0"},
		{999, "Brasil", "BRL 999"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.val, tt.country); got != tt.expected {
			t.Errorf("FormatCurrency(%v, %q) = %q, want %q", tt.val, tt.country, got, tt.expected)
		}
	}
}
