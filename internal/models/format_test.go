package models_test

import (
	"testing"

	"github.com/ADML003/analytics-dashboard/internal/models"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{12450, "$12,450"},
		{284750, "$284,750"},
		{1234567, "$1,234,567"},
		{-200, "-$200"},
		{99.6, "$100"}, // whole-dollar rounding
	}
	for _, c := range cases {
		if got := models.FormatCurrency(c.in); got != c.want {
			t.Fatalf("FormatCurrency(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := models.FormatNumber(48920); got != "48,920" {
		t.Fatalf("expected 48,920, got %q", got)
	}
	if got := models.FormatNumber(187); got != "187" {
		t.Fatalf("expected 187, got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := models.FormatPercent(23.4); got != "23.4%" {
		t.Fatalf("expected 23.4%%, got %q", got)
	}
	if got := models.FormatPercent(3); got != "3.0%" {
		t.Fatalf("expected 3.0%%, got %q", got)
	}
}

func TestFormatDecimalTrimsZeros(t *testing.T) {
	if got := models.FormatDecimal(3.0); got != "3" {
		t.Fatalf("expected 3, got %q", got)
	}
	if got := models.FormatDecimal(2.25); got != "2.25" {
		t.Fatalf("expected 2.25, got %q", got)
	}
	if got := models.FormatRatio(4.2); got != "4.2x" {
		t.Fatalf("expected 4.2x, got %q", got)
	}
}

func TestFormatSignedPercent(t *testing.T) {
	if got := models.FormatSignedPercent(12.5); got != "+12.5%" {
		t.Fatalf("expected +12.5%%, got %q", got)
	}
	if got := models.FormatSignedPercent(-4.2); got != "-4.2%" {
		t.Fatalf("expected -4.2%%, got %q", got)
	}
}

func TestColorLookupsFallBack(t *testing.T) {
	if got := models.PlatformGoogleAds.Color(); got != "red" {
		t.Fatalf("expected red, got %q", got)
	}
	if got := models.Platform("Myspace").Color(); got != "gray" {
		t.Fatalf("expected gray fallback, got %q", got)
	}
	if got := models.StatusActive.Color(); got != "green" {
		t.Fatalf("expected green, got %q", got)
	}
	if got := models.Status("Archived").Color(); got != "gray" {
		t.Fatalf("expected gray fallback, got %q", got)
	}
}
