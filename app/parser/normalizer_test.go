package parser

import (
	"testing"
)

func TestNormalizeIntNoData(t *testing.T) {
	for _, raw := range []string{"", "  ", "N/A", " N/A "} {
		v, err := NormalizeInt(raw)
		if err != nil {
			t.Fatalf("Expected no error for %q, got: %v", raw, err)
		}
		if v != nil {
			t.Errorf("Expected nil for %q, got: %d", raw, *v)
		}
	}
}

func TestNormalizeIntZeroIsNotNull(t *testing.T) {
	v, err := NormalizeInt("0")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if v == nil {
		t.Fatal("Expected 0, got nil")
	}
	if *v != 0 {
		t.Errorf("Expected 0, got: %d", *v)
	}
}

func TestNormalizeIntCleaning(t *testing.T) {
	tests := map[string]int64{
		"+1,234":      1234,
		" 1,234,567 ": 1234567,
		"+50":         50,
		"42":          42,
	}
	for raw, want := range tests {
		v, err := NormalizeInt(raw)
		if err != nil {
			t.Fatalf("Expected no error for %q, got: %v", raw, err)
		}
		if v == nil {
			t.Fatalf("Expected %d for %q, got nil", want, raw)
		}
		if *v != want {
			t.Errorf("Expected %d for %q, got: %d", want, raw, *v)
		}
	}
}

func TestNormalizeIntGarbageIsError(t *testing.T) {
	for _, raw := range []string{"abc", "12.5.3", "1 234"} {
		if _, err := NormalizeInt(raw); err == nil {
			t.Errorf("Expected error for %q, got none", raw)
		}
	}
}

func TestNormalizeFloat(t *testing.T) {
	v, err := NormalizeFloat("120.5")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if v == nil || *v != 120.5 {
		t.Fatalf("Expected 120.5, got: %v", v)
	}

	v, err = NormalizeFloat("N/A")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if v != nil {
		t.Errorf("Expected nil for N/A, got: %f", *v)
	}

	if _, err := NormalizeFloat("12x"); err == nil {
		t.Error("Expected error for non-numeric cell, got none")
	}
}

func TestNormalizeText(t *testing.T) {
	if got := NormalizeText("  Testland  "); got != "Testland" {
		t.Errorf("Expected 'Testland', got: %q", got)
	}
	// commas inside names must survive; only numeric kinds strip them
	if got := NormalizeText("Bonaire, Sint Eustatius"); got != "Bonaire, Sint Eustatius" {
		t.Errorf("Expected name untouched, got: %q", got)
	}
	if got := NormalizeText("N/A"); got != "" {
		t.Errorf("Expected empty string for N/A, got: %q", got)
	}
}
