package rubytime

import "testing"

func TestParseNumericOffsetForms(t *testing.T) {
	for _, tt := range []struct {
		raw  string
		want int
		ok   bool
	}{
		{"+9", 9 * 3600, true},
		{"+09", 9 * 3600, true},
		{"+0900", 9 * 3600, true},
		{"+09:00", 9 * 3600, true},
		{"+093000", 9*3600 + 1800, true},
		{"+09:30:00", 9*3600 + 1800, true},
		{"-0800", -8 * 3600, true},
		{"GMT+9", 9 * 3600, true},
		{"UTC-5", -5 * 3600, true},
		{"+9.5", 9*3600 + 1800, true},
		{"not a zone", 0, false},
		{"", 0, false},
	} {
		got, ok := parseNumericOffset(tt.raw)
		if ok != tt.ok {
			t.Errorf("parseNumericOffset(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("parseNumericOffset(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestLookupTimeZoneNamedAbbreviations(t *testing.T) {
	for _, tt := range []struct {
		raw  string
		want int
	}{
		{"UTC", 0},
		{"PST", -8 * 3600},
		{"EDT", -4 * 3600},
		{"Z", 0},
	} {
		got, ok := lookupTimeZone(tt.raw)
		if !ok || got != tt.want {
			t.Errorf("lookupTimeZone(%q) = %d, %v; want %d, true", tt.raw, got, ok, tt.want)
		}
	}
	if _, ok := lookupTimeZone("Nowhereland"); ok {
		t.Error("lookupTimeZone(\"Nowhereland\") unexpectedly resolved")
	}
}

func TestLookupTimeZoneMilitaryLetters(t *testing.T) {
	for _, tt := range []struct {
		raw  string
		want int
	}{
		{"A", 1 * 3600},
		{"M", 12 * 3600},
		{"N", -1 * 3600},
		{"Y", -12 * 3600},
	} {
		got, ok := lookupTimeZone(tt.raw)
		if !ok || got != tt.want {
			t.Errorf("lookupTimeZone(%q) = %d, %v; want %d, true", tt.raw, got, ok, tt.want)
		}
	}
	if _, ok := lookupTimeZone("J"); ok {
		t.Error(`lookupTimeZone("J") unexpectedly resolved; J is never assigned`)
	}
}

func TestLookupDateZoneDaylightSuffix(t *testing.T) {
	got, ok := lookupDateZone("Pacific Standard Time")
	if !ok || got != -8*3600 {
		t.Errorf(`lookupDateZone("Pacific Standard Time") = %d, %v; want -28800, true`, got, ok)
	}
	// Only known base names resolve; this synthetic "Nowhereland" base has
	// no table entry so it should fail even with a recognized suffix.
	if _, ok := lookupDateZone("Nowhereland DST"); ok {
		t.Error(`lookupDateZone("Nowhereland DST") unexpectedly resolved`)
	}
	got, ok = lookupDateZone("CET")
	if !ok || got != 1*3600 {
		t.Errorf(`lookupDateZone("CET") = %d, %v; want 3600, true`, got, ok)
	}
}

func TestNormalizeZoneNameCollapsesWhitespace(t *testing.T) {
	got, ok := normalizeZoneName("  pacific   standard  time ")
	if !ok || got != "PACIFIC STANDARD TIME" {
		t.Errorf("normalizeZoneName = %q, %v; want %q, true", got, ok, "PACIFIC STANDARD TIME")
	}
	if _, ok := normalizeZoneName("bad!name"); ok {
		t.Error("normalizeZoneName accepted a non-alpha interior character")
	}
}
