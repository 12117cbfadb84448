// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestLocalizedTextGet(t *testing.T) {
	lt := LocalizedText{"en": "Welding", "fr": "Soudure"}

	if got := lt.Get("fr"); got != "Soudure" {
		t.Errorf("Get(fr) = %q", got)
	}
	// Missing locale falls back to English.
	if got := lt.Get("ar"); got != "Welding" {
		t.Errorf("Get(ar) = %q, want en fallback", got)
	}
	// Empty value falls back too.
	lt["ar"] = ""
	if got := lt.Get("ar"); got != "Welding" {
		t.Errorf("Get(ar with empty value) = %q, want en fallback", got)
	}
}

func TestLocalizedTextGetNil(t *testing.T) {
	var lt LocalizedText
	if got := lt.Get("en"); got != "" {
		t.Errorf("Get on nil map = %q, want empty", got)
	}
}

func TestLocalizedTextHasDefault(t *testing.T) {
	tests := []struct {
		name string
		lt   LocalizedText
		want bool
	}{
		{"with en", LocalizedText{"en": "x"}, true},
		{"only fr", LocalizedText{"fr": "x"}, false},
		{"empty en", LocalizedText{"en": ""}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := tt.lt.HasDefault(); got != tt.want {
			t.Errorf("%s: HasDefault = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLocalizedTextSQLRoundtrip(t *testing.T) {
	lt := LocalizedText{"en": "Milling", "ar": "فريز"}

	val, err := lt.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out LocalizedText
	if err := out.Scan(val); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if out.Get("ar") != "فريز" || out.Get("en") != "Milling" {
		t.Errorf("roundtrip lost data: %#v", out)
	}
}

func TestLocalizedTextScanNull(t *testing.T) {
	var out LocalizedText
	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Scan(nil) produced %#v", out)
	}
}
