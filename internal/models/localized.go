// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DefaultLocale is the locale every localized field must carry. UI text
// falls back to it when a translation is missing or empty.
const DefaultLocale = "en"

// LocalizedText maps locale codes ("en", "fr", "ar") to translated strings.
// It is stored as a JSONB column.
type LocalizedText map[string]string

// Get returns the value for the given locale, falling back to the default
// locale when the translation is missing or empty.
func (lt LocalizedText) Get(locale string) string {
	if v := lt[locale]; v != "" {
		return v
	}
	return lt[DefaultLocale]
}

// HasDefault reports whether the default-locale value is present and non-empty.
func (lt LocalizedText) HasDefault() bool {
	return lt[DefaultLocale] != ""
}

// Value implements driver.Valuer, serializing the map to JSON for storage.
func (lt LocalizedText) Value() (driver.Value, error) {
	if lt == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(lt)
}

// Scan implements sql.Scanner, decoding a JSONB column into the map.
func (lt *LocalizedText) Scan(src any) error {
	if src == nil {
		*lt = LocalizedText{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("localized text: cannot scan %T", src)
	}

	return json.Unmarshal(data, lt)
}
