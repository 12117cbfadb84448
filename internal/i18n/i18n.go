// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n resolves the active locale for a request and supplies
// translated UI strings from embedded JSON bundles. Locales are carried
// as the first URL path segment (/{locale}/...); the bundle for a locale
// falls back to English for any missing key.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale is used when no supported locale can be resolved.
const DefaultLocale = "en"

// SupportedLocales lists the locale codes the site is translated into,
// in matcher preference order (default first).
var SupportedLocales = []string{"en", "fr", "ar"}

// rtlLocales marks locales rendered right-to-left.
var rtlLocales = map[string]bool{"ar": true}

// matcher maps Accept-Language headers onto the supported set.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Arabic,
})

// Bundle holds the loaded translation maps for every supported locale.
type Bundle struct {
	messages map[string]map[string]string
}

// Load parses the embedded locale files into a Bundle. It fails if any
// supported locale is missing its JSON file.
func Load() (*Bundle, error) {
	b := &Bundle{messages: make(map[string]map[string]string)}

	for _, loc := range SupportedLocales {
		data, err := localeFS.ReadFile("locales/" + loc + ".json")
		if err != nil {
			return nil, fmt.Errorf("i18n: read bundle %s: %w", loc, err)
		}

		var msgs map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("i18n: parse bundle %s: %w", loc, err)
		}
		b.messages[loc] = msgs
	}

	return b, nil
}

// T returns the translation for key in the given locale, falling back to
// the default locale's value. Returns the key itself when no translation
// exists anywhere, so missing strings are visible rather than blank.
func (b *Bundle) T(locale, key string) string {
	if msgs, ok := b.messages[locale]; ok {
		if v := msgs[key]; v != "" {
			return v
		}
	}
	if v := b.messages[DefaultLocale][key]; v != "" {
		return v
	}
	return key
}

// Supported reports whether code is one of the supported locale codes.
func Supported(code string) bool {
	for _, loc := range SupportedLocales {
		if loc == code {
			return true
		}
	}
	return false
}

// Dir returns "rtl" for right-to-left locales and "ltr" otherwise.
// Direction is derived purely from the locale code.
func Dir(locale string) string {
	if rtlLocales[locale] {
		return "rtl"
	}
	return "ltr"
}

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header value. Used for the root redirect only; all
// other resolution goes through the URL path.
func MatchAcceptLanguage(header string) string {
	if header == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return SupportedLocales[idx]
}
