// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SiteSettings is a key/value map of site-wide configuration: business
// identity, contact channels, social links, per-page media URLs, and
// weekly business-hours strings. Missing keys read as their defaults,
// so a fresh database behaves as if the singleton row already exists.
type SiteSettings map[string]string

// Setting keys written by the admin settings endpoint. Writes to any
// other key are rejected (allowlist, not a schema constraint).
const (
	SettingBusinessName  = "business_name"
	SettingAddress       = "address"
	SettingPhone         = "phone"
	SettingEmail         = "email"
	SettingWhatsApp      = "whatsapp"
	SettingFacebookURL   = "facebook_url"
	SettingInstagramURL  = "instagram_url"
	SettingLinkedInURL   = "linkedin_url"
	SettingHeroImage     = "hero_image"
	SettingIntroImage    = "intro_image"
	SettingServicesImage = "services_image"
	SettingAboutImage    = "about_image"
	SettingHoursWeekdays = "hours_weekdays"
	SettingHoursSaturday = "hours_saturday"
	SettingHoursSunday   = "hours_sunday"
)

// WritableSettingKeys is the allowlist of keys the settings endpoint may
// update. Guards against arbitrary key injection through the admin API.
var WritableSettingKeys = map[string]bool{
	SettingBusinessName:  true,
	SettingAddress:       true,
	SettingPhone:         true,
	SettingEmail:         true,
	SettingWhatsApp:      true,
	SettingFacebookURL:   true,
	SettingInstagramURL:  true,
	SettingLinkedInURL:   true,
	SettingHeroImage:     true,
	SettingIntroImage:    true,
	SettingServicesImage: true,
	SettingAboutImage:    true,
	SettingHoursWeekdays: true,
	SettingHoursSaturday: true,
	SettingHoursSunday:   true,
}

// DefaultSettings supplies fallback values for keys that have never been
// written. Read paths merge these under stored values.
var DefaultSettings = SiteSettings{
	SettingBusinessName:  "Atelier Industriel",
	SettingHoursWeekdays: "08:00 - 18:00",
	SettingHoursSaturday: "08:00 - 13:00",
	SettingHoursSunday:   "Closed",
}
