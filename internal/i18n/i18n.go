// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n defines the locales served by the catalogue and the small amount
of localized vocabulary the engine-facing layers need (origin labels).

Locale Resolution:

  - Explicit: a "locale" query parameter wins when it names a supported locale.
  - Negotiated: otherwise the Accept-Language header is matched with x/text.
  - Default: Arabic, matching the storefront's primary audience.
*/
package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a supported content language code.
type Locale string

const (
	// Arabic is the default locale, rendered right-to-left.
	Arabic Locale = "ar"

	// English is the secondary locale, rendered left-to-right.
	English Locale = "en"
)

// Default is the locale used when nothing else resolves.
const Default = Arabic

// Locales lists every supported locale in display order.
var Locales = []Locale{Arabic, English}

// matcher maps arbitrary BCP-47 preferences onto the supported set.
// The first tag is the fallback when nothing matches.
var matcher = language.NewMatcher([]language.Tag{
	language.Arabic,
	language.English,
})

// IsSupported reports whether value names a supported locale.
func IsSupported(value string) bool {
	for _, locale := range Locales {
		if string(locale) == value {
			return true
		}
	}
	return false
}

// Resolve returns value as a [Locale] when supported, or [Default].
func Resolve(value string) Locale {
	if IsSupported(value) {
		return Locale(value)
	}
	return Default
}

// Negotiate picks the best supported locale for an Accept-Language header.
// An empty or unparseable header yields [Default].
func Negotiate(acceptLanguage string) Locale {
	return NegotiateOr(acceptLanguage, Default)
}

// NegotiateOr is [Negotiate] with an explicit fallback locale.
func NegotiateOr(acceptLanguage string, fallback Locale) Locale {
	if acceptLanguage == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}

	return Locales[index]
}

// Direction returns the text direction ("rtl" or "ltr") for locale.
func Direction(locale Locale) string {
	if locale == Arabic {
		return "rtl"
	}
	return "ltr"
}

// OpenGraphLocale returns the og:locale value used in page metadata.
func OpenGraphLocale(locale Locale) string {
	if locale == Arabic {
		return "ar_EG"
	}
	return "en_US"
}
