// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

// # Supply Origins

// Canonical origin values. The catalogue treats origin as an open string, so
// these only drive the selector list and labels.
const (
	OriginKorean  = "Korean"
	OriginChinese = "Chinese"
	OriginThai    = "Thai"
)

// originLabels holds the localized label of each canonical origin.
var originLabels = map[Locale]map[string]string{
	Arabic: {
		OriginKorean:  "كوري",
		OriginChinese: "صيني",
		OriginThai:    "تايلاندي",
	},
	English: {
		OriginKorean:  "Korean",
		OriginChinese: "Chinese",
		OriginThai:    "Thai",
	},
}

// Origins returns the canonical origins in selector order.
func Origins() []string {
	return []string{OriginKorean, OriginChinese, OriginThai}
}

// OriginLabel returns the localized label for origin, or origin itself when
// no label is known.
func OriginLabel(locale Locale, origin string) string {
	if label, ok := originLabels[locale][origin]; ok {
		return label
	}
	return origin
}
