// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference serves the "Master Data" of the parts catalogue: the lists
that populate the storefront selectors.

# Core Responsibility

  - Taxonomy: Categories with localized names.
  - Vehicles: The make → model → years tree, walked one level at a time.
  - Origins: Canonical supply origins with localized labels.
  - Options: Every selector list for a given selection in one call.

All data comes from the in-memory [catalog.Index]; nothing here can fail except
on malformed input.
*/
package reference

// # Vehicle Domain

// YearRange is the supported years of one model and their display span.
type YearRange struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Years []int  `json:"years"`
	Span  string `json:"span"`
}
