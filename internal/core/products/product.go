// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package products renders filtered catalogue listings and product pages.

It is the presentation adapter over the filter engine: it turns a
[facet.State] from query parameters into localized product views, each with a
pre-filled WhatsApp request link.
*/
package products

import (
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/filter"
)

// cardCompatibilityLines is how many compatibility lines a listing card shows.
const cardCompatibilityLines = 2

// # Views

// CategoryRef is a category id with its display name. Unknown ids display as
// themselves.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VariantView is one sourcing option, labelled for the locale.
type VariantView struct {
	Origin      string `json:"origin"`
	OriginLabel string `json:"origin_label"`
	SKU         string `json:"sku"`
	Note        string `json:"note"`
}

// CompatibilityView is one compatibility entry with its display line.
type CompatibilityView struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Years []int  `json:"years"`
	Line  string `json:"line"`
}

// Card is a product as shown in a listing.
type Card struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Category       CategoryRef   `json:"category"`
	Image          string        `json:"image"`
	Variants       []VariantView `json:"variants"`
	Compatibility  []string      `json:"compatibility"`
	MoreCompatible int           `json:"more_compatible"`
	InquiryURL     string        `json:"inquiry_url"`
	DetailPath     string        `json:"detail_path"`
}

// Detail is a product as shown on its own page.
type Detail struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Category      CategoryRef         `json:"category"`
	Image         string              `json:"image"`
	Variants      []VariantView       `json:"variants"`
	Compatibility []CompatibilityView `json:"compatibility"`
	InquiryURL    string              `json:"inquiry_url"`
}

// Listing is the result of one filter evaluation.
//
// Active distinguishes "no filters set" from "filters matched nothing" when
// Items is empty.
type Listing struct {
	State   facet.State    `json:"state"`
	Active  bool           `json:"active"`
	Total   int            `json:"total"`
	Items   []Card         `json:"items"`
	Options filter.Options `json:"options"`
}
