// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the read-only data model of the parts catalogue and the
[Index] built once from it at startup.

Core Responsibility:

  - Taxonomy: categories and the vehicle make → model → years tree used to
    populate selectors.
  - Products: localized names, supply-origin variants, and the denormalized
    vehicle compatibility entries the filter engine matches against.
  - Sources: loading the three raw collections from files or PostgreSQL.

References between collections (category ids, makes, models, origins) are plain
strings and may dangle. Nothing in this package rejects them; lookups fall back
to the raw value instead.
*/
package catalog

import (
	"maps"
	"slices"

	"github.com/taibuivan/super3000/internal/i18n"
)

// # Localized Text

// Text is a piece of content keyed by locale.
type Text map[i18n.Locale]string

// In returns the text for locale, or "" when that locale is missing.
func (t Text) In(locale i18n.Locale) string {
	return t[locale]
}

// Clone returns an independent copy of t.
func (t Text) Clone() Text {
	return maps.Clone(t)
}

// # Taxonomy

// Category groups products for the category selector.
type Category struct {
	ID   string `json:"id"`
	Name Text   `json:"name"`
}

// Clone returns a deep copy of c.
func (c Category) Clone() Category {
	c.Name = c.Name.Clone()
	return c
}

// CarModel is one model of a make and the explicit list of supported years.
// Years are not assumed to be contiguous or sorted.
type CarModel struct {
	Model string `json:"model"`
	Years []int  `json:"years"`
}

// CarMake is a vehicle make with its models in catalogue order.
type CarMake struct {
	Make   string     `json:"make"`
	Models []CarModel `json:"models"`
}

// Clone returns a deep copy of m.
func (m CarMake) Clone() CarMake {
	models := slices.Clone(m.Models)
	for i := range models {
		models[i].Years = slices.Clone(models[i].Years)
	}
	m.Models = models
	return m
}

// # Products

// CompatibleCar is a compatibility entry attached to a product. It is a copy
// and need not exist in the make taxonomy.
type CompatibleCar struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Years []int  `json:"years"`
}

// Variant is a sourcing option of a product (e.g. the Korean-made part).
type Variant struct {
	Origin string `json:"origin"` // Opaque; canonical values live in i18n
	SKU    string `json:"sku"`
	Note   Text   `json:"note"`
}

// Product is a single catalogue entry.
type Product struct {
	ID             string          `json:"id"`
	Name           Text            `json:"name"`
	Description    Text            `json:"description"`
	Category       string          `json:"category"`
	Image          string          `json:"image,omitempty"`
	Variants       []Variant       `json:"variants"`
	CompatibleCars []CompatibleCar `json:"compatible_cars"`
}

// Clone returns a deep copy of p. Nothing in the copy shares memory with p.
func (p Product) Clone() Product {
	p.Name = p.Name.Clone()
	p.Description = p.Description.Clone()

	variants := slices.Clone(p.Variants)
	for i := range variants {
		variants[i].Note = variants[i].Note.Clone()
	}
	p.Variants = variants

	cars := slices.Clone(p.CompatibleCars)
	for i := range cars {
		cars[i].Years = slices.Clone(cars[i].Years)
	}
	p.CompatibleCars = cars

	return p
}

// HasOrigin reports whether any variant of p comes from origin.
func (p *Product) HasOrigin(origin string) bool {
	for _, variant := range p.Variants {
		if variant.Origin == origin {
			return true
		}
	}
	return false
}

// # Raw Collections

// Data is the raw catalogue as delivered by a [Source].
type Data struct {
	Categories []Category
	Cars       []CarMake
	Products   []Product
}
