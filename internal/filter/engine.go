// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package filter evaluates a [facet.State] against the catalogue.

Core Responsibility:

  - Results: the ordered subset of products satisfying every active facet.
  - Options: the legal model and year choices for the current make and model.

Every function here is pure and total. Selections that reference nothing in the
catalogue are not errors; they produce empty results.
*/
package filter

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/pkg/slice"
)

// # Evaluation

// Filter returns the products matching state, in catalogue order.
//
// The result is never nil. Predicates are conjunctive: a product is kept only
// when search, category, origin, and vehicle all match.
func Filter(index *catalog.Index, state facet.State, locale i18n.Locale) []catalog.Product {
	criteria := compile(state, locale)
	return slice.Filter(index.Products(), criteria.matches)
}

// Matches reports whether a single product satisfies state.
func Matches(product catalog.Product, state facet.State, locale i18n.Locale) bool {
	return compile(state, locale).matches(product)
}

// criteria is a [facet.State] normalised once per evaluation.
type criteria struct {
	locale   i18n.Locale
	search   string
	category string
	origin   string
	make     string
	model    string
	year     yearFilter
}

// yearFilter is the parsed year facet. A set but non-numeric year matches nothing.
type yearFilter struct {
	set   bool
	valid bool
	value int
}

func compile(state facet.State, locale i18n.Locale) criteria {
	return criteria{
		locale:   locale,
		search:   strings.ToLower(strings.TrimSpace(state.Search)),
		category: state.CategoryID,
		origin:   state.Origin,
		make:     state.Make,
		model:    state.Model,
		year:     parseYear(state.Year),
	}
}

// parseYear reads the year facet as a number, so "2016", " 2016 " and
// "2016.0" are the same year. Fractions, infinities and text match nothing.
func parseYear(raw string) yearFilter {
	if raw == "" {
		return yearFilter{}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value != math.Trunc(value) || math.IsInf(value, 0) {
		return yearFilter{set: true}
	}
	return yearFilter{set: true, valid: true, value: int(value)}
}

func (c criteria) matches(product catalog.Product) bool {
	return MatchesSearch(product, c.search, c.locale) &&
		MatchesCategory(product, c.category) &&
		MatchesOrigin(product, c.origin) &&
		c.matchesVehicle(product)
}

// # Predicates

// MatchesSearch reports whether the product name in locale contains term,
// ignoring case. A blank term matches everything.
func MatchesSearch(product catalog.Product, term string, locale i18n.Locale) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Name.In(locale)), term)
}

// MatchesCategory reports whether the product belongs to category. An empty
// category matches everything.
func MatchesCategory(product catalog.Product, category string) bool {
	return category == "" || product.Category == category
}

// MatchesOrigin reports whether any variant of the product comes from origin.
// An empty origin matches everything.
func MatchesOrigin(product catalog.Product, origin string) bool {
	return origin == "" || product.HasOrigin(origin)
}

// MatchesVehicle reports whether a single compatibility entry of the product
// satisfies make, model, and year together. Model and year are only checked
// when set, and nothing is checked while make is empty.
func MatchesVehicle(product catalog.Product, makeName, model, year string) bool {
	return criteria{make: makeName, model: model, year: parseYear(year)}.matchesVehicle(product)
}

func (c criteria) matchesVehicle(product catalog.Product) bool {
	if c.make == "" {
		return true
	}
	if c.year.set && !c.year.valid {
		return false
	}

	return slices.ContainsFunc(product.CompatibleCars, func(car catalog.CompatibleCar) bool {
		if car.Make != c.make {
			return false
		}
		if c.model != "" && car.Model != c.model {
			return false
		}
		if c.year.set && !slices.Contains(car.Years, c.year.value) {
			return false
		}
		return true
	})
}
