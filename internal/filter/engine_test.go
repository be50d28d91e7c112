// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/filter"
	"github.com/taibuivan/super3000/internal/i18n"
)

/*
TestFilter_Scenarios runs the storefront's reference selections end to end.
*/
func TestFilter_Scenarios(t *testing.T) {
	index := fixture()

	tests := []struct {
		name     string
		state    facet.State
		expected []string
	}{
		{"no_filters", facet.State{}, []string{"A", "B", "C"}},
		{"origin_korean", facet.State{Origin: "Korean"}, []string{"A"}},
		{"origin_any_variant", facet.State{Origin: "Chinese"}, []string{"B", "C"}},
		{"make_kia", facet.State{Make: "Kia"}, []string{"A"}},
		{"category_oils", facet.State{CategoryID: "oils"}, []string{"B"}},
		{"kia_unsupported_year", facet.State{Make: "Kia", Year: "2014"}, []string{}},
		{"kia_supported_year", facet.State{Make: "Kia", Year: "2013"}, []string{"A"}},
		{"dangling_category", facet.State{CategoryID: "ghost-cat"}, []string{"C"}},
		{"unknown_make", facet.State{Make: "Lada"}, []string{}},
		{"unknown_origin", facet.State{Origin: "German"}, []string{}},
		{"year_without_make_is_ignored", facet.State{Year: "1990"}, []string{"A", "B", "C"}},
		{"non_numeric_year", facet.State{Make: "Toyota", Year: "twenty"}, []string{}},
		{"padded_year", facet.State{Make: "Toyota", Year: " 2016 "}, []string{"B"}},
		{"whole_number_year", facet.State{Make: "Toyota", Year: "2016.0"}, []string{"B"}},
		{"fractional_year", facet.State{Make: "Toyota", Year: "2016.5"}, []string{}},
		{"infinite_year", facet.State{Make: "Toyota", Year: "Inf"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.Filter(index, tt.state, i18n.English)
			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

/*
TestFilter_Search verifies trimmed, case-insensitive substring matching on the
active locale's name.
*/
func TestFilter_Search(t *testing.T) {
	index := fixture()

	assert.Equal(t, []string{"A"}, ids(filter.Filter(index, facet.State{Search: "OIL"}, i18n.English)))
	assert.Equal(t, []string{"A"}, ids(filter.Filter(index, facet.State{Search: "  premium  "}, i18n.English)))
	assert.Equal(t, []string{"A", "B", "C"}, ids(filter.Filter(index, facet.State{Search: "   "}, i18n.English)))

	// Only the active locale is searched
	assert.Empty(t, filter.Filter(index, facet.State{Search: "Brake"}, i18n.Arabic))
	assert.Equal(t, []string{"C"}, ids(filter.Filter(index, facet.State{Search: "فرامل"}, i18n.Arabic)))
}

/*
TestFilter_YearExactness checks that gaps in a year list are not supported
years, even though the display span covers them.
*/
func TestFilter_YearExactness(t *testing.T) {
	index := fixture()
	state := facet.State{Make: "Toyota", Model: "Corolla"}

	assert.Equal(t, []string{"B"}, ids(filter.Filter(index, state.WithYear("2016"), i18n.English)))
	assert.Empty(t, filter.Filter(index, state.WithYear("2017"), i18n.English))
	assert.Equal(t, "2015-2018", catalog.FormatYears([]int{2015, 2016, 2018}))
}

/*
TestMatchesVehicle_SingleEntry ensures make, model, and year must all hold on
the same compatibility entry.
*/
func TestMatchesVehicle_SingleEntry(t *testing.T) {
	product := catalog.Product{
		ID: "X",
		CompatibleCars: []catalog.CompatibleCar{
			{Make: "Kia", Model: "Rio", Years: []int{2012}},
			{Make: "Kia", Model: "Cerato", Years: []int{2018}},
		},
	}

	assert.True(t, filter.MatchesVehicle(product, "Kia", "Rio", "2012"))
	assert.True(t, filter.MatchesVehicle(product, "Kia", "", "2018"))
	assert.False(t, filter.MatchesVehicle(product, "Kia", "Rio", "2018"))
	assert.False(t, filter.MatchesVehicle(product, "Toyota", "", ""))
	assert.True(t, filter.MatchesVehicle(product, "", "Corolla", "1990"))
	assert.False(t, filter.MatchesVehicle(catalog.Product{}, "Kia", "", ""))
}

func TestMatchesPredicates(t *testing.T) {
	product := catalog.Product{
		Name:     text("فلتر", "Oil Filter"),
		Category: "filters",
		Variants: []catalog.Variant{{Origin: "Korean"}},
	}

	assert.True(t, filter.MatchesCategory(product, ""))
	assert.True(t, filter.MatchesCategory(product, "filters"))
	assert.False(t, filter.MatchesCategory(product, "Filters"))

	assert.True(t, filter.MatchesOrigin(product, ""))
	assert.False(t, filter.MatchesOrigin(product, "Thai"))

	assert.True(t, filter.MatchesSearch(product, "FILTER", i18n.English))
	assert.False(t, filter.MatchesSearch(product, "pad", i18n.English))
}

/*
TestFilter_Properties checks the algebraic guarantees of the engine over every
combination of a few facet values.
*/
func TestFilter_Properties(t *testing.T) {
	index := fixture()
	all := index.Products()

	var states []facet.State
	for _, search := range []string{"", "oil", "pad"} {
		for _, category := range []string{"", "oils", "filters", "ghost-cat"} {
			for _, origin := range []string{"", "Korean", "Chinese"} {
				for _, vehicle := range []facet.State{{}, {Make: "Kia"}, {Make: "Toyota", Model: "Corolla", Year: "2016"}} {
					vehicle.Search, vehicle.CategoryID, vehicle.Origin = search, category, origin
					states = append(states, vehicle)
				}
			}
		}
	}

	for _, state := range states {
		result := filter.Filter(index, state, i18n.English)

		// Subset, in catalogue order
		assert.Subset(t, ids(all), ids(result))
		assert.True(t, isOrderedSubsequence(ids(all), ids(result)), "order broken for %+v", state)

		// Conjunctivity: every kept product passes each facet on its own
		for _, product := range result {
			assert.True(t, filter.Matches(product, facet.State{Search: state.Search}, i18n.English))
			assert.True(t, filter.Matches(product, facet.State{CategoryID: state.CategoryID}, i18n.English))
			assert.True(t, filter.Matches(product, facet.State{Origin: state.Origin}, i18n.English))
			assert.True(t, filter.Matches(product, facet.State{Make: state.Make, Model: state.Model, Year: state.Year}, i18n.English))
		}

		// ...and every product passing each facet on its own is kept
		for _, product := range all {
			passesAll := filter.Matches(product, facet.State{Search: state.Search}, i18n.English) &&
				filter.Matches(product, facet.State{CategoryID: state.CategoryID}, i18n.English) &&
				filter.Matches(product, facet.State{Origin: state.Origin}, i18n.English) &&
				filter.Matches(product, facet.State{Make: state.Make, Model: state.Model, Year: state.Year}, i18n.English)
			assert.Equal(t, passesAll, slices.Contains(ids(result), product.ID), "product %s for %+v", product.ID, state)
		}

		// Clearing always restores the full catalogue
		assert.Equal(t, ids(all), ids(filter.Filter(index, state.Cleared(), i18n.English)))
	}
}

func isOrderedSubsequence(all, subset []string) bool {
	position := 0
	for _, id := range all {
		if position < len(subset) && subset[position] == id {
			position++
		}
	}
	return position == len(subset)
}
