// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/pkg/slice"
)

// # Dependent Options

// AvailableModels returns the models selectable for make. It is empty until
// a make is chosen.
func AvailableModels(index *catalog.Index, makeName string) []string {
	if makeName == "" {
		return []string{}
	}
	return index.ModelsFor(makeName)
}

// AvailableYears returns the years selectable for make and model. It is empty
// until both are chosen.
func AvailableYears(index *catalog.Index, makeName, model string) []int {
	if makeName == "" || model == "" {
		return []int{}
	}
	return index.YearsFor(makeName, model)
}

// Choice is one entry of a selector: the facet value and its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options is the full set of selector contents for one state.
type Options struct {
	Categories []Choice `json:"categories"`
	Origins    []Choice `json:"origins"`
	Makes      []string `json:"makes"`
	Models     []string `json:"models"`
	Years      []int    `json:"years"`
}

/*
BuildOptions derives every selector list for state.

Categories and origins are static. Models and years follow the selected make
and model, so the result must be rebuilt after every transition.

Parameters:
  - index: *catalog.Index
  - state: facet.State
  - locale: i18n.Locale (labels)

Returns:
  - Options: Non-nil lists, makes deduplicated in catalogue order
*/
func BuildOptions(index *catalog.Index, state facet.State, locale i18n.Locale) Options {
	categories := slice.Map(index.Categories(), func(category catalog.Category) Choice {
		return Choice{Value: category.ID, Label: index.CategoryName(category.ID, locale)}
	})

	origins := slice.Map(i18n.Origins(), func(origin string) Choice {
		return Choice{Value: origin, Label: i18n.OriginLabel(locale, origin)}
	})

	return Options{
		Categories: categories,
		Origins:    origins,
		Makes:      slice.Unique(index.Makes()),
		Models:     AvailableModels(index, state.Make),
		Years:      AvailableYears(index, state.Make, state.Model),
	}
}
