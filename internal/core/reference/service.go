// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/filter"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/pkg/slice"
)

// # Service Layer

// Service answers selector queries from the catalogue index.
type Service struct {
	index *catalog.Index
}

// NewService constructs a new reference [Service].
func NewService(index *catalog.Index) *Service {
	return &Service{index: index}
}

// # Taxonomy Methods

/*
ListCategories returns every category with its name in locale.

Parameters:
  - locale: i18n.Locale

Returns:
  - []filter.Choice: Category id and display name, in catalogue order
*/
func (service *Service) ListCategories(locale i18n.Locale) []filter.Choice {
	return slice.Map(service.index.Categories(), func(category catalog.Category) filter.Choice {
		return filter.Choice{Value: category.ID, Label: service.index.CategoryName(category.ID, locale)}
	})
}

// ListOrigins returns the canonical origins with labels in locale.
func (service *Service) ListOrigins(locale i18n.Locale) []filter.Choice {
	return slice.Map(i18n.Origins(), func(origin string) filter.Choice {
		return filter.Choice{Value: origin, Label: i18n.OriginLabel(locale, origin)}
	})
}

// # Vehicle Methods

// ListMakes returns each make once, in catalogue order.
func (service *Service) ListMakes() []string {
	return slice.Unique(service.index.Makes())
}

// ListModels returns the models of make. Unknown makes yield an empty list.
func (service *Service) ListModels(makeName string) []string {
	return filter.AvailableModels(service.index, makeName)
}

/*
GetYears returns the supported years of one model.

Parameters:
  - makeName: string
  - model: string

Returns:
  - YearRange: Years in catalogue order plus the display span; empty when unknown
*/
func (service *Service) GetYears(makeName, model string) YearRange {
	years := filter.AvailableYears(service.index, makeName, model)
	return YearRange{
		Make:  makeName,
		Model: model,
		Years: years,
		Span:  catalog.FormatYears(years),
	}
}

// # Options

// Options returns every selector list for state.
func (service *Service) Options(state facet.State, locale i18n.Locale) filter.Options {
	return filter.BuildOptions(service.index, state, locale)
}
