// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package products

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/filter"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/apperr"
	"github.com/taibuivan/super3000/internal/platform/metrics"
	"github.com/taibuivan/super3000/pkg/slice"
)

// Linker builds the request link attached to a product.
type Linker interface {
	ProductLink(locale i18n.Locale, productName, categoryName string) string
}

// # Service Layer

// Service evaluates selections against the catalogue and renders the result.
//
// # Concurrency
//
// The index is immutable, so a single Service is shared by all requests.
type Service struct {
	index  *catalog.Index
	linker Linker
	logger *slog.Logger
}

// NewService constructs a products [Service].
func NewService(index *catalog.Index, linker Linker, logger *slog.Logger) *Service {
	return &Service{index: index, linker: linker, logger: logger}
}

/*
Browse filters the catalogue by state and renders the listing.

Parameters:
  - ctx: context.Context
  - state: facet.State
  - locale: i18n.Locale (search language and labels)
  - source: string (metrics label: "products", "browse", "cli")

Returns:
  - Listing: Cards in catalogue order plus the options for state
*/
func (service *Service) Browse(ctx context.Context, state facet.State, locale i18n.Locale, source string) Listing {
	matched := filter.Filter(service.index, state, locale)
	active := !state.IsEmpty()

	metrics.RecordFilter(source, active, len(matched))
	service.logger.DebugContext(ctx, "filter_evaluated",
		slog.String("source", source),
		slog.Bool("active", active),
		slog.Int("results", len(matched)),
	)

	return Listing{
		State:   state,
		Active:  active,
		Total:   len(matched),
		Items:   slice.Map(matched, func(product catalog.Product) Card { return service.card(product, locale) }),
		Options: filter.BuildOptions(service.index, state, locale),
	}
}

/*
Get renders the page of one product.

Parameters:
  - id: string
  - locale: i18n.Locale

Returns:
  - *Detail: Localized product
  - error: NOT_FOUND when no product has this id
*/
func (service *Service) Get(id string, locale i18n.Locale) (*Detail, error) {
	product, ok := service.index.Product(id)
	if !ok {
		return nil, apperr.NotFound("Product")
	}

	category := service.category(product, locale)
	name := product.Name.In(locale)

	return &Detail{
		ID:          product.ID,
		Name:        name,
		Description: product.Description.In(locale),
		Category:    category,
		Image:       catalog.ImageOrPlaceholder(product.Image),
		Variants:    variants(product, locale),
		Compatibility: slice.Map(product.CompatibleCars, func(car catalog.CompatibleCar) CompatibilityView {
			return CompatibilityView{Make: car.Make, Model: car.Model, Years: car.Years, Line: catalog.CompatibilityLine(car)}
		}),
		InquiryURL: service.linker.ProductLink(locale, name, category.Name),
	}, nil
}

// # Rendering

func (service *Service) card(product catalog.Product, locale i18n.Locale) Card {
	category := service.category(product, locale)
	name := product.Name.In(locale)

	shown := product.CompatibleCars
	if len(shown) > cardCompatibilityLines {
		shown = shown[:cardCompatibilityLines]
	}

	return Card{
		ID:             product.ID,
		Name:           name,
		Description:    product.Description.In(locale),
		Category:       category,
		Image:          catalog.ImageOrPlaceholder(product.Image),
		Variants:       variants(product, locale),
		Compatibility:  slice.Map(shown, catalog.CompatibilityLine),
		MoreCompatible: len(product.CompatibleCars) - len(shown),
		InquiryURL:     service.linker.ProductLink(locale, name, category.Name),
		DetailPath:     DetailPath(locale, product.ID),
	}
}

func (service *Service) category(product catalog.Product, locale i18n.Locale) CategoryRef {
	return CategoryRef{ID: product.Category, Name: service.index.CategoryName(product.Category, locale)}
}

func variants(product catalog.Product, locale i18n.Locale) []VariantView {
	return slice.Map(product.Variants, func(variant catalog.Variant) VariantView {
		return VariantView{
			Origin:      variant.Origin,
			OriginLabel: i18n.OriginLabel(locale, variant.Origin),
			SKU:         variant.SKU,
			Note:        variant.Note.In(locale),
		}
	})
}

// DetailPath returns the storefront path of a product page.
func DetailPath(locale i18n.Locale, id string) string {
	return fmt.Sprintf("/%s/products/%s", locale, id)
}
