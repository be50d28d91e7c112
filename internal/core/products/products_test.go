// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package products_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/catalog/catalogtest"
	"github.com/taibuivan/super3000/internal/core/contact"
	"github.com/taibuivan/super3000/internal/core/products"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/apperr"
	"github.com/taibuivan/super3000/internal/platform/middleware"
)

func newService() *products.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return products.NewService(catalogtest.Index(), contact.NewService("+2010", logger), logger)
}

func cardIDs(listing products.Listing) []string {
	ids := make([]string, 0, len(listing.Items))
	for _, card := range listing.Items {
		ids = append(ids, card.ID)
	}
	return ids
}

/*
TestService_Browse verifies filtering, the active flag, and options in one listing.
*/
func TestService_Browse(t *testing.T) {
	service := newService()
	ctx := context.Background()

	t.Run("empty_state", func(t *testing.T) {
		listing := service.Browse(ctx, facet.State{}, i18n.English, "test")

		assert.False(t, listing.Active)
		assert.Equal(t, 3, listing.Total)
		assert.Equal(t, []string{"A", "B", "C"}, cardIDs(listing))
		assert.Empty(t, listing.Options.Models)
	})

	t.Run("no_results_is_still_active", func(t *testing.T) {
		listing := service.Browse(ctx, facet.State{Make: "Kia", Year: "2014"}, i18n.English, "test")

		assert.True(t, listing.Active)
		assert.Zero(t, listing.Total)
		assert.NotNil(t, listing.Items)
		assert.Equal(t, []string{"Rio", "Cerato"}, listing.Options.Models)
	})

	t.Run("vehicle", func(t *testing.T) {
		listing := service.Browse(ctx, facet.State{Make: "Hyundai", Model: "Elantra", Year: "2016"}, i18n.English, "test")
		assert.Equal(t, []string{"B", "C"}, cardIDs(listing))
		assert.Equal(t, []int{2016}, listing.Options.Years)
	})
}

/*
TestService_Card checks the card rendering rules shared with the storefront.
*/
func TestService_Card(t *testing.T) {
	listing := newService().Browse(context.Background(), facet.State{}, i18n.English, "test")
	require.Len(t, listing.Items, 3)

	gear := listing.Items[1]
	assert.Equal(t, "Gear Lubricant 75W-90", gear.Name)
	assert.Equal(t, products.CategoryRef{ID: "oils", Name: "Oils"}, gear.Category)
	assert.Equal(t, []string{"Toyota Corolla 2015-2018", "Kia Cerato 2018"}, gear.Compatibility)
	assert.Equal(t, 1, gear.MoreCompatible)
	assert.Equal(t, "/en/products/B", gear.DetailPath)
	require.Len(t, gear.Variants, 2)
	assert.Equal(t, "Economy", gear.Variants[1].Note)

	brake := listing.Items[2]
	assert.Equal(t, products.CategoryRef{ID: "ghost-cat", Name: "ghost-cat"}, brake.Category)
	assert.Equal(t, catalog.PlaceholderImage, brake.Image)
	assert.Zero(t, brake.MoreCompatible)
	assert.Contains(t, brake.InquiryURL, "Category%3A%20ghost-cat")
}

func TestService_Get(t *testing.T) {
	service := newService()

	detail, err := service.Get("A", i18n.Arabic)
	require.NoError(t, err)
	assert.Equal(t, "فلتر زيت ممتاز", detail.Name)
	assert.Equal(t, "فلاتر", detail.Category.Name)
	assert.Equal(t, "كوري", detail.Variants[0].OriginLabel)
	require.Len(t, detail.Compatibility, 1)
	assert.Equal(t, "Kia Rio 2012-2013", detail.Compatibility[0].Line)
	assert.Contains(t, detail.InquiryURL, "https://wa.me/2010?text=")

	_, err = service.Get("missing", i18n.English)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

/*
TestHandler drives the listing through query parameters and the locale middleware.
*/
func TestHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Use(middleware.Locale(i18n.Arabic))
	router.Mount("/products", products.NewHandler(newService()).Routes())

	serve := func(target string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
		return recorder
	}

	t.Run("search_in_english", func(t *testing.T) {
		recorder := serve("/products?q=OIL&locale=en")
		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data products.Listing `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, []string{"A"}, cardIDs(envelope.Data))
		assert.Equal(t, "OIL", envelope.Data.State.Search)
		assert.True(t, envelope.Data.Active)
	})

	t.Run("origin_and_category", func(t *testing.T) {
		var envelope struct {
			Data products.Listing `json:"data"`
		}
		require.NoError(t, json.Unmarshal(serve("/products?origin=Chinese&category=ghost-cat").Body.Bytes(), &envelope))
		assert.Equal(t, []string{"C"}, cardIDs(envelope.Data))
	})

	t.Run("detail", func(t *testing.T) {
		recorder := serve("/products/B?locale=en")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"Gear Lubricant 75W-90"`)
	})

	t.Run("not_found", func(t *testing.T) {
		recorder := serve("/products/nope")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "NOT_FOUND")
	})
}
