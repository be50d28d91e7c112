// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/super3000/internal/facet"
	requestutil "github.com/taibuivan/super3000/internal/platform/request"
	"github.com/taibuivan/super3000/internal/platform/respond"
)

// SourceProducts labels evaluations made by the listing endpoint.
const SourceProducts = "products"

// Handler implements the HTTP layer for product listings and pages.
type Handler struct {
	service *Service
}

// NewHandler constructs a products [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the product endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Get("/{id}", handler.getProduct)

	return router
}

/*
GET /api/v1/products?q=&category=&origin=&make=&model=&year=.

Description: Filters the whole catalogue by the given facets. Results are
never paged and keep catalogue order. Unknown values simply match nothing.

Request:
  - q: string (case-insensitive name search in the request locale)
  - category, origin, make, model, year: string

Response:
  - 200: Listing
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	listing := handler.service.Browse(request.Context(), StateFromQuery(request), requestutil.Locale(request), SourceProducts)
	respond.OK(writer, listing)
}

/*
GET /api/v1/products/{id}.

Description: Returns one product rendered for the request locale.

Response:
  - 200: Detail
  - 404: NOT_FOUND
*/
func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.Get(requestutil.ID(request, "id"), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

// StateFromQuery reads a complete selection from query parameters. It is
// taken as given: no cascading reset applies, so a year sent without a model
// still filters.
func StateFromQuery(request *http.Request) facet.State {
	return facet.State{
		Search:     requestutil.Query(request, "q"),
		CategoryID: requestutil.Query(request, "category"),
		Origin:     requestutil.Query(request, "origin"),
		Make:       requestutil.Query(request, "make"),
		Model:      requestutil.Query(request, "model"),
		Year:       requestutil.Query(request, "year"),
	}
}
