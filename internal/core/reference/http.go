// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/super3000/internal/facet"
	requestutil "github.com/taibuivan/super3000/internal/platform/request"
	"github.com/taibuivan/super3000/internal/platform/respond"
)

// Handler implements the HTTP layer for selector data.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the selector endpoints to router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/categories", handler.listCategories)
	router.Get("/origins", handler.listOrigins)
	router.Get("/options", handler.options)

	router.Route("/makes", func(makeRoute chi.Router) {
		makeRoute.Get("/", handler.listMakes)
		makeRoute.Get("/{make}/models", handler.listModels)
		makeRoute.Get("/{make}/models/{model}/years", handler.getYears)
	})
}

/*
GET /api/v1/categories.

Description: Lists categories with names in the request locale.

Response:
  - 200: []filter.Choice
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories := handler.service.ListCategories(requestutil.Locale(request))
	respond.List(writer, categories, len(categories))
}

/*
GET /api/v1/origins.

Description: Lists the canonical supply origins with localized labels.

Response:
  - 200: []filter.Choice
*/
func (handler *Handler) listOrigins(writer http.ResponseWriter, request *http.Request) {
	origins := handler.service.ListOrigins(requestutil.Locale(request))
	respond.List(writer, origins, len(origins))
}

/*
GET /api/v1/makes.

Description: Lists vehicle makes in catalogue order.

Response:
  - 200: []string
*/
func (handler *Handler) listMakes(writer http.ResponseWriter, _ *http.Request) {
	makes := handler.service.ListMakes()
	respond.List(writer, makes, len(makes))
}

/*
GET /api/v1/makes/{make}/models.

Description: Lists the models of one make. Unknown makes return an empty list.

Request:
  - make: string (path)

Response:
  - 200: []string
*/
func (handler *Handler) listModels(writer http.ResponseWriter, request *http.Request) {
	models := handler.service.ListModels(requestutil.Param(request, "make"))
	respond.List(writer, models, len(models))
}

/*
GET /api/v1/makes/{make}/models/{model}/years.

Description: Returns the supported years of one model and their display span.

Response:
  - 200: YearRange
*/
func (handler *Handler) getYears(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.GetYears(
		requestutil.Param(request, "make"),
		requestutil.Param(request, "model"),
	))
}

/*
GET /api/v1/options?make=&model=.

Description: Returns every selector list for the given make and model.

Response:
  - 200: filter.Options
*/
func (handler *Handler) options(writer http.ResponseWriter, request *http.Request) {
	state := facet.State{}.
		WithMake(requestutil.Query(request, "make")).
		WithModel(requestutil.Query(request, "model"))

	respond.OK(writer, handler.service.Options(state, requestutil.Locale(request)))
}
