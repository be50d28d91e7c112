// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/super3000/internal/platform/request"
	"github.com/taibuivan/super3000/internal/platform/respond"
)

// Handler serves the root-level site documents and the page metadata API.
type Handler struct {
	service *Service
}

// NewHandler constructs a site [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the site documents on the root router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/sitemap.xml", handler.sitemap)
}

// Routes returns a [chi.Router] with the metadata endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/meta", handler.pageMeta)
	router.Get("/meta/products/{id}", handler.productMeta)
	router.Get("/structured-data", handler.structuredData)

	return router
}

/*
GET /sitemap.xml.

Response:
  - 200: application/xml urlset
  - 500: INTERNAL_ERROR
*/
func (handler *Handler) sitemap(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.Render()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.XML(writer, http.StatusOK, document)
}

/*
GET /api/v1/site/meta?page=.

Description: Head metadata of a static page in the request locale.

Request:
  - page: string (home, about, products, trader, contact; default home)

Response:
  - 200: Meta
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) pageMeta(writer http.ResponseWriter, request *http.Request) {
	meta, err := handler.service.PageMeta(requestutil.Query(request, "page"), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, meta)
}

/*
GET /api/v1/site/meta/products/{id}.

Response:
  - 200: Meta
  - 404: NOT_FOUND
*/
func (handler *Handler) productMeta(writer http.ResponseWriter, request *http.Request) {
	meta, err := handler.service.ProductMeta(requestutil.ID(request, "id"), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, meta)
}

/*
GET /api/v1/site/structured-data.

Description: The Organization and AutoPartsStore JSON-LD documents, in that
order, for the request locale.

Response:
  - 200: [Organization, LocalBusiness]
*/
func (handler *Handler) structuredData(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)
	respond.OK(writer, []any{handler.service.Organization(locale), handler.service.LocalBusiness(locale)})
}
