// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/super3000/internal/facet"
	requestutil "github.com/taibuivan/super3000/internal/platform/request"
	"github.com/taibuivan/super3000/internal/platform/respond"
)

// EditRequest is the body of create and update calls.
type EditRequest struct {
	Transitions []facet.Transition `json:"transitions"`
}

// Handler implements the HTTP layer for browse sessions.
type Handler struct {
	service *Service
}

// NewHandler constructs a browse [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the session endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createSession)
	router.Route("/{id}", func(router chi.Router) {
		router.Get("/", handler.getSession)
		router.Patch("/", handler.updateSession)
		router.Delete("/", handler.deleteSession)
		router.Post("/clear", handler.clearSession)
	})

	return router
}

/*
POST /api/v1/browse.

Description: Starts a session. The body is optional; when present its
transitions are applied to the empty selection.

Request:
  - body: EditRequest (optional)

Response:
  - 201: View
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) createSession(writer http.ResponseWriter, request *http.Request) {
	var body EditRequest
	if err := requestutil.DecodeOptionalJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Create(request.Context(), requestutil.Locale(request), body.Transitions)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, view)
}

/*
GET /api/v1/browse/{id}.

Response:
  - 200: View
  - 404: NOT_FOUND (unknown or expired)
*/
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
PATCH /api/v1/browse/{id}.

Description: Applies transitions in order, e.g.
{"transitions":[{"field":"make","value":"Kia"},{"field":"model","value":"Rio"}]}.
The field "clear" resets everything.

Response:
  - 200: View
  - 400: VALIDATION_ERROR (empty list, unknown field, bad JSON)
  - 404: NOT_FOUND
*/
func (handler *Handler) updateSession(writer http.ResponseWriter, request *http.Request) {
	var body EditRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Apply(request.Context(), requestutil.ID(request, "id"), requestutil.Locale(request), body.Transitions)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
POST /api/v1/browse/{id}/clear.

Response:
  - 200: View with the empty selection
  - 404: NOT_FOUND
*/
func (handler *Handler) clearSession(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Clear(request.Context(), requestutil.ID(request, "id"), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
DELETE /api/v1/browse/{id}.

Response:
  - 204: No Content
  - 404: NOT_FOUND
*/
func (handler *Handler) deleteSession(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
