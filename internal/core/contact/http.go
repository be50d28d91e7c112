// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/super3000/internal/platform/request"
	"github.com/taibuivan/super3000/internal/platform/respond"
)

// Handler implements the HTTP layer for the contact forms.
type Handler struct {
	service *Service
}

// NewHandler constructs a contact [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the contact endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.channel)
	router.Post("/inquiry", handler.submitInquiry)
	router.Post("/trader", handler.submitTrader)

	return router
}

/*
GET /api/v1/contact.

Description: Returns the shop's contact details and bare WhatsApp chat link
for the header and floating contact buttons.

Response:
  - 200: Channel
*/
func (handler *Handler) channel(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Channel())
}

/*
POST /api/v1/contact/inquiry.

Description: Renders the contact form into a WhatsApp link in the request locale.

Request:
  - body: InquiryForm

Response:
  - 200: Link
  - 400: VALIDATION_ERROR (missing fields, phone under 8 digits, bad JSON)
*/
func (handler *Handler) submitInquiry(writer http.ResponseWriter, request *http.Request) {
	var form InquiryForm
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.service.SubmitInquiry(request.Context(), requestutil.Locale(request), form)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, link)
}

/*
POST /api/v1/contact/trader.

Description: Renders the trader registration form into a WhatsApp link.

Request:
  - body: TraderForm

Response:
  - 200: Link
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) submitTrader(writer http.ResponseWriter, request *http.Request) {
	var form TraderForm
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.service.SubmitTrader(request.Context(), requestutil.Locale(request), form)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, link)
}
