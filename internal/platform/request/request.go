// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/constants"
	"github.com/taibuivan/super3000/internal/platform/ctxutil"
	"github.com/taibuivan/super3000/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	body := http.MaxBytesReader(nil, request.Body, constants.MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// DecodeOptionalJSON is [DecodeJSON] for bodies that may be omitted. An empty
// body leaves target untouched.
func DecodeOptionalJSON(request *http.Request, target interface{}) error {
	if request.Body == nil || request.Body == http.NoBody {
		return nil
	}

	body := http.MaxBytesReader(nil, request.Body, constants.MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/product id) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a query-string value, trimmed of surrounding whitespace.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
Locale returns the content locale negotiated for this request.

Returns:
  - i18n.Locale: Set by middleware.Locale, or i18n.Default when absent
*/
func Locale(request *http.Request) i18n.Locale {
	return ctxutil.GetLocale(request.Context())
}
