// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/core/browse"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/middleware"
)

type viewEnvelope struct {
	Data browse.View `json:"data"`
}

/*
TestHandler runs one session through its whole lifecycle over HTTP.
*/
func TestHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Use(middleware.Locale(i18n.Arabic))
	router.Mount("/browse", browse.NewHandler(newService(newClock())).Routes())

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		var request *http.Request
		if body == "" {
			request = httptest.NewRequest(method, target, nil)
		} else {
			request = httptest.NewRequest(method, target, strings.NewReader(body))
			request.Header.Set("Content-Type", "application/json")
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	decode := func(t *testing.T, recorder *httptest.ResponseRecorder) browse.View {
		t.Helper()
		var envelope viewEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		return envelope.Data
	}

	created := serve(http.MethodPost, "/browse", "")
	require.Equal(t, http.StatusCreated, created.Code)
	view := decode(t, created)
	require.NotEmpty(t, view.ID)
	assert.Equal(t, 3, view.Total)
	base := "/browse/" + view.ID

	t.Run("patch", func(t *testing.T) {
		recorder := serve(http.MethodPatch, base+"?locale=en", `{"transitions":[{"field":"category","value":"oils"}]}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		got := decode(t, recorder)
		assert.Equal(t, "oils", got.State.CategoryID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Gear Lubricant 75W-90", got.Items[0].Name)
	})

	t.Run("get_uses_request_locale", func(t *testing.T) {
		recorder := serve(http.MethodGet, base, "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "زيوت", decode(t, recorder).Items[0].Category.Name)
	})

	t.Run("bad_requests", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(http.MethodPatch, base, `{"transitions":`).Code)
		assert.Equal(t, http.StatusBadRequest, serve(http.MethodPatch, base, `{"transitions":[]}`).Code)
		assert.Equal(t, http.StatusBadRequest, serve(http.MethodPatch, base, `{"transitions":[{"field":"size","value":"L"}]}`).Code)
		assert.Equal(t, http.StatusBadRequest, serve(http.MethodPost, "/browse", `not json`).Code)
	})

	t.Run("clear", func(t *testing.T) {
		recorder := serve(http.MethodPost, base+"/clear", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.False(t, decode(t, recorder).Active)
	})

	t.Run("delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, serve(http.MethodDelete, base, "").Code)
		assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, base, "").Code)
	})
}
