// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/super3000/internal/platform/request"
	"github.com/taibuivan/super3000/internal/platform/validate"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	var target payload
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kia"}`))
	require.NoError(t, requestutil.DecodeJSON(request, &target))
	assert.Equal(t, "Kia", target.Name)

	request = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, requestutil.DecodeJSON(request, &target), validate.ErrInvalidJSON)
}

func TestDecodeOptionalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "absent", body: "", want: "keep"},
		{name: "whitespace_only", body: "  \n", want: "keep"},
		{name: "present", body: `{"name":"Toyota"}`, want: "Toyota"},
		{name: "malformed", body: `{"name":`, want: "keep", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := payload{Name: "keep"}

			request := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.body != "" {
				request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			}

			err := requestutil.DecodeOptionalJSON(request, &target)
			if tt.wantErr {
				assert.ErrorIs(t, err, validate.ErrInvalidJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, target.Name)
		})
	}
}

func TestQueryAndLocale(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?make=+Kia+", nil)
	assert.Equal(t, "Kia", requestutil.Query(request, "make"))
	assert.Empty(t, requestutil.Query(request, "model"))

	assert.Equal(t, i18n.Default, requestutil.Locale(request))

	request = request.WithContext(ctxutil.WithLocale(request.Context(), i18n.English))
	assert.Equal(t, i18n.English, requestutil.Locale(request))
}
