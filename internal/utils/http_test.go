package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "Basic ID",
			id:   "ae",
			want: "ae",
		},
		{
			name: "ID with JSON extension",
			id:   "ae.json",
			want: "ae",
		},
		{
			name: "ID with multiple dots",
			id:   "ae.data.json",
			want: "ae.data",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.HandlerFunc(http.MethodGet, "/api/test/:country", func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "country")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.id, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestParseLinesOfBusinessParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "missing", query: "", want: nil},
		{name: "single", query: "lob=property", want: []string{"property"}},
		{name: "comma separated", query: "lob=property,transport", want: []string{"property", "transport"}},
		{name: "repeated", query: "lob=property&lob=transport", want: []string{"property", "transport"}},
		{name: "blank items dropped", query: "lob=property,,%20", want: []string{"property"}},
		{name: "case preserved", query: "lob=Property", want: []string{"Property"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseLinesOfBusinessParam(params))
		})
	}
}

func TestClientIP(t *testing.T) {
	t.Run("uses remote address host", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.7:52100"
		assert.Equal(t, "10.0.0.7", ClientIP(req, false))
	})

	t.Run("prefers first forwarded hop behind a trusted proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.7:52100"
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		assert.Equal(t, "203.0.113.9", ClientIP(req, true))
	})

	t.Run("ignores forwarded header by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.7:52100"
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		assert.Equal(t, "10.0.0.7", ClientIP(req, false))
	})

	t.Run("falls back to raw remote address", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "pipe"
		assert.Equal(t, "pipe", ClientIP(req, false))
	})
}
