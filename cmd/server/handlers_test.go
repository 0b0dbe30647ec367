package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/numerals/internal/config"
	"github.com/cours-de-latin/numerals/internal/middleware"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, MaxBodyBytes: 1 << 10},
		CORS:   config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Content-Type"},
		Log:    config.LogConfig{Level: "info", Format: "json"},
		Parse:  config.ParseConfig{DefaultLanguage: "de", MaxBatchSize: 3},
	}
	require.NoError(t, cfg.Validate())
	return newHandler(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, r))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestHandleParse(t *testing.T) {
	t.Parallel()
	h := testHandler(t)

	tests := []struct {
		name    string
		target  string
		status  int
		value   string
		ordinal bool
		lang    string
	}{
		{"default language", "/api/parse?word=zweihundertdreiunddrei%C3%9Fig", http.StatusOK, "233", false, "de"},
		{"french", "/api/parse?lang=fr&word=septante", http.StatusOK, "70", false, "fr"},
		{"regional tag", "/api/parse?lang=fr-CH&word=huitante", http.StatusOK, "80", false, "fr"},
		{"ordinal", "/api/parse?lang=nl&word=derde", http.StatusOK, "3", true, "nl"},
		{"fraction", "/api/parse?lang=nl&word=driekwart", http.StatusOK, "0.75", false, "nl"},
		{"compound", "/api/parse?lang=nl&word=tweeduizend+vijfhonderd", http.StatusOK, "2500", false, "nl"},
		{"lenient", "/api/parse?lang=nl&word=tweeste", http.StatusOK, "2", true, "nl"},
		{"strict", "/api/parse?lang=nl&word=tweeste&strict=true", http.StatusNotFound, "", false, "nl"},
		{"not a numeral", "/api/parse?word=einte", http.StatusNotFound, "", false, "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			got := decode[resultJSON](t, rec)
			assert.Equal(t, tt.lang, got.Lang)
			assert.Equal(t, tt.ordinal, got.Ordinal)
			if tt.value == "" {
				assert.False(t, got.Numeral)
				assert.Nil(t, got.Value)
				assert.Equal(t, "absent", got.Class)
				return
			}
			assert.True(t, got.Numeral)
			require.NotNil(t, got.Value)
			assert.True(t, got.Value.Equal(decimal.RequireFromString(tt.value)), "value %s, want %s", got.Value, tt.value)
		})
	}
}

func TestHandleParse_BadRequests(t *testing.T) {
	t.Parallel()
	h := testHandler(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"missing word", http.MethodGet, "/api/parse", http.StatusBadRequest},
		{"unknown language", http.MethodGet, "/api/parse?lang=en&word=three", http.StatusBadRequest},
		{"bad strict", http.MethodGet, "/api/parse?word=drei&strict=maybe", http.StatusBadRequest},
		{"wrong method", http.MethodPost, "/api/parse?word=drei", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, tt.method, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
			body := decode[errorResponse](t, rec)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), body.RequestID)
		})
	}
}

func TestHandleBatch(t *testing.T) {
	t.Parallel()
	h := testHandler(t)

	rec := do(t, h, http.MethodPost, "/api/parse/batch",
		`{"lang":"nl","words":["tweede","tweeste","hallo"],"strict":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[batchResponse](t, rec)
	assert.Equal(t, "nl", got.Lang)
	require.Len(t, got.Results, 3)
	assert.True(t, got.Results[0].Ordinal)
	assert.False(t, got.Results[1].Numeral, "strict spelling rejects tweeste")
	assert.False(t, got.Results[2].Numeral)
	assert.Equal(t, "tweeste", got.Results[1].Word)
}

func TestHandleBatch_Errors(t *testing.T) {
	t.Parallel()
	h := testHandler(t)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"not json", http.MethodPost, `words`, http.StatusBadRequest},
		{"empty", http.MethodPost, `{"words":[]}`, http.StatusBadRequest},
		{"too many words", http.MethodPost, `{"words":["a","b","c","d"]}`, http.StatusRequestEntityTooLarge},
		{"body too large", http.MethodPost, `{"words":["` + strings.Repeat("x", 2048) + `"]}`, http.StatusRequestEntityTooLarge},
		{"unknown language", http.MethodPost, `{"lang":"ja","words":["ichi"]}`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, ``, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, tt.method, "/api/parse/batch", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleMagnitudes(t *testing.T) {
	t.Parallel()
	h := testHandler(t)

	rec := do(t, h, http.MethodGet, "/api/magnitudes?lang=fr", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[magnitudesResponse](t, rec)
	assert.Equal(t, "fr", got.Lang)
	require.NotEmpty(t, got.Entries)
	assert.True(t, got.Entries[0].Value.IsZero())
	assert.Equal(t, []string{"zéro"}, got.Entries[0].Forms)

	last := got.Entries[len(got.Entries)-1]
	assert.True(t, last.Value.Equal(decimal.New(1, 63)), "largest magnitude %s", last.Value)
	assert.Equal(t, []string{"décilliard"}, last.Forms)
}

func TestHandleLanguagesAndHealth(t *testing.T) {
	t.Parallel()
	h := testHandler(t)

	rec := do(t, h, http.MethodGet, "/api/languages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"de", "fr", "nl"}, decode[languagesResponse](t, rec).Languages)

	rec = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[healthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Version)
}

func TestCORSHeaders(t *testing.T) {
	t.Parallel()
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
