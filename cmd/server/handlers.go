package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cours-de-latin/numerals"
	"github.com/cours-de-latin/numerals/internal/app"
	"github.com/cours-de-latin/numerals/internal/config"
	"github.com/cours-de-latin/numerals/internal/middleware"
)

// ---- JSON response types ------------------------------------------------

// Values are encoded as JSON strings so the large named powers keep every
// digit.
type resultJSON struct {
	Word    string           `json:"word"`
	Lang    string           `json:"lang"`
	Numeral bool             `json:"numeral"`
	Ordinal bool             `json:"ordinal"`
	Class   string           `json:"class"`
	Value   *decimal.Decimal `json:"value,omitempty"`
}

type batchRequest struct {
	Lang   string   `json:"lang"`
	Words  []string `json:"words"`
	Strict *bool    `json:"strict"`
}

type batchResponse struct {
	Lang    string       `json:"lang"`
	Results []resultJSON `json:"results"`
}

type entryJSON struct {
	Value decimal.Decimal `json:"value"`
	Forms []string        `json:"forms"`
}

type magnitudesResponse struct {
	Lang    string      `json:"lang"`
	Entries []entryJSON `json:"entries"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func toResultJSON(word string, p numerals.Parser, r numerals.Result) resultJSON {
	out := resultJSON{
		Word:    word,
		Lang:    p.Language().String(),
		Numeral: r.IsNumeral(),
		Ordinal: r.IsOrdinal(),
		Class:   r.Class.String(),
	}
	if r.IsNumeral() {
		v := r.Value
		out.Value = &v
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: middleware.RequestIDFromCtx(r.Context())})
}

// ---- handlers -----------------------------------------------------------

type api struct {
	parse   config.ParseConfig
	maxBody int64
}

// parser resolves the lang parameter, falling back to the configured
// default language.
func (a api) parser(lang string) (numerals.Parser, error) {
	if lang == "" {
		lang = a.parse.DefaultLanguage
	}
	p, err := numerals.LookupString(lang)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", lang, err)
	}
	return p, nil
}

func (a api) strict(raw string) (bool, error) {
	if raw == "" {
		return a.parse.StrictSpelling, nil
	}
	return strconv.ParseBool(raw)
}

func (a api) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	word := q.Get("word")
	if word == "" {
		writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	p, err := a.parser(q.Get("lang"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	strict, err := a.strict(q.Get("strict"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "'strict' must be a boolean")
		return
	}

	res := p.Parse(word, numerals.StrictSpelling(strict))
	status := http.StatusOK
	if !res.IsNumeral() {
		status = http.StatusNotFound
	}
	writeJSON(w, status, toResultJSON(word, p, res))
}

func (a api) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, a.maxBody))
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "body must be JSON with a 'words' array")
		return
	}
	if len(body.Words) == 0 {
		writeError(w, r, http.StatusBadRequest, "'words' must not be empty")
		return
	}
	if len(body.Words) > a.parse.MaxBatchSize {
		writeError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("at most %d words per batch (got %d)", a.parse.MaxBatchSize, len(body.Words)))
		return
	}
	p, err := a.parser(body.Lang)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	strict := a.parse.StrictSpelling
	if body.Strict != nil {
		strict = *body.Strict
	}

	out := make([]resultJSON, 0, len(body.Words))
	for _, word := range body.Words {
		out = append(out, toResultJSON(word, p, p.Parse(word, numerals.StrictSpelling(strict))))
	}
	writeJSON(w, http.StatusOK, batchResponse{Lang: p.Language().String(), Results: out})
}

func (a api) handleMagnitudes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return
	}
	p, err := a.parser(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	entries := p.Table().Entries()
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON{Value: e.Value, Forms: e.Forms})
	}
	writeJSON(w, http.StatusOK, magnitudesResponse{Lang: p.Language().String(), Entries: out})
}

func handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return
	}
	tags := numerals.Languages()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	writeJSON(w, http.StatusOK, languagesResponse{Languages: out})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: app.BuildVersion()})
}

// newHandler wires the routes and the middleware stack.
func newHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	a := api{parse: cfg.Parse, maxBody: cfg.Server.MaxBodyBytes}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse/batch", a.handleBatch)
	mux.HandleFunc("/api/parse", a.handleParse)
	mux.HandleFunc("/api/magnitudes", a.handleMagnitudes)
	mux.HandleFunc("/api/languages", handleLanguages)
	mux.HandleFunc("/health", handleHealth)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
