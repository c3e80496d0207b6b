// Package server exposes the calculators and user preferences over a JSON
// HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/iwvelando/calckit/internal/export"
	"github.com/iwvelando/calckit/internal/preferences"
	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/iwvelando/calckit/pkg/format"
	"github.com/iwvelando/calckit/pkg/timecalc"
	"github.com/iwvelando/calckit/pkg/validation"
	"go.uber.org/zap"
)

// Options wires the handler to its collaborators.
type Options struct {
	Runner        *calculator.Runner
	Preferences   *preferences.Service
	MaxBodySize   int64
	DefaultLocale string
	Version       string
}

type handler struct {
	logger        *zap.Logger
	runner        *calculator.Runner
	prefs         *preferences.Service
	maxBodySize   int64
	defaultLocale string
	version       string
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = constants.DefaultLocale
	}
	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:        logger,
		runner:        opts.Runner,
		prefs:         opts.Preferences,
		maxBodySize:   opts.MaxBodySize,
		defaultLocale: opts.DefaultLocale,
		version:       version,
	}

	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)
	r.HandleFunc("/api/locales", h.handleLocales).Methods(http.MethodGet)
	r.HandleFunc("/api/cities", h.handleCities).Methods(http.MethodGet)

	r.HandleFunc("/api/calculators", h.handleListCalculators).Methods(http.MethodGet)
	r.HandleFunc("/api/calculators/{id}", h.handleDescribeCalculator).Methods(http.MethodGet)
	r.HandleFunc("/api/calculators/{id}", h.handleEvaluate).Methods(http.MethodPost)
	r.HandleFunc("/api/calculators/{id}/schedule.{ext:csv|xlsx}", h.handleExport).Methods(http.MethodPost)

	r.HandleFunc("/api/sessions", h.handleNewSession).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/{session}/preferences/{key}", h.handleGetPreference).Methods(http.MethodGet)
	r.HandleFunc("/api/sessions/{session}/preferences/{key}", h.handlePutPreference).Methods(http.MethodPut)
	r.HandleFunc("/api/sessions/{session}/preferences/{key}", h.handleDeletePreference).Methods(http.MethodDelete)

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// logRequests records method, path, status and duration of every request.
func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleLocales(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"default":   format.Match(h.defaultLocale).Tag.String(),
		"supported": format.Supported(),
	})
}

func (h *handler) handleCities(w http.ResponseWriter, r *http.Request) {
	cities := timecalc.Cities
	if q := r.URL.Query().Get("q"); q != "" {
		cities = timecalc.SearchCities(q)
	}
	if cities == nil {
		cities = []timecalc.City{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"cities": cities})
}

type calculatorInfo struct {
	ID       string              `json:"id"`
	Category calculator.Category `json:"category"`
	Summary  string              `json:"summary"`
	Fields   []calculator.Field  `json:"fields"`
}

func describe(def calculator.Definition) calculatorInfo {
	return calculatorInfo{ID: def.ID(), Category: def.Category(), Summary: def.Summary(), Fields: def.Fields()}
}

func (h *handler) handleListCalculators(w http.ResponseWriter, r *http.Request) {
	category := calculator.Category(r.URL.Query().Get("category"))
	list := make([]calculatorInfo, 0)
	for _, def := range h.runner.Registry().List() {
		if category == "" || def.Category() == category {
			list = append(list, describe(def))
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"categories":  h.runner.Registry().Categories(),
		"calculators": list,
	})
}

func (h *handler) handleDescribeCalculator(w http.ResponseWriter, r *http.Request) {
	def, err := h.runner.Registry().Lookup(mux.Vars(r)["id"])
	if err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), "server.handleDescribeCalculator")
		return
	}
	h.writeJSON(w, http.StatusOK, describe(def))
}

type evaluateResponse struct {
	Calculator string            `json:"calculator"`
	Valid      bool              `json:"valid"`
	Locale     string            `json:"locale,omitempty"`
	Errors     validation.Errors `json:"errors,omitempty"`
	Result     any               `json:"result,omitempty"`
	Display    format.Display    `json:"display,omitempty"`
}

// evaluate decodes the body and runs calculator id. It writes the error
// response itself and reports false when the caller must stop.
func (h *handler) evaluate(w http.ResponseWriter, r *http.Request, op string) (calculator.Outcome, bool) {
	id := mux.Vars(r)["id"]
	in, err := h.decodeBody(w, r)
	if err != nil {
		h.respondBodyError(w, err, op)
		return calculator.Outcome{}, false
	}

	out, err := h.runner.Run(id, in)
	switch {
	case errors.Is(err, calculator.ErrUnknownCalculator):
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return out, false
	case err != nil:
		h.respondErrorWithOp(w, http.StatusInternalServerError, calculator.ErrCalculation.Error(), op)
		return out, false
	case !out.Valid:
		h.writeJSON(w, http.StatusUnprocessableEntity, evaluateResponse{
			Calculator: id,
			Errors:     out.Errors,
		})
		return out, false
	}
	return out, true
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	out, ok := h.evaluate(w, r, "server.handleEvaluate")
	if !ok {
		return
	}
	renderer := format.NewRenderer(h.locale(r))
	h.writeJSON(w, http.StatusOK, evaluateResponse{
		Calculator: out.Calculator,
		Valid:      true,
		Locale:     renderer.Locale(),
		Result:     out.Result,
		Display:    renderer.Render(out.Result),
	})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	out, ok := h.evaluate(w, r, op)
	if !ok {
		return
	}

	table, err := export.FromResult(out.Result)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}

	var buf bytes.Buffer
	ext := mux.Vars(r)["ext"]
	contentType := "text/csv"
	if ext == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = export.WriteXLSX(&buf, table)
	} else {
		err = export.WriteCSV(&buf, table)
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export schedule: %v", err), op)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.%s"`, out.Calculator, table.Name, ext))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write export", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleNewSession(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusCreated, map[string]string{"session": uuid.NewString()})
}

// preferenceTarget extracts and checks the session and key path variables.
func (h *handler) preferenceTarget(w http.ResponseWriter, r *http.Request, op string) (string, string, bool) {
	vars := mux.Vars(r)
	if _, err := uuid.Parse(vars["session"]); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "invalid session id", op)
		return "", "", false
	}
	if h.prefs == nil {
		h.respondErrorWithOp(w, http.StatusServiceUnavailable, "preferences are not configured", op)
		return "", "", false
	}
	return vars["session"], vars["key"], true
}

func (h *handler) handleGetPreference(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleGetPreference"
	session, key, ok := h.preferenceTarget(w, r, op)
	if !ok {
		return
	}
	value, err := h.prefs.Get(r.Context(), session, key)
	if err != nil {
		h.respondPreferenceError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

func (h *handler) handlePutPreference(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePutPreference"
	session, key, ok := h.preferenceTarget(w, r, op)
	if !ok {
		return
	}
	raw, err := h.readBody(w, r)
	if err != nil {
		h.respondBodyError(w, err, op)
		return
	}
	errs, err := h.prefs.Put(r.Context(), session, key, raw)
	if err != nil {
		h.respondPreferenceError(w, err, op)
		return
	}
	if !errs.Valid() {
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleDeletePreference(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDeletePreference"
	session, key, ok := h.preferenceTarget(w, r, op)
	if !ok {
		return
	}
	if err := h.prefs.Delete(r.Context(), session, key); err != nil {
		h.respondPreferenceError(w, err, op)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) respondPreferenceError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, preferences.ErrUnknownKey) {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("preference store failed: %v", err), op)
}

// locale picks the ?locale= parameter, then Accept-Language, then the
// configured default.
func (h *handler) locale(r *http.Request) string {
	if l := r.URL.Query().Get("locale"); l != "" {
		return l
	}
	if l := r.Header.Get("Accept-Language"); l != "" {
		return l
	}
	return h.defaultLocale
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	return io.ReadAll(r.Body)
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request) (calculator.Input, error) {
	raw, err := h.readBody(w, r)
	if err != nil {
		return nil, err
	}
	in := calculator.Input{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return in, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return in, nil
}

func (h *handler) respondBodyError(w http.ResponseWriter, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}
