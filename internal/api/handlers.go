/**
 * @description
 * This file contains the HTTP handlers for the reconciliation-service's API
 * endpoints. Handlers parse incoming requests (multipart CSV uploads for
 * runs, JSON bodies for the name tools), call the application service, and
 * write JSON responses. They act as the bridge between the web layer and the
 * reconciliation logic.
 *
 * @dependencies
 * - encoding/json, errors, fmt, io, log, net/http: Standard Go libraries.
 * - github.com/go-chi/chi/v5, github.com/google/uuid: Routing and run ids.
 * - internal/app, internal/recon, internal/store: Service logic and custom errors.
 */

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vaultpay/reconciliation-service/internal/app"
	"github.com/vaultpay/reconciliation-service/internal/recon"
	"github.com/vaultpay/reconciliation-service/internal/store"
)

const (
	bankStatementsField = "bank_statements"
	metaBaseExportField = "metabase_export"
	valueDateField      = "value_date"

	defaultListLimit = 50
)

// ReconciliationHandlers holds the application service that handlers will use.
type ReconciliationHandlers struct {
	service        *app.Service
	maxUploadBytes int64
	listMaxLimit   int
}

// NewReconciliationHandlers creates a new instance of ReconciliationHandlers.
func NewReconciliationHandlers(service *app.Service, maxUploadBytes int64, listMaxLimit int) *ReconciliationHandlers {
	return &ReconciliationHandlers{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		listMaxLimit:   listMaxLimit,
	}
}

// extractNameRequest is the JSON body for the narration name tool.
type extractNameRequest struct {
	Narration string `json:"narration"`
}

// fuzzyScoreRequest is the JSON body for the name similarity tool. The
// console sends the extracted narration name and the MetaBase
// firstname+lastname for the displayed row.
type fuzzyScoreRequest struct {
	ExtractedName string `json:"extractedName"`
	DatabaseName  string `json:"databaseName"`
}

// RunReconciliationHandler handles multipart uploads that start a new
// reconciliation run: one or more bank statement CSVs, one MetaBase export
// CSV, and an optional dd/mm/yyyy value date filter.
func (h *ReconciliationHandlers) RunReconciliationHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid multipart form: %v", err))
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[bankStatementsField]) == 0 {
		h.writeError(w, http.StatusBadRequest, "At least one bank statement file is required. Use form field 'bank_statements'.")
		return
	}

	bankStatements := make([]string, 0, len(r.MultipartForm.File[bankStatementsField]))
	for _, header := range r.MultipartForm.File[bankStatementsField] {
		text, err := readUpload(header)
		if err != nil {
			log.Printf("level=warn component=api endpoint=run_reconciliation outcome=reject reason=bank_upload_read_failed file=%s err=%v", header.Filename, err)
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Could not read uploaded file %q", header.Filename))
			return
		}
		bankStatements = append(bankStatements, text)
	}

	metaBaseHeaders := r.MultipartForm.File[metaBaseExportField]
	if len(metaBaseHeaders) == 0 {
		h.writeError(w, http.StatusBadRequest, "A MetaBase export file is required. Use form field 'metabase_export'.")
		return
	}
	metaBaseExport, err := readUpload(metaBaseHeaders[0])
	if err != nil {
		log.Printf("level=warn component=api endpoint=run_reconciliation outcome=reject reason=metabase_upload_read_failed err=%v", err)
		h.writeError(w, http.StatusBadRequest, "Could not read uploaded MetaBase export")
		return
	}

	valueDate := r.FormValue(valueDateField)

	run, err := h.service.RunReconciliation(r.Context(), bankStatements, metaBaseExport, valueDate)
	if err != nil {
		var parseErr *recon.ParseError
		switch {
		case errors.As(err, &parseErr):
			log.Printf("level=warn component=api endpoint=run_reconciliation outcome=reject reason=malformed_csv source=%q line=%d err=%v", parseErr.Source, parseErr.Line, parseErr.Err)
			h.writeError(w, http.StatusBadRequest, parseErr.Error())
		case errors.Is(err, recon.ErrMissingBankStatement),
			errors.Is(err, recon.ErrMissingMetaBaseExport),
			errors.Is(err, recon.ErrInvalidValueDate):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("level=error component=api endpoint=run_reconciliation outcome=failed err=%v", err)
			h.writeError(w, http.StatusInternalServerError, "Reconciliation failed")
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, run)
}

// GetRunHandler returns one persisted run with its full result set.
func (h *ReconciliationHandlers) GetRunHandler(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid run id")
		return
	}

	run, err := h.service.GetRun(r.Context(), runID)
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			h.writeError(w, http.StatusNotFound, "Reconciliation run not found")
			return
		}
		log.Printf("level=error component=api endpoint=get_run outcome=failed run_id=%s err=%v", runID, err)
		h.writeError(w, http.StatusInternalServerError, "Could not load reconciliation run")
		return
	}

	h.writeJSON(w, http.StatusOK, run)
}

// ListRunsHandler returns persisted run summaries, newest first.
func (h *ReconciliationHandlers) ListRunsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}
	if limit > h.listMaxLimit {
		limit = h.listMaxLimit
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, http.StatusBadRequest, "Invalid offset")
			return
		}
		offset = parsed
	}

	summaries, err := h.service.ListRuns(r.Context(), limit, offset)
	if err != nil {
		log.Printf("level=error component=api endpoint=list_runs outcome=failed err=%v", err)
		h.writeError(w, http.StatusInternalServerError, "Could not list reconciliation runs")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  summaries,
		"count": len(summaries),
	})
}

// ExtractNameHandler derives a counterparty name from a narration string.
// The console calls this per displayed row; it is not part of matching.
func (h *ReconciliationHandlers) ExtractNameHandler(w http.ResponseWriter, r *http.Request) {
	var req extractNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"name": h.service.ExtractName(req.Narration),
	})
}

// FuzzyScoreHandler scores the similarity between an extracted narration
// name and a MetaBase name.
func (h *ReconciliationHandlers) FuzzyScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req fuzzyScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int{
		"score": h.service.FuzzyScore(req.ExtractedName, req.DatabaseName),
	})
}

func readUpload(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (h *ReconciliationHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("level=error component=api msg=\"response encode failed\" err=%v", err)
	}
}

func (h *ReconciliationHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
