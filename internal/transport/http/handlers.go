package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"scanintake/internal/dto"
	"scanintake/internal/observability/metrics"
	"scanintake/internal/observability/middleware"
	"scanintake/internal/service"
)

type handler struct {
	svc       *service.Service
	publicDir string
}

func (h *handler) submitScan(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	traceID := middleware.TraceIDFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.ScansStoredTotal.WithLabelValues("failure").Inc()
		slog.Warn("scan submission body read failed", "error", err, "request_id", reqID, "trace_id", traceID)
		writeError(w, http.StatusBadRequest, "unreadable request body")
		return
	}

	res, err := h.svc.Ingest(r.Context(), body)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrEmptyBody),
			errors.Is(err, service.ErrMalformedJSON),
			errors.Is(err, service.ErrMissingEmployee):
			status = http.StatusBadRequest
		}
		metrics.ScansStoredTotal.WithLabelValues("failure").Inc()
		slog.Warn("scan submission rejected", "error", err, "status", status, "request_id", reqID, "trace_id", traceID)
		writeError(w, status, err.Error())
		return
	}

	metrics.ScansStoredTotal.WithLabelValues("success").Inc()
	slog.Info("scan stored", "request_id", reqID, "trace_id", traceID)
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) listScans(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	traceID := middleware.TraceIDFromContext(r.Context())

	employee := r.URL.Query().Get("employee")
	items, err := h.svc.List(r.Context(), employee)
	if err != nil {
		metrics.ScanListsTotal.WithLabelValues("failure").Inc()
		slog.Error("scan list failed", "error", err, "employee", employee, "request_id", reqID, "trace_id", traceID)
		writeError(w, http.StatusInternalServerError, "failed to list scans")
		return
	}

	metrics.ScanListsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, dto.ScanListResponse{Items: items})
}

func (h *handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.EmployeesResponse{Employees: h.svc.Employees()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}
