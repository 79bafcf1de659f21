package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/home-affordability/internal/logging"
	"github.com/Dan9191/home-affordability/internal/models"
	"github.com/Dan9191/home-affordability/internal/service"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Calculate handles POST /api/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateRequest
	if !h.decode(w, r, &req) {
		return
	}

	_, result, err := h.svc.Calculate(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err, ErrMsgCalculationFailed)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CalculateReport handles POST /api/calculate/report
func (h *Handler) CalculateReport(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.svc.SendReport(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err, ErrMsgReportFailed)
		return
	}
	respondJSON(w, http.StatusAccepted, result)
}

// KeyRate handles GET /key-rate
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.KeyRate(r.Context())
	if err != nil {
		logging.FromContext(r.Context(), h.log).WithError(err).Error("Key rate lookup failed")
		respondError(w, http.StatusBadGateway, ErrMsgKeyRateFailed)
		return
	}
	respondJSON(w, http.StatusOK, rate)
}

// Healthz handles GET /healthz
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logging.FromContext(r.Context(), h.log).WithError(err).Debug("Undecodable request body")
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	return true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var inputErr *service.InputError
	switch {
	case errors.Is(err, service.ErrInvalidNumber):
		respondError(w, http.StatusBadRequest, ErrMsgInvalidNumbers)
	case errors.Is(err, service.ErrNonPositiveRate):
		respondError(w, http.StatusBadRequest, ErrMsgNonPositiveRate)
	case errors.Is(err, service.ErrOutOfRange) && errors.As(err, &inputErr):
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgOutOfRange, inputErr.Field))
	case errors.Is(err, service.ErrInvalidEmail):
		respondError(w, http.StatusBadRequest, ErrMsgInvalidEmail)
	case errors.Is(err, service.ErrMailDisabled):
		respondError(w, http.StatusServiceUnavailable, ErrMsgMailDisabled)
	default:
		logging.FromContext(r.Context(), h.log).WithError(err).Error("Request failed")
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
