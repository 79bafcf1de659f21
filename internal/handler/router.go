package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/home-affordability/internal/metrics"
	"github.com/Dan9191/home-affordability/internal/middleware"
)

// NewRouter wires the public routes and the /api routes guarded by auth
func NewRouter(h *Handler, auth mux.MiddlewareFunc, logger *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.RecoverMiddleware(logger, ErrMsgCalculationFailed))

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrMsgNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
	})

	// Public routes
	r.HandleFunc("/healthz", h.Healthz).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/key-rate", h.KeyRate).Methods("GET")

	// Protected routes sit on the root router; a PathPrefix subrouter
	// reports method mismatches as 404.
	r.Handle("/api/calculate", auth(http.HandlerFunc(h.Calculate))).Methods("POST")
	r.Handle("/api/calculate/report", auth(http.HandlerFunc(h.CalculateReport))).Methods("POST")

	return r
}
