// Package server assembles the HTTP routes and middleware chain.
package server

import (
	"net/http"
	"net/netip"
	"time"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/fitness-tracker-backend/internal/handler"
	"github.com/yusufkecer/fitness-tracker-backend/internal/metrics"
	"github.com/yusufkecer/fitness-tracker-backend/internal/middleware"
	"github.com/yusufkecer/fitness-tracker-backend/internal/service"
)

const maxBodyBytes = 1 << 20

type Deps struct {
	Users           *service.UserService
	Sessions        *service.SessionService
	Metrics         *metrics.Manager
	MetricsHandler  http.Handler
	AllowedOrigins  string
	RateLimitMax    int
	RateLimitWindow time.Duration
	TrustedProxies  []netip.Prefix
}

func NewRouter(d Deps) *mux.Router {
	userHandler := handler.NewUserHandler(d.Users)
	sessionHandler := handler.NewSessionHandler(d.Sessions)
	exerciseHandler := handler.NewExerciseHandler()

	writeRL := middleware.NewRateLimiter(d.RateLimitMax, d.RateLimitWindow, d.TrustedProxies, d.Metrics)

	r := mux.NewRouter()

	// Global middleware: recovery → logging → CORS → security headers → body limit
	r.Use(middleware.PanicRecovery(d.Metrics))
	r.Use(middleware.LogRequest(d.Metrics))
	r.Use(middleware.CORSMiddleware(d.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBytes(maxBodyBytes))

	if d.MetricsHandler != nil {
		r.Handle("/metrics", d.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.Handle("/users", writeRL.Middleware(http.HandlerFunc(userHandler.Register))).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users/{id}", userHandler.GetByID).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/users/{id}/diet", userHandler.DietRecommendation).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/exercises/{type}", exerciseHandler.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/exercises/{type}/{id}", exerciseHandler.GetByID).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/challenges/{type}", exerciseHandler.Challenge).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/sessions", writeRL.Middleware(http.HandlerFunc(sessionHandler.Create))).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/sessions/daily", sessionHandler.DailyTotal).Methods(http.MethodGet, http.MethodOptions)

	return r
}
