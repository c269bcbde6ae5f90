package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
	"github.com/yusufkecer/fitness-tracker-backend/internal/service"
)

type SessionHandler struct {
	service *service.SessionService
}

func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.RecordSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.Record(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "failed to record session")
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	sessions, err := h.service.List(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list sessions")
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// DailyTotal answers GET /sessions/daily?user_id=..&date=YYYY-MM-DD.
func (h *SessionHandler) DailyTotal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	total, err := h.service.DailyTotal(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err, "failed to compute daily total")
		return
	}

	writeJSON(w, http.StatusOK, total)
}

func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user_id parameter")
		return "", false
	}
	return userID, true
}
