package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/fitness-tracker-backend/internal/catalog"
	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
)

// ExerciseHandler serves the static catalogs and the 30-day challenge plans.
type ExerciseHandler struct{}

func NewExerciseHandler() *ExerciseHandler {
	return &ExerciseHandler{}
}

func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	exercises, err := catalog.List(domain.ExerciseType(mux.Vars(r)["type"]))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, exercises)
}

func (h *ExerciseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	exercise, err := catalog.Get(domain.ExerciseType(vars["type"]), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, exercise)
}

type challengeResponse struct {
	Type domain.ExerciseType   `json:"type"`
	Days int                   `json:"days"`
	Plan []domain.ChallengeDay `json:"plan"`
}

func (h *ExerciseHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	kind := domain.ExerciseType(mux.Vars(r)["type"])
	plan, err := domain.ChallengePlan(kind)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no challenge plan: %s", err))
		return
	}

	writeJSON(w, http.StatusOK, challengeResponse{Type: kind, Days: len(plan), Plan: plan})
}
