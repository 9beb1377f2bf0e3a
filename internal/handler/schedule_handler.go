// internal/handler/schedule_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-planner/internal/controller"
	"github.com/unclebandit/campaign-planner/internal/service"
)

// ScheduleHandler serves the weekly outreach calendar of a saved plan
type ScheduleHandler struct {
	Service *service.PlanService
}

// NewScheduleHandler creates a new ScheduleHandler with the given service
func NewScheduleHandler(svc *service.PlanService) *ScheduleHandler {
	return &ScheduleHandler{
		Service: svc,
	}
}

// GetScheduleHandler returns every week of the plan with approval state
func (h *ScheduleHandler) GetScheduleHandler(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")

	result, err := h.Service.Schedule(planID)
	if err != nil {
		log.Println("❌ Error building schedule:", err)
		controller.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ApproveHandler signs off the script for one activity in one week
func (h *ScheduleHandler) ApproveHandler(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")

	var payload struct {
		Week     int    `json:"week"`
		Activity string `json:"activity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Activity) == "" {
		http.Error(w, "activity is required", http.StatusBadRequest)
		return
	}

	log.Printf("📥 Approval requested for plan %s week %d: %s\n", planID, payload.Week, payload.Activity)

	approval, err := h.Service.Approve(planID, payload.Week, payload.Activity)
	if err != nil {
		controller.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(approval)
}
