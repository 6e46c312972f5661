package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lead-engine/internal/entity"
	"github.com/xavierca1/lead-engine/internal/infra/http/middleware"
	"github.com/xavierca1/lead-engine/internal/usecase"
)

// EventHandler grava eventos comportamentais no stream append-only.
// O rescoring worker pega daqui; este handler não pontua nada.
type EventHandler struct {
	events usecase.EventRepositoryInterface
}

func NewEventHandler(events usecase.EventRepositoryInterface) *EventHandler {
	return &EventHandler{events: events}
}

type TrackEventRequest struct {
	LeadID         int64  `json:"lead_id"`
	EventName      string `json:"event_name"`
	CalculatorType string `json:"calculator_type,omitempty"`
	Value          string `json:"event_value,omitempty"`
}

type TrackEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *EventHandler) TrackEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TrackEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, TrackEventResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	if req.LeadID <= 0 || req.EventName == "" {
		writeJSON(w, http.StatusBadRequest, TrackEventResponse{
			Success: false,
			Message: "lead_id and event_name are required",
		})
		return
	}

	event := entity.NewBehavioralEvent(req.LeadID, req.EventName, req.CalculatorType, req.Value)
	if err := h.events.Save(ctx, event); err != nil {
		writeJSON(w, http.StatusInternalServerError, TrackEventResponse{
			Success: false,
			Message: "Failed to record event",
		})
		return
	}

	middleware.RecordEventTracked(req.EventName)

	writeJSON(w, http.StatusOK, TrackEventResponse{
		Success: true,
		EventID: event.ID,
	})
}
