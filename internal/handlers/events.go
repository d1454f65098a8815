package handlers

//go:generate mockgen -source=events.go -destination=mock_events.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-ticket-registry/internal/middlewares"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
)

// EventLister lists the event inventory.
type EventLister interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// TierAdder adds stock to a price tier.
type TierAdder interface {
	AddTier(ctx context.Context, eventName string, price float64, amount, ownerUserID int64) (*models.Event, error)
}

// EventsResponse represents the event inventory
// swagger:model EventsResponse
type EventsResponse struct {
	// Events with price tiers sorted by price
	Events []models.Event `json:"events"`
}

// AddTierRequest represents the JSON body for adding tickets
// swagger:model AddTierRequest
type AddTierRequest struct {
	// Event name, matched regardless of case
	// required: true
	// default: Concert
	EventName string `json:"eventName"`

	// Ticket price
	// required: true
	// default: 50
	Price float64 `json:"price"`

	// Tickets to add
	// required: true
	// default: 10
	Amount int64 `json:"amount"`
}

// EventResponse represents an event after a tier update
// swagger:model EventResponse
type EventResponse struct {
	// Event as persisted
	Event models.Event `json:"event"`
}

// NewListEventsHandler returns an HTTP handler listing events.
// @Summary List events
// @Description Returns all events with their price tiers sorted by price
// @Tags events
// @Produce json
// @Success 200 {object} handlers.EventsResponse "Events"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /events [get]
func NewListEventsHandler(svc EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.ListEvents(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, EventsResponse{Events: events})
	}
}

// NewAddTierHandler returns an HTTP handler adding tickets to an event. The
// caller becomes the owner of a newly created tier.
// @Summary Add tickets
// @Description Adds tickets at a price to an event, creating the event or tier as needed. Adding to an existing tier keeps its owner.
// @Tags events
// @Accept json
// @Produce json
// @Param addTierRequest body handlers.AddTierRequest true "Tier request"
// @Success 200 {object} handlers.EventResponse "Updated event"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /events/tiers [post]
// @Security BearerAuth
func NewAddTierHandler(svc TierAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AddTierRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		event, err := svc.AddTier(r.Context(), req.EventName, req.Price, req.Amount, claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, EventResponse{Event: *event})
	}
}
