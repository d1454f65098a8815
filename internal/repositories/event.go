package repositories

import (
	"context"
	"math"

	"github.com/sbilibin2017/gw-ticket-registry/internal/docstore"
	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
)

// EventFileRepository stores events and their price tiers in one JSON
// document.
type EventFileRepository struct {
	docs *docstore.Store[models.Event]
}

// NewEventFileRepository creates a repository over docs.
func NewEventFileRepository(docs *docstore.Store[models.Event]) *EventFileRepository {
	return &EventFileRepository{docs: docs}
}

// List returns all events in storage order with tiers sorted by price.
func (r *EventFileRepository) List(ctx context.Context) ([]models.Event, error) {
	events, err := r.docs.Load(ctx)
	for i := range events {
		if events[i].PriceTiers == nil {
			events[i].PriceTiers = []models.PriceTier{}
		}
		events[i].SortTiers()
	}

	logger.Log.Infow(
		"events.list",
		"result", len(events),
		"error", err,
	)

	return events, err
}

// UpsertTier adds amount to the tier at price of the event named eventName.
// The event is created when no event matches the name case-insensitively,
// and the tier is created, owned by ownerUserID, when the event has no tier
// at exactly that price. An existing tier keeps its owner. It returns the
// event as persisted.
func (r *EventFileRepository) UpsertTier(ctx context.Context, eventName string, price float64, amount, ownerUserID int64) (models.Event, error) {
	var updated models.Event
	err := r.docs.Mutate(ctx, func(events []models.Event) ([]models.Event, error) {
		i := indexByEventName(events, eventName)
		if i < 0 {
			events = append(events, models.Event{
				ID:         nextEventID(events),
				Name:       eventName,
				PriceTiers: []models.PriceTier{},
			})
			i = len(events) - 1
		}

		event := &events[i]
		if tier, ok := event.Tier(price); ok {
			if tier.Stock > math.MaxInt64-amount {
				return nil, ErrStockOverflow
			}
			tier.Stock += amount
		} else {
			event.PriceTiers = append(event.PriceTiers, models.PriceTier{
				Price:       price,
				Stock:       amount,
				OwnerUserID: ownerUserID,
			})
		}
		event.SortTiers()

		updated = *event
		updated.PriceTiers = append([]models.PriceTier(nil), event.PriceTiers...)
		return events, nil
	})

	logger.Log.Infow(
		"events.upsert_tier",
		"args", []any{eventName, price, amount, ownerUserID},
		"result", updated.ID,
		"error", err,
	)

	return updated, err
}

func indexByEventName(events []models.Event, name string) int {
	for i := range events {
		if sameKey(events[i].Name, name) {
			return i
		}
	}
	return -1
}

func nextEventID(events []models.Event) int64 {
	var maxID int64
	for _, e := range events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}
