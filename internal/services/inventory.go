package services

//go:generate mockgen -source=inventory.go -destination=mock_inventory.go -package=services

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-ticket-registry/internal/clock"
	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
)

// EventRepository persists events and merges price tiers.
type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	UpsertTier(ctx context.Context, eventName string, price float64, amount, ownerUserID int64) (models.Event, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// InventoryService handles the event inventory and publishes stock changes.
type InventoryService struct {
	repo        EventRepository
	kafkaWriter KafkaWriter
	clock       clock.Clock
}

// NewInventoryService creates a new InventoryService. kafkaWriter may be
// nil, in which case stock changes are not published.
func NewInventoryService(repo EventRepository, kafkaWriter KafkaWriter, clk clock.Clock) *InventoryService {
	if clk == nil {
		clk = clock.Real()
	}
	return &InventoryService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
		clock:       clk,
	}
}

// ListEvents returns all events with tiers sorted by price.
func (s *InventoryService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list events", "error", err)
		return nil, err
	}
	return events, nil
}

// AddTier adds amount tickets at price to the event named eventName,
// creating the event and the tier as needed. Stock added to an existing
// tier does not change its owner.
func (s *InventoryService) AddTier(ctx context.Context, eventName string, price float64, amount, ownerUserID int64) (*models.Event, error) {
	eventName = strings.TrimSpace(eventName)
	if eventName == "" || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) || amount <= 0 || ownerUserID <= 0 {
		logger.Log.Warnw("invalid tier request", "event", eventName, "price", price, "amount", amount, "owner", ownerUserID)
		return nil, ErrMissingField
	}

	event, err := s.repo.UpsertTier(ctx, eventName, price, amount, ownerUserID)
	if err != nil {
		logger.Log.Errorw("failed to upsert tier", "event", eventName, "price", price, "amount", amount, "error", err)
		return nil, err
	}

	var stock int64
	if tier, ok := event.Tier(price); ok {
		stock = tier.Stock
	}
	s.publishStockChange(ctx, models.StockChange{
		ChangeID:  uuid.NewString(),
		Timestamp: s.clock.Now().Unix(),
		EventID:   event.ID,
		EventName: event.Name,
		Price:     price,
		Added:     amount,
		Stock:     stock,
		UserID:    ownerUserID,
	})

	return &event, nil
}

// publishStockChange publishes a stock change to Kafka.
func (s *InventoryService) publishStockChange(ctx context.Context, change models.StockChange) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "change_id", change.ChangeID)
		return
	}

	data, err := json.Marshal(change)
	if err != nil {
		logger.Log.Errorw("Failed to marshal stock change for Kafka", "change_id", change.ChangeID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(change.EventName),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish stock change to Kafka", "change_id", change.ChangeID, "error", err)
	} else {
		logger.Log.Infow("Stock change published to Kafka", "change_id", change.ChangeID, "event_id", change.EventID, "added", change.Added)
	}
}
