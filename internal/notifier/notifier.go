// Package notifier delivers password reset tokens to their owners.
package notifier

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaResetNotifier publishes reset notices to a Kafka topic consumed by
// the mail delivery service.
type KafkaResetNotifier struct {
	writer KafkaWriter
}

// NewKafkaResetNotifier creates a notifier writing through writer.
func NewKafkaResetNotifier(writer KafkaWriter) *KafkaResetNotifier {
	return &KafkaResetNotifier{writer: writer}
}

// NotifyReset publishes notice keyed by user id so notices of one account
// stay ordered.
func (n *KafkaResetNotifier) NotifyReset(ctx context.Context, notice models.ResetNotice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("marshal reset notice: %w", err)
	}

	noticeID := uuid.NewString()
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(notice.UserID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "notice_id", Value: []byte(noticeID)},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish reset notice to Kafka", "notice_id", noticeID, "user_id", notice.UserID, "error", err)
		return err
	}

	logger.Log.Infow("Reset notice published to Kafka", "notice_id", noticeID, "user_id", notice.UserID)
	return nil
}

// LogResetNotifier writes reset notices to the application log. It is used
// when no broker is configured.
type LogResetNotifier struct{}

// NewLogResetNotifier creates a LogResetNotifier.
func NewLogResetNotifier() *LogResetNotifier {
	return &LogResetNotifier{}
}

// NotifyReset logs notice, token included.
func (n *LogResetNotifier) NotifyReset(_ context.Context, notice models.ResetNotice) error {
	logger.Log.Infow("password reset token issued",
		"user_id", notice.UserID,
		"email", notice.Email,
		"token", notice.Token,
		"expires_at", notice.ExpiresAt,
	)
	return nil
}
