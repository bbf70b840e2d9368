package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Consumer reads booking events from the topic and hands them to a handler
// already decoded. Undecodable messages are logged and skipped so one bad
// payload cannot wedge the group.
type Consumer struct {
	reader *kafka.Reader
	log    *zap.SugaredLogger
}

func NewConsumer(brokers []string, groupID, topic string, log *zap.SugaredLogger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until the context is canceled or the handler returns an
// error.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		if err := c.handle(ctx, msg.Value, handler); err != nil {
			return err
		}
	}
}

func (c *Consumer) handle(ctx context.Context, payload []byte, handler func(context.Context, BookingEvent) error) error {
	var event BookingEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.log.Warnw("skipping undecodable booking event", "error", err)
		return nil
	}
	return handler(ctx, event)
}
