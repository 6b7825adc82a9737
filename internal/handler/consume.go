package handler

import (
	"encoding/json"

	"github.com/arkv-lms/library-service/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Consumer reads committed change events off the broker and hands them to the
// hub for fan-out.
type Consumer struct {
	hub   *Hub
	log   *zap.Logger
	ready chan bool
}

func NewConsumer(hub *Hub, log *zap.Logger) *Consumer {
	return &Consumer{
		hub:   hub,
		log:   log.Named("consumer"),
		ready: make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.ChangeEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			consumer.hub.Broadcast(event.Table, message.Value)

			consumer.log.Debug("change event claimed",
				zap.String("table", event.Table), zap.String("op", event.Op), zap.String("item", event.ItemID))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
