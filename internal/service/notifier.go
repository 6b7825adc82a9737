package service

import (
	"encoding/json"
	"time"

	"github.com/arkv-lms/library-service/pkg/circuit_breaker"
	"github.com/arkv-lms/library-service/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Notifier publishes change events for committed mutations. The feed is
// advisory: a failed publish is logged and dropped, never bubbled up to the
// user action that triggered it.
type Notifier interface {
	Notify(table, op, itemID string)
}

type kafkaNotifier struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewNotifier(producer sarama.SyncProducer, log *zap.Logger) Notifier {
	return &kafkaNotifier{
		producer: producer,
		cb:       circuit_breaker.NewCircuitBreaker(20, time.Second*10, 0.5, 3),
		log:      log.Named("notifier"),
	}
}

func (n *kafkaNotifier) Notify(table, op, itemID string) {
	data, err := json.Marshal(kafka.ChangeEvent{Table: table, Op: op, ItemID: itemID})
	if err != nil {
		n.log.Error("marshal change event", zap.Error(err))
		return
	}
	err = n.cb.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: kafka.ChangesTopic, Value: sarama.StringEncoder(data)}
		_, _, err := n.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		n.log.Warn("change event dropped",
			zap.String("table", table), zap.String("op", op), zap.Error(err))
	}
}

type nopNotifier struct{}

func NewNopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) Notify(string, string, string) {}
