package kafka

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	// ChangesTopic carries one message per committed table mutation.
	ChangesTopic = "arkv.changes"

	ChangesConsumerGroup = "arkv-changes"
)

// ChangeEvent describes a committed mutation of one row. Subscribers re-fetch
// the whole table on every event; ItemID is carried so they can switch to
// incremental application later.
type ChangeEvent struct {
	Table  string `json:"table"`
	Op     string `json:"op"`
	ItemID string `json:"itemId"`
}

const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
)

// Resource tables exposed on the change feed.
const (
	TableBooks         = "books"
	TableLibraryTables = "library_tables"
	TableReservations  = "reservations"
)

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetNewest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is cancelled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := consumer.Consume(ctx, topics, handler); err != nil {
			log.Error("kafka consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
