// Package events publishes trade events to Kafka so downstream consumers
// (analytics, notifications) can follow the transaction log.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"trading-service/internal/entity"
)

type TradePublisher struct {
	writer *kafka.Writer
}

func NewTradePublisher(writer *kafka.Writer) *TradePublisher {
	return &TradePublisher{writer: writer}
}

// PublishTrade emits the accepted trade as a JSON message keyed
// trade-<type>-<reference>. A publisher constructed without a writer is a
// no-op, which keeps brokerless deployments working.
func (p *TradePublisher) PublishTrade(ctx context.Context, trade *entity.Transaction) error {
	if p.writer == nil {
		return nil
	}

	tradeJSON, err := json.Marshal(trade)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("trade-%s-%s", trade.Type, trade.Reference)),
		Value: tradeJSON,
	}

	return p.writer.WriteMessages(ctx, msg)
}
