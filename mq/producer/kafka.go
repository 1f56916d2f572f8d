package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/tnote-app/tnote_service/config"
	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/kafkaevents"
)

// KafkaProducer 负责把话题/回帖的变更事件下发给下游（搜索索引同步等）。
// 下发在写路径之外异步执行，失败不回滚业务写入。
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建 Kafka 生产者实例。
func NewKafkaProducer(cfg config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// sendEvent 序列化事件并写入指定主题。
func (p *KafkaProducer) sendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Kafka 消息已发送", zap.String("topic", topic))
	return nil
}

// SendTopicChangedEvent 下发话题变更事件。
func (p *KafkaProducer) SendTopicChangedEvent(ctx context.Context, changeType string, data kafkaevents.TopicData) error {
	event := kafkaevents.TopicChangedEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now(),
		ChangeType: changeType,
		Topic:      data,
	}
	return p.sendEvent(ctx, p.topics.TopicChanged, event)
}

// SendPostChangedEvent 下发回帖变更事件。
func (p *KafkaProducer) SendPostChangedEvent(ctx context.Context, changeType string, data kafkaevents.PostData) error {
	event := kafkaevents.PostChangedEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now(),
		ChangeType: changeType,
		Post:       data,
	}
	return p.sendEvent(ctx, p.topics.PostChanged, event)
}

// Close 关闭底层 writer，优雅关停时调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
