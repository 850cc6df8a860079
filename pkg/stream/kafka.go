package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
)

type KafkaConfig struct {
	Brokers       []string
	GroupID       string
	ReadingsTopic string
	AlertsTopic   string
}

type messageFetcher interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConsumer stores readings published on the readings topic.
type KafkaConsumer struct {
	topic    string
	reader   messageFetcher
	readings monitor.IReading
	backoff  time.Duration
}

func NewKafkaConsumer(cfg KafkaConfig, readings monitor.IReading) (*KafkaConsumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	if cfg.ReadingsTopic == "" {
		return nil, fmt.Errorf("readings topic must not be empty")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: []string{cfg.ReadingsTopic},
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
	return newKafkaConsumer(cfg.ReadingsTopic, reader, readings), nil
}

func newKafkaConsumer(topic string, reader messageFetcher, readings monitor.IReading) *KafkaConsumer {
	return &KafkaConsumer{
		topic:    topic,
		reader:   reader,
		readings: readings,
		backoff:  time.Second,
	}
}

// Run fetches until ctx is cancelled. Fetch errors back off up to 10s.
func (c *KafkaConsumer) Run(ctx context.Context) {
	logger := common.GetCategoryLogger(common.LoggerNameStream, common.LoggerCategoryKafka)

	defer func() {
		if err := c.reader.Close(); err != nil {
			logger.Error("Failed to close reader", zap.Error(err))
		}
	}()
	logger.Info("Consumer started", zap.String("topic", c.topic))

	backoff := c.backoff
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				logger.Info("Consumer stopped", zap.String("topic", c.topic))
				return
			}
			logger.Error("Failed to fetch message", zap.Error(err))
			select {
			case <-time.After(backoff):
				if backoff < 10*time.Second {
					backoff *= 2
				}
				continue
			case <-ctx.Done():
				logger.Info("Consumer stopped", zap.String("topic", c.topic))
				return
			}
		}
		backoff = c.backoff

		if !c.handleWithRetry(ctx, msg) {
			logger.Info("Consumer stopped", zap.String("topic", c.topic))
			return
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("Failed to commit message", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
	}
}

// handleWithRetry keeps handing msg to the store until it succeeds, backing
// off up to 10s. Committing a later offset would commit this one too, so the
// consumer never moves past a failed message. Returns false once ctx is done.
func (c *KafkaConsumer) handleWithRetry(ctx context.Context, msg kafka.Message) bool {
	logger := common.GetCategoryLogger(common.LoggerNameStream, common.LoggerCategoryKafka)

	backoff := c.backoff
	for {
		err := c.handleMessage(ctx, msg)
		if err == nil {
			return true
		}
		logger.Error("Failed to handle message, retrying",
			zap.Error(err), zap.Int64("offset", msg.Offset), zap.Int("partition", msg.Partition),
			zap.Duration("backoff", backoff))
		select {
		case <-time.After(backoff):
			if backoff < 10*time.Second {
				backoff *= 2
			}
		case <-ctx.Done():
			return false
		}
	}
}

// handleMessage returns an error only when the message should be retried.
// Undecodable or invalid readings are logged and committed.
func (c *KafkaConsumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	logger := common.GetCategoryLogger(common.LoggerNameStream, common.LoggerCategoryKafka)

	reading, err := DecodeReading(msg.Value)
	if err != nil {
		logger.Warn("Skipping undecodable message",
			zap.Error(err), zap.Int64("offset", msg.Offset), zap.ByteString("key", msg.Key))
		return nil
	}

	if _, err := c.readings.CreateReading(ctx, "kafka", reading); err != nil {
		if errors.Is(err, monitor.ErrInvalidReading) {
			logger.Warn("Skipping invalid reading", zap.Error(err), zap.Int64("offset", msg.Offset))
			return nil
		}
		return err
	}
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AlertProducer publishes created alerts keyed by building and floor.
type AlertProducer struct {
	writer messageWriter
}

func NewAlertProducer(cfg KafkaConfig) (*AlertProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	if cfg.AlertsTopic == "" {
		return nil, fmt.Errorf("alerts topic must not be empty")
	}

	return &AlertProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.AlertsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}, nil
}

func (p *AlertProducer) Name() string {
	return "kafka"
}

func (p *AlertProducer) WriteReading(ctx context.Context, reading *models.Reading) error {
	return nil
}

func (p *AlertProducer) WriteAlert(ctx context.Context, alert *models.Alert) error {
	value, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(common.FloorKey(alert.BuildingID, alert.Floor)),
		Value: value,
		Time:  alert.Timestamp,
	})
}

func (p *AlertProducer) Close() error {
	return p.writer.Close()
}
