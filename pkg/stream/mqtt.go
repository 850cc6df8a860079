package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
)

// ReadingsTopicFilter matches smartfloors/<building>/<floor>/readings.
const ReadingsTopicFilter = "smartfloors/+/+/readings"

type MqttConfig struct {
	Broker   string
	ClientID string
}

type MqttSubscriber struct {
	client   mqtt.Client
	readings monitor.IReading
	timeout  time.Duration
}

func NewMqttSubscriber(cfg MqttConfig, readings monitor.IReading) (*MqttSubscriber, error) {
	if strings.TrimSpace(cfg.Broker) == "" {
		return nil, fmt.Errorf("mqtt broker must not be empty")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetCleanSession(false)

	return newMqttSubscriber(mqtt.NewClient(opts), readings), nil
}

func newMqttSubscriber(client mqtt.Client, readings monitor.IReading) *MqttSubscriber {
	return &MqttSubscriber{client: client, readings: readings, timeout: 10 * time.Second}
}

// ReadingsTopic is the topic a floor publishes its readings on.
func ReadingsTopic(buildingID string, floor int) string {
	return "smartfloors/" + buildingID + "/" + strconv.Itoa(floor) + "/readings"
}

// ParseReadingsTopic extracts building and floor from a readings topic.
func ParseReadingsTopic(topic string) (string, int, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != "smartfloors" || parts[3] != "readings" || parts[1] == "" {
		return "", 0, fmt.Errorf("%w: unexpected topic %q", ErrInvalidPayload, topic)
	}
	floor, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, fmt.Errorf("%w: floor in topic %q", ErrInvalidPayload, topic)
	}
	return parts[1], floor, nil
}

func (s *MqttSubscriber) handlePayload(ctx context.Context, topic string, data []byte) error {
	buildingID, floor, err := ParseReadingsTopic(topic)
	if err != nil {
		return err
	}

	payload, err := decodePayload(data)
	if err != nil {
		return err
	}
	payload.BuildingID = buildingID
	payload.Floor = floor

	reading, err := payload.toReading()
	if err != nil {
		return err
	}

	_, err = s.readings.CreateReading(ctx, "mqtt", reading)
	return err
}

func (s *MqttSubscriber) onMessage(ctx context.Context) mqtt.MessageHandler {
	logger := common.GetCategoryLogger(common.LoggerNameStream, common.LoggerCategoryMqtt)

	return func(_ mqtt.Client, msg mqtt.Message) {
		if err := s.handlePayload(ctx, msg.Topic(), msg.Payload()); err != nil {
			if errors.Is(err, ErrInvalidPayload) || errors.Is(err, monitor.ErrInvalidReading) {
				logger.Warn("Skipping invalid message", zap.String("topic", msg.Topic()), zap.Error(err))
				return
			}
			logger.Error("Failed to store reading", zap.String("topic", msg.Topic()), zap.Error(err))
		}
	}
}

// Start connects and subscribes; messages are handled until ctx is done.
func (s *MqttSubscriber) Start(ctx context.Context) error {
	logger := common.GetCategoryLogger(common.LoggerNameStream, common.LoggerCategoryMqtt)

	if token := s.client.Connect(); !token.WaitTimeout(s.timeout) || token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", tokenError(token))
	}

	token := s.client.Subscribe(ReadingsTopicFilter, 1, s.onMessage(ctx))
	if !token.WaitTimeout(s.timeout) || token.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", ReadingsTopicFilter, tokenError(token))
	}
	logger.Info("Subscribed", zap.String("topic", ReadingsTopicFilter))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

func (s *MqttSubscriber) Stop() {
	if s.client.IsConnected() {
		s.client.Unsubscribe(ReadingsTopicFilter).WaitTimeout(s.timeout)
		s.client.Disconnect(250)
	}
}

func tokenError(token mqtt.Token) error {
	if err := token.Error(); err != nil {
		return err
	}
	return errors.New("timed out")
}

// PublishReading sends one reading on its floor topic.
func PublishReading(client mqtt.Client, buildingID string, floor int, payload ReadingPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode reading: %w", err)
	}

	token := client.Publish(ReadingsTopic(buildingID, floor), 1, false, data)
	token.Wait()
	return token.Error()
}
