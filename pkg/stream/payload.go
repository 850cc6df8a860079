// Package stream holds the message-broker ingestion consumers and the Kafka
// alert producer.
package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"liyu1981.xyz/smartfloors-service/pkg/models"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
)

var ErrInvalidPayload = errors.New("invalid payload")

// ReadingPayload is the JSON body carried by Kafka and MQTT messages. On MQTT
// the building and floor come from the topic instead.
type ReadingPayload struct {
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	BuildingID  string     `json:"building,omitempty"`
	Floor       int        `json:"floor,omitempty"`
	Temperature *float64   `json:"temp_c"`
	Humidity    *float64   `json:"humedad_pct"`
	Power       *float64   `json:"energia_kw"`
}

func (p ReadingPayload) toReading() (*models.Reading, error) {
	if p.Temperature == nil || p.Humidity == nil || p.Power == nil {
		return nil, fmt.Errorf("%w: temp_c, humedad_pct and energia_kw are required", ErrInvalidPayload)
	}

	reading := &models.Reading{
		BuildingID:  p.BuildingID,
		Floor:       p.Floor,
		Temperature: *p.Temperature,
		Humidity:    *p.Humidity,
		Power:       *p.Power,
	}
	if p.Timestamp != nil {
		reading.Timestamp = *p.Timestamp
	}

	if err := monitor.ValidateReading(reading); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return reading, nil
}

func decodePayload(data []byte) (ReadingPayload, error) {
	var payload ReadingPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return payload, nil
}

// DecodeReading parses and validates a self-describing reading message.
func DecodeReading(data []byte) (*models.Reading, error) {
	payload, err := decodePayload(data)
	if err != nil {
		return nil, err
	}
	return payload.toReading()
}
