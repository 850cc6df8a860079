package tsdb

import (
	"context"
	"fmt"
	"strconv"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"liyu1981.xyz/smartfloors-service/pkg/models"
)

const (
	MeasurementReadings = "floor_readings"
	MeasurementAlerts   = "floor_alerts"
)

type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

type pointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// InfluxSink mirrors readings and alerts into an InfluxDB v2 bucket with
// blocking writes, so failures surface to the caller.
type InfluxSink struct {
	client influxdb2.Client
	writer pointWriter
}

func NewInfluxSink(ctx context.Context, cfg InfluxConfig) (*InfluxSink, error) {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	if _, err := client.Health(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to InfluxDB: %w", err)
	}

	return &InfluxSink{
		client: client,
		writer: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
	}, nil
}

func floorTags(buildingID string, floor int) map[string]string {
	return map[string]string{
		"building": buildingID,
		"floor":    strconv.Itoa(floor),
	}
}

func ReadingPoint(reading *models.Reading) *write.Point {
	return write.NewPoint(
		MeasurementReadings,
		floorTags(reading.BuildingID, reading.Floor),
		map[string]any{
			"temp_c":      reading.Temperature,
			"humedad_pct": reading.Humidity,
			"energia_kw":  reading.Power,
		},
		reading.Timestamp,
	)
}

func AlertPoint(alert *models.Alert) *write.Point {
	tags := floorTags(alert.BuildingID, alert.Floor)
	tags["variable"] = string(alert.VariableKind)
	tags["severity"] = string(alert.Severity)

	return write.NewPoint(
		MeasurementAlerts,
		tags,
		map[string]any{
			"alert_id": int64(alert.ID),
			"message":  alert.Message,
		},
		alert.Timestamp,
	)
}

func (s *InfluxSink) Name() string {
	return "influx"
}

func (s *InfluxSink) WriteReading(ctx context.Context, reading *models.Reading) error {
	if err := s.writer.WritePoint(ctx, ReadingPoint(reading)); err != nil {
		return fmt.Errorf("influx write reading: %w", err)
	}
	return nil
}

func (s *InfluxSink) WriteAlert(ctx context.Context, alert *models.Alert) error {
	if err := s.writer.WritePoint(ctx, AlertPoint(alert)); err != nil {
		return fmt.Errorf("influx write alert: %w", err)
	}
	return nil
}

func (s *InfluxSink) Close() {
	if s.client != nil {
		s.client.Close()
	}
}
