package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

var readingSchema = z.Struct(z.Shape{
	"BuildingID":  z.String().Min(1).Required(),
	"Floor":       z.Int().GTE(common.MinFloor).LTE(common.MaxFloor).Required(),
	"Temperature": z.Float64(),
	"Humidity":    z.Float64().GTE(0).LTE(100),
	"Power":       z.Float64().GTE(0),
})

// ValidateReading checks the physical ranges every ingestion path must honor.
func ValidateReading(reading *models.Reading) error {
	if issues := readingSchema.Validate(reading); issues != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReading, issues)
	}
	return nil
}

func (m *Monitor) createReading(ctx context.Context, source string, input *models.Reading) (*models.Reading, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryReading)

	reading := models.Reading{
		Timestamp:   input.Timestamp.UTC(),
		BuildingID:  strings.TrimSpace(input.BuildingID),
		Floor:       input.Floor,
		Temperature: input.Temperature,
		Humidity:    input.Humidity,
		Power:       input.Power,
	}
	if input.Timestamp.IsZero() {
		reading.Timestamp = m.now()
	}

	if err := ValidateReading(&reading); err != nil {
		logger.Warn("Rejected reading", zap.String("source", source), zap.Error(err))
		return nil, err
	}

	logger.Debug("Received reading", zap.String("source", source), zap.Reflect("reading", reading))

	if err := m.Db.Conn.WithContext(ctx).Create(&reading).Error; err != nil {
		return nil, fmt.Errorf("store reading: %w", err)
	}

	logger.Info("Stored reading", zap.String("source", source), zap.Reflect("reading", reading))
	m.Metrics.ReadingsIngested.WithLabelValues(source).Inc()

	m.fanOutReading(ctx, &reading)
	return &reading, nil
}

func (m *Monitor) getReadings(ctx context.Context, query models.ReadingQuery) ([]models.Reading, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultReadingsLimit
	}

	tx := m.Db.Conn.WithContext(ctx).Where("building_id = ?", query.BuildingID)
	if query.Floor != nil {
		tx = tx.Where("floor = ?", *query.Floor)
	}

	readings := []models.Reading{}
	err := tx.Order("timestamp desc").Order("id desc").Limit(limit).Find(&readings).Error
	return readings, err
}

func (m *Monitor) getRecentReadings(ctx context.Context, buildingID string, floor int, lookback time.Duration) ([]models.Reading, error) {
	cutoff := m.now().Add(-lookback)

	readings := []models.Reading{}
	err := m.Db.Conn.WithContext(ctx).
		Where("building_id = ? AND floor = ? AND timestamp >= ?", buildingID, floor, cutoff).
		Order("timestamp asc").
		Order("id asc").
		Find(&readings).Error
	return readings, err
}

type IReadingImpl struct {
	monitor *Monitor
}

func (ir *IReadingImpl) CreateReading(ctx context.Context, source string, input *models.Reading) (*models.Reading, error) {
	return ir.monitor.createReading(ctx, source, input)
}

func (ir *IReadingImpl) GetReadings(ctx context.Context, query models.ReadingQuery) ([]models.Reading, error) {
	return ir.monitor.getReadings(ctx, query)
}

func (ir *IReadingImpl) GetRecentReadings(ctx context.Context, buildingID string, floor int, lookback time.Duration) ([]models.Reading, error) {
	return ir.monitor.getRecentReadings(ctx, buildingID, floor, lookback)
}

func (m *Monitor) GetIReading() IReading {
	return &IReadingImpl{monitor: m}
}
