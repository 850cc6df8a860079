package monitor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

func (m *Monitor) createAlert(ctx context.Context, input *models.Alert) (*models.Alert, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryAlert)

	alert := models.Alert{
		Timestamp:      m.now(),
		BuildingID:     strings.TrimSpace(input.BuildingID),
		Floor:          input.Floor,
		VariableKind:   input.VariableKind,
		Severity:       input.Severity,
		Message:        input.Message,
		Recommendation: input.Recommendation,
		Resolved:       false,
	}

	switch {
	case alert.BuildingID == "":
		return nil, fmt.Errorf("%w: building is required", ErrInvalidAlert)
	case alert.Floor < common.MinFloor || alert.Floor > common.MaxFloor:
		return nil, fmt.Errorf("%w: floor %d out of range", ErrInvalidAlert, alert.Floor)
	case !alert.VariableKind.Valid():
		return nil, fmt.Errorf("%w: unsupported variable %q", ErrInvalidAlert, alert.VariableKind)
	case !alert.Severity.Valid():
		return nil, fmt.Errorf("%w: unsupported severity %q", ErrInvalidAlert, alert.Severity)
	case strings.TrimSpace(alert.Message) == "":
		return nil, fmt.Errorf("%w: message is required", ErrInvalidAlert)
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	if err := m.Db.Conn.WithContext(ctx).Create(&alert).Error; err != nil {
		return nil, fmt.Errorf("store alert: %w", err)
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	m.Metrics.AlertsCreated.WithLabelValues(string(alert.VariableKind), string(alert.Severity)).Inc()

	m.fanOutAlert(ctx, &alert)
	return &alert, nil
}

func (m *Monitor) getAlerts(ctx context.Context, query models.AlertQuery) ([]models.Alert, error) {
	tx := m.Db.Conn.WithContext(ctx).Where("building_id = ?", query.BuildingID)
	if query.Floor != nil {
		tx = tx.Where("floor = ?", *query.Floor)
	}

	if query.ActiveOnly {
		tx = tx.Where("resolved = ?", false)
		if query.Limit > 0 {
			tx = tx.Limit(query.Limit)
		}
	} else {
		limit := query.Limit
		if limit <= 0 {
			limit = DefaultAlertsLimit
		}
		tx = tx.Limit(limit)
	}

	alerts := []models.Alert{}
	err := tx.Order("timestamp desc").Order("id desc").Find(&alerts).Error
	return alerts, err
}

// resolveAlert flips resolved once; resolving an already resolved alert
// returns it unchanged.
func (m *Monitor) resolveAlert(ctx context.Context, id uint) (*models.Alert, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryAlert)

	var alert models.Alert
	if err := m.Db.Conn.WithContext(ctx).First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAlertNotFound, id)
		}
		return nil, err
	}

	if alert.Resolved {
		return &alert, nil
	}

	if err := m.Db.Conn.WithContext(ctx).Model(&alert).Update("resolved", true).Error; err != nil {
		return nil, fmt.Errorf("resolve alert %d: %w", id, err)
	}
	alert.Resolved = true

	logger.Info("Alert resolved", zap.Uint("alert_id", alert.ID))
	return &alert, nil
}

type IAlertImpl struct {
	monitor *Monitor
}

func (ia *IAlertImpl) CreateAlert(ctx context.Context, input *models.Alert) (*models.Alert, error) {
	return ia.monitor.createAlert(ctx, input)
}

func (ia *IAlertImpl) GetAlerts(ctx context.Context, query models.AlertQuery) ([]models.Alert, error) {
	return ia.monitor.getAlerts(ctx, query)
}

func (ia *IAlertImpl) ResolveAlert(ctx context.Context, id uint) (*models.Alert, error) {
	return ia.monitor.resolveAlert(ctx, id)
}

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{monitor: m}
}
