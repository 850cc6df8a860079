package monitor

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

func (m *Monitor) fanOutReading(ctx context.Context, reading *models.Reading) {
	if len(m.Sinks) == 0 {
		return
	}

	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryReading)
	for _, s := range m.Sinks {
		if err := s.WriteReading(ctx, reading); err != nil {
			logger.Warn("Sink failed to write reading",
				zap.String("sink", s.Name()), zap.Uint("reading_id", reading.ID), zap.Error(err))
			m.Metrics.SinkFailures.WithLabelValues(s.Name()).Inc()
		}
	}
}

func (m *Monitor) fanOutAlert(ctx context.Context, alert *models.Alert) {
	if len(m.Sinks) == 0 {
		return
	}

	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryAlert)
	for _, s := range m.Sinks {
		if err := s.WriteAlert(ctx, alert); err != nil {
			logger.Warn("Sink failed to write alert",
				zap.String("sink", s.Name()), zap.Uint("alert_id", alert.ID), zap.Error(err))
			m.Metrics.SinkFailures.WithLabelValues(s.Name()).Inc()
		}
	}
}
