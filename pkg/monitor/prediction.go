package monitor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/forecast"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

func (m *Monitor) forecastFor(buildingID string, floor int, readings []models.Reading, variable forecast.Variable) models.Prediction {
	result := m.Predictor.Forecast(readings, variable)
	m.Metrics.Predictions.WithLabelValues(variable.String(), string(result.Risk)).Inc()

	return models.Prediction{
		BuildingID:      buildingID,
		Floor:           floor,
		Variable:        variable.Kind(),
		Prediction60Min: result.Prediction60Min,
		Risk:            string(result.Risk),
		Recommendations: result.Recommendations,
	}
}

func (m *Monitor) predict(ctx context.Context, buildingID string, floor int, variable forecast.Variable) (*models.Prediction, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryPrediction)

	readings, err := m.Reading.GetRecentReadings(ctx, buildingID, floor, m.Lookback)
	if err != nil {
		return nil, fmt.Errorf("fetch recent readings: %w", err)
	}
	if len(readings) == 0 {
		return nil, fmt.Errorf("%w: building %s floor %d", ErrNoReadings, buildingID, floor)
	}

	prediction := m.forecastFor(buildingID, floor, readings, variable)

	logger.Info("Forecast computed",
		zap.String("building", buildingID),
		zap.Int("floor", floor),
		zap.String("variable", variable.String()),
		zap.Int("readings", len(readings)),
		zap.Float64("prediction_60min", prediction.Prediction60Min),
		zap.String("risk", prediction.Risk),
	)

	if prediction.Risk == string(forecast.RiskHigh) {
		m.recordHighRisk(ctx, &prediction)
	}

	return &prediction, nil
}

// recordHighRisk makes a single attempt to persist the alert. A failure is
// reported but the prediction is still served.
func (m *Monitor) recordHighRisk(ctx context.Context, prediction *models.Prediction) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryPrediction)

	recommendation := strings.Join(prediction.Recommendations, "; ")
	alert := &models.Alert{
		BuildingID:     prediction.BuildingID,
		Floor:          prediction.Floor,
		VariableKind:   prediction.Variable,
		Severity:       models.SeverityHigh,
		Message:        HighRiskMessage(prediction),
		Recommendation: &recommendation,
	}

	if _, err := m.Alert.CreateAlert(ctx, alert); err != nil {
		m.Metrics.AlertWriteFailures.Inc()
		logger.Error("Failed to store high risk alert",
			zap.String("building", prediction.BuildingID),
			zap.Int("floor", prediction.Floor),
			zap.String("variable", string(prediction.Variable)),
			zap.Error(err),
		)
	}
}

func HighRiskMessage(prediction *models.Prediction) string {
	return fmt.Sprintf("High risk forecast for %s on floor %d: %.2f in 60 minutes",
		prediction.Variable, prediction.Floor, prediction.Prediction60Min)
}

func (m *Monitor) dashboard(ctx context.Context, buildingID string, floor int) (*models.Dashboard, error) {
	dashboard := models.Dashboard{
		BuildingID:  buildingID,
		Floor:       floor,
		Predictions: map[models.VariableKind]models.Prediction{},
	}

	current, err := m.currentReading(ctx, buildingID, floor)
	if err != nil {
		return nil, err
	}
	dashboard.Current = current

	alerts, err := m.Alert.GetAlerts(ctx, models.AlertQuery{BuildingID: buildingID, Floor: &floor, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("fetch active alerts: %w", err)
	}
	dashboard.ActiveAlerts = alerts

	readings, err := m.Reading.GetRecentReadings(ctx, buildingID, floor, m.Lookback)
	if err != nil {
		return nil, fmt.Errorf("fetch recent readings: %w", err)
	}
	if len(readings) > 0 {
		for _, variable := range []forecast.Variable{forecast.Temperature, forecast.Humidity, forecast.Power} {
			dashboard.Predictions[variable.Kind()] = m.forecastFor(buildingID, floor, readings, variable)
		}
	}

	return &dashboard, nil
}

func (m *Monitor) currentReading(ctx context.Context, buildingID string, floor int) (*models.Reading, error) {
	if m.FloorState != nil {
		state, err := m.FloorState.GetFloorState(ctx, buildingID, floor)
		if err == nil && state != nil {
			return state, nil
		}
		if err != nil {
			logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryPrediction)
			logger.Warn("Floor state unavailable, reading from store",
				zap.String("floor_key", common.FloorKey(buildingID, floor)), zap.Error(err))
		}
	}

	latest, err := m.Reading.GetReadings(ctx, models.ReadingQuery{BuildingID: buildingID, Floor: &floor, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("fetch latest reading: %w", err)
	}
	if len(latest) == 0 {
		return nil, nil
	}
	return &latest[0], nil
}

type IPredictionImpl struct {
	monitor *Monitor
}

func (ip *IPredictionImpl) Predict(ctx context.Context, buildingID string, floor int, variable forecast.Variable) (*models.Prediction, error) {
	return ip.monitor.predict(ctx, buildingID, floor, variable)
}

func (ip *IPredictionImpl) Dashboard(ctx context.Context, buildingID string, floor int) (*models.Dashboard, error) {
	return ip.monitor.dashboard(ctx, buildingID, floor)
}

func (m *Monitor) GetIPrediction() IPrediction {
	return &IPredictionImpl{monitor: m}
}
