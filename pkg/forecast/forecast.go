// Package forecast projects a floor's recent readings 60 steps ahead and
// classifies the projected value against fixed comfort and safety ranges.
//
// The trend is the average change per reading over the last five readings, and
// the projection multiplies it by 60. That equals 60 minutes only when readings
// arrive once per minute.
package forecast

import (
	"math"
	"sort"

	"liyu1981.xyz/smartfloors-service/pkg/models"
)

type Risk string

const (
	RiskNoData Risk = "no_data"
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

const (
	MinReadings    = 3
	AverageWindow  = 10
	TrendWindow    = 5
	HorizonSteps   = 60
	NoDataAdvisory = "insufficient historical data"
)

type Result struct {
	Prediction60Min float64
	Risk            Risk
	Recommendations []string
}

// Predictor holds only immutable thresholds and is safe for concurrent use.
type Predictor struct {
	Thresholds Thresholds
}

func NewPredictor() Predictor {
	return Predictor{Thresholds: DefaultThresholds}
}

// Forecast runs the default predictor.
func Forecast(readings []models.Reading, variable Variable) Result {
	return NewPredictor().Forecast(readings, variable)
}

func (p Predictor) Forecast(readings []models.Reading, variable Variable) Result {
	if len(readings) < MinReadings {
		return Result{
			Prediction60Min: 0,
			Risk:            RiskNoData,
			Recommendations: []string{NoDataAdvisory},
		}
	}

	series := make([]models.Reading, len(readings))
	copy(series, readings)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})

	recentAvg := mean(tail(series, AverageWindow), variable)

	trend := 0.0
	if len(series) >= TrendWindow {
		window := tail(series, TrendWindow)
		first := variable.valueOf(window[0])
		last := variable.valueOf(window[len(window)-1])
		trend = (last - first) / TrendWindow
	}

	prediction := recentAvg + trend*HorizonSteps
	risk, recommendations := p.Thresholds.Evaluate(variable, prediction, recentAvg)

	return Result{
		Prediction60Min: round2(prediction),
		Risk:            risk,
		Recommendations: recommendations,
	}
}

func tail(series []models.Reading, n int) []models.Reading {
	if len(series) <= n {
		return series
	}
	return series[len(series)-n:]
}

func mean(series []models.Reading, variable Variable) float64 {
	sum := 0.0
	for _, r := range series {
		sum += variable.valueOf(r)
	}
	return sum / float64(len(series))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
