package forecast

import (
	"fmt"
	"math"
)

type Thresholds struct {
	TemperatureMin float64
	TemperatureMax float64
	// AbruptChange is the largest |prediction - recent average| in °C still
	// considered steady inside the comfortable band.
	AbruptChange float64
	HumidityMin  float64
	HumidityMax  float64
	PowerMax     float64
	// PowerWarnRatio scales PowerMax into the medium-risk bound.
	PowerWarnRatio float64
}

var DefaultThresholds = Thresholds{
	TemperatureMin: 18,
	TemperatureMax: 26,
	AbruptChange:   3,
	HumidityMin:    30,
	HumidityMax:    60,
	PowerMax:       10.0,
	PowerWarnRatio: 0.8,
}

// Evaluate classifies an unrounded prediction. Bounds are inclusive on the
// comfortable side: every condition below is a strict comparison.
func (t Thresholds) Evaluate(variable Variable, prediction float64, recentAvg float64) (Risk, []string) {
	switch variable {
	case Temperature:
		return t.evaluateTemperature(prediction, recentAvg)
	case Humidity:
		return t.evaluateHumidity(prediction)
	case Power:
		return t.evaluatePower(prediction)
	}
	return RiskNoData, []string{NoDataAdvisory}
}

func (t Thresholds) evaluateTemperature(prediction float64, recentAvg float64) (Risk, []string) {
	switch {
	case prediction < t.TemperatureMin:
		return RiskHigh, []string{
			fmt.Sprintf("Temperature will drop to %.1f°C", prediction),
			"Reduce ventilation or increase heating",
		}
	case prediction > t.TemperatureMax:
		return RiskHigh, []string{
			fmt.Sprintf("Temperature will rise to %.1f°C", prediction),
			"Increase ventilation or air conditioning",
		}
	case math.Abs(prediction-recentAvg) > t.AbruptChange:
		return RiskMedium, []string{
			fmt.Sprintf("Abrupt temperature change detected, projected %.1f°C", prediction),
		}
	}
	return RiskLow, []string{"Temperature within comfortable range"}
}

func (t Thresholds) evaluateHumidity(prediction float64) (Risk, []string) {
	switch {
	case prediction < t.HumidityMin:
		return RiskMedium, []string{
			fmt.Sprintf("Humidity will drop to %.1f%%", prediction),
			"Consider humidifiers",
		}
	case prediction > t.HumidityMax:
		return RiskMedium, []string{
			fmt.Sprintf("Humidity will rise to %.1f%%", prediction),
			"Increase ventilation or dehumidification",
		}
	}
	return RiskLow, []string{"Humidity within comfortable range"}
}

func (t Thresholds) evaluatePower(prediction float64) (Risk, []string) {
	switch {
	case prediction > t.PowerMax:
		return RiskHigh, []string{
			fmt.Sprintf("Power consumption will reach %.1f kW", prediction),
			"Review active equipment and redistribute load",
		}
	case prediction > t.PowerMax*t.PowerWarnRatio:
		return RiskMedium, []string{
			fmt.Sprintf("Power consumption rising to %.1f kW", prediction),
			"Monitor HVAC equipment",
		}
	}
	return RiskLow, []string{"Normal power consumption"}
}
