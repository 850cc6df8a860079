package forecast

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/smartfloors-service/pkg/models"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// series builds one reading per minute, setting only the field for variable.
func series(variable Variable, values ...float64) []models.Reading {
	readings := make([]models.Reading, len(values))
	for i, v := range values {
		r := models.Reading{
			Timestamp:   baseTime.Add(time.Duration(i) * time.Minute),
			BuildingID:  "A",
			Floor:       3,
			Temperature: 22,
			Humidity:    45,
			Power:       5,
		}
		switch variable {
		case Temperature:
			r.Temperature = v
		case Humidity:
			r.Humidity = v
		case Power:
			r.Power = v
		}
		readings[i] = r
	}
	return readings
}

func repeat(v float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}
	return values
}

func TestForecast_InsufficientData(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		for _, variable := range []Variable{Temperature, Humidity, Power} {
			result := Forecast(series(variable, repeat(40, n)...), variable)

			assert.Equal(t, RiskNoData, result.Risk, "n=%d variable=%s", n, variable)
			assert.Equal(t, 0.0, result.Prediction60Min)
			assert.Equal(t, []string{NoDataAdvisory}, result.Recommendations)
		}
	}

	result := Forecast(nil, Temperature)
	assert.Equal(t, RiskNoData, result.Risk)
}

func TestForecast_NoTrendBelowFiveReadings(t *testing.T) {
	// 4 readings: trend is 0, prediction equals the plain average
	result := Forecast(series(Temperature, 20, 21, 22, 23), Temperature)

	assert.Equal(t, 21.5, result.Prediction60Min)
	assert.Equal(t, RiskLow, result.Risk)
}

func TestForecast_RisingTemperatureScenario(t *testing.T) {
	values := []float64{24.0, 24.5, 25.0, 25.5, 26.0, 26.5, 27.0, 27.5, 28.0, 28.5}
	readings := series(Temperature, values...)

	result := Forecast(readings, Temperature)

	recentAvg := 26.25
	trend := (28.5 - 26.5) / 5
	assert.InDelta(t, 0.4, trend, 1e-9)
	assert.InDelta(t, recentAvg+24.0, result.Prediction60Min, 0.005)
	assert.Equal(t, RiskHigh, result.Risk)
	require.Len(t, result.Recommendations, 2)
	assert.Contains(t, result.Recommendations[0], "Temperature will rise to")
}

func TestForecast_StrictlyIncreasingProjectsAboveAverage(t *testing.T) {
	values := []float64{19.0, 19.2, 19.4, 19.6, 19.8, 20.0}
	result := Forecast(series(Temperature, values...), Temperature)

	avg := (19.0 + 19.2 + 19.4 + 19.6 + 19.8 + 20.0) / 6
	assert.Greater(t, result.Prediction60Min, avg)
}

func TestForecast_UsesOnlyLastTenForAverage(t *testing.T) {
	// first five readings are far away; only the last ten (all 22) count,
	// and the last five are flat so the trend is zero
	values := append(repeat(100, 5), repeat(22, 10)...)
	result := Forecast(series(Temperature, values...), Temperature)

	assert.Equal(t, 22.0, result.Prediction60Min)
	assert.Equal(t, RiskLow, result.Risk)
}

func TestForecast_DeterministicRegardlessOfOrder(t *testing.T) {
	values := []float64{21.0, 21.3, 20.8, 22.1, 22.9, 23.4, 23.0, 24.2}
	sorted := series(Temperature, values...)
	expected := Forecast(sorted, Temperature)

	rnd := rand.New(rand.NewSource(7))
	for n := 0; n < 20; n++ {
		shuffled := make([]models.Reading, len(sorted))
		copy(shuffled, sorted)
		rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		assert.Equal(t, expected, Forecast(shuffled, Temperature))
	}

	assert.Equal(t, expected, Forecast(sorted, Temperature))
}

func TestForecast_DoesNotReorderInput(t *testing.T) {
	readings := series(Power, 1, 2, 3, 4, 5)
	readings[0], readings[4] = readings[4], readings[0]
	firstBefore := readings[0]

	_ = Forecast(readings, Power)

	assert.Equal(t, firstBefore, readings[0])
}

func TestForecast_RoundsToTwoDecimals(t *testing.T) {
	result := Forecast(series(Humidity, 40.123, 40.456, 40.789), Humidity)
	assert.Equal(t, 40.46, result.Prediction60Min)
}

func TestForecast_TemperatureBounds(t *testing.T) {
	cases := []struct {
		value float64
		risk  Risk
	}{
		{26.0, RiskLow},
		{26.01, RiskHigh},
		{18.0, RiskLow},
		{17.99, RiskHigh},
		{22.0, RiskLow},
	}

	for _, c := range cases {
		result := Forecast(series(Temperature, repeat(c.value, 3)...), Temperature)
		assert.Equal(t, c.risk, result.Risk, "temperature %v", c.value)
		assert.NotEmpty(t, result.Recommendations)
	}

	low := Forecast(series(Temperature, repeat(15, 3)...), Temperature)
	assert.Equal(t, "Temperature will drop to 15.0°C", low.Recommendations[0])
	assert.Equal(t, "Reduce ventilation or increase heating", low.Recommendations[1])
}

// Risk is judged before rounding: 26.004 reports 26 but is still above the
// comfortable range.
func TestForecast_RiskUsesUnroundedPrediction(t *testing.T) {
	result := Forecast(series(Temperature, repeat(26.004, 3)...), Temperature)

	assert.Equal(t, 26.0, result.Prediction60Min)
	assert.Equal(t, RiskHigh, result.Risk)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "Temperature will rise to 26.0°C", result.Recommendations[0])

	exact := Forecast(series(Temperature, repeat(26.0, 3)...), Temperature)
	assert.Equal(t, 26.0, exact.Prediction60Min)
	assert.Equal(t, RiskLow, exact.Risk)
}

func TestForecast_TemperatureAbruptChange(t *testing.T) {
	// last five: 20 -> 20.3, trend 0.06, projection +3.6 over the average
	values := []float64{20.0, 20.0, 20.0, 20.0, 20.0, 20.0, 20.1, 20.1, 20.2, 20.3}
	result := Forecast(series(Temperature, values...), Temperature)

	assert.Equal(t, RiskMedium, result.Risk)
	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "Abrupt temperature change detected")
	assert.Contains(t, result.Recommendations[0], "°C")
}

func TestForecast_HumidityBounds(t *testing.T) {
	cases := []struct {
		value float64
		risk  Risk
	}{
		{30.0, RiskLow},
		{60.0, RiskLow},
		{29.99, RiskMedium},
		{60.01, RiskMedium},
	}

	for _, c := range cases {
		result := Forecast(series(Humidity, repeat(c.value, 3)...), Humidity)
		assert.Equal(t, c.risk, result.Risk, "humidity %v", c.value)
	}

	dry := Forecast(series(Humidity, repeat(20, 3)...), Humidity)
	assert.Equal(t, []string{"Humidity will drop to 20.0%", "Consider humidifiers"}, dry.Recommendations)

	wet := Forecast(series(Humidity, repeat(75, 3)...), Humidity)
	assert.Equal(t, []string{"Humidity will rise to 75.0%", "Increase ventilation or dehumidification"}, wet.Recommendations)
}

func TestForecast_PowerBounds(t *testing.T) {
	cases := []struct {
		value float64
		risk  Risk
	}{
		{8.0, RiskLow},
		{8.01, RiskMedium},
		{10.0, RiskMedium},
		{10.01, RiskHigh},
		{2.5, RiskLow},
	}

	for _, c := range cases {
		result := Forecast(series(Power, repeat(c.value, 3)...), Power)
		assert.Equal(t, c.risk, result.Risk, "power %v", c.value)
	}

	high := Forecast(series(Power, repeat(12, 3)...), Power)
	assert.Equal(t, "Power consumption will reach 12.0 kW", high.Recommendations[0])

	normal := Forecast(series(Power, repeat(3, 3)...), Power)
	assert.Equal(t, []string{"Normal power consumption"}, normal.Recommendations)
}

func TestForecast_StableSortOnEqualTimestamps(t *testing.T) {
	readings := series(Power, 1, 2, 3, 4, 5)
	for i := range readings {
		readings[i].Timestamp = baseTime
	}

	result := Forecast(readings, Power)

	// ties keep input order: first=1, last=5
	assert.Equal(t, round2(3+(5.0-1.0)/5*60), result.Prediction60Min)
}

func TestForecast_ConcurrentUse(t *testing.T) {
	readings := series(Temperature, 24.0, 24.5, 25.0, 25.5, 26.0, 26.5)
	expected := Forecast(readings, Temperature)
	predictor := NewPredictor()

	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, expected, predictor.Forecast(readings, Temperature))
		}()
	}
	wg.Wait()
}

func TestForecast_CustomThresholds(t *testing.T) {
	predictor := Predictor{Thresholds: DefaultThresholds}
	predictor.Thresholds.PowerMax = 5

	result := predictor.Forecast(series(Power, repeat(6, 3)...), Power)
	assert.Equal(t, RiskHigh, result.Risk)

	// the package default is untouched
	assert.Equal(t, 10.0, DefaultThresholds.PowerMax)
}
