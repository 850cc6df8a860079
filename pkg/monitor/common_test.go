package monitor

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"liyu1981.xyz/smartfloors-service/pkg/db"
	"liyu1981.xyz/smartfloors-service/pkg/models"
	"liyu1981.xyz/smartfloors-service/pkg/monitor/mocks"
)

func GetMockMonitorWithMemorySqliteDialector(t *testing.T, useMockIReading, useMockIAlert, useMockIPrediction bool) (
	*gomock.Controller,
	*Monitor,
	*mocks.MockIReading,
	*mocks.MockIAlert,
	*mocks.MockIPrediction,
) {
	ctrl := gomock.NewController(t)

	mockIReading := mocks.NewMockIReading(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIPrediction := mocks.NewMockIPrediction(ctrl)
	dbInstance := db.GetInstance(db.UseMemorySqliteDialector()) // ensure migrations
	monitorInstance := New(*dbInstance)

	opts := ServiceOpts{}
	if useMockIReading {
		opts.Reading = mockIReading
	}
	if useMockIAlert {
		opts.Alert = mockIAlert
	}
	if useMockIPrediction {
		opts.Prediction = mockIPrediction
	}
	monitorInstance.WithServices(opts)

	return ctrl, monitorInstance, mockIReading, mockIAlert, mockIPrediction
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

// seedReadings stores one reading per minute ending at end, oldest first.
func seedReadings(t *testing.T, m *Monitor, buildingID string, floor int, end time.Time, temps ...float64) {
	t.Helper()
	for i, temp := range temps {
		ts := end.Add(-time.Duration(len(temps)-1-i) * time.Minute)
		_, err := m.Reading.CreateReading(t.Context(), "test", &models.Reading{
			Timestamp:   ts,
			BuildingID:  buildingID,
			Floor:       floor,
			Temperature: temp,
			Humidity:    45,
			Power:       4,
		})
		if err != nil {
			t.Fatalf("seed reading %d: %v", i, err)
		}
	}
}
