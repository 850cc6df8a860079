package monitor

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
	"liyu1981.xyz/smartfloors-service/pkg/monitor/mocks"
	_ "liyu1981.xyz/smartfloors-service/pkg/testing"
)

func TestSinks_FanOut(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, m, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	good := mocks.NewMockISink(ctrl)
	bad := mocks.NewMockISink(ctrl)
	good.EXPECT().Name().Return("redis").AnyTimes()
	bad.EXPECT().Name().Return("influx").AnyTimes()
	m.WithSinks(good, nil, bad)
	require.Len(t, m.Sinks, 2)

	buildingID := uuid.NewString()

	good.EXPECT().WriteReading(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, r *models.Reading) error {
			assert.Equal(t, buildingID, r.BuildingID)
			assert.NotZero(t, r.ID)
			return nil
		})
	bad.EXPECT().WriteReading(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := m.Reading.CreateReading(t.Context(), "http", &models.Reading{
		BuildingID: buildingID, Floor: 1, Temperature: 22, Humidity: 50, Power: 3,
	})
	require.NoError(t, err)

	good.EXPECT().WriteAlert(gomock.Any(), gomock.Any()).Return(nil)
	bad.EXPECT().WriteAlert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err = m.Alert.CreateAlert(t.Context(), newAlert(buildingID, 1, models.VariableTemperature, models.SeverityLow))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Metrics.SinkFailures.WithLabelValues("influx")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Metrics.SinkFailures.WithLabelValues("redis")))
}

func TestSinks_NotCalledOnInvalid(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, m, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	sink := mocks.NewMockISink(ctrl)
	m.WithSinks(sink)

	_, err := m.Reading.CreateReading(t.Context(), "http", &models.Reading{BuildingID: "A", Floor: 7})
	require.Error(t, err)
}
