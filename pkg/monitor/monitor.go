package monitor

//go:generate mockgen -source=monitor.go -destination=mocks/mock_monitor.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"liyu1981.xyz/smartfloors-service/pkg/db"
	"liyu1981.xyz/smartfloors-service/pkg/forecast"
	"liyu1981.xyz/smartfloors-service/pkg/metrics"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

var (
	ErrInvalidReading = errors.New("invalid reading")
	ErrInvalidAlert   = errors.New("invalid alert")
	ErrAlertNotFound  = errors.New("alert not found")
	ErrNoReadings     = errors.New("no readings in lookback window")
)

const (
	DefaultLookback          = 60 * time.Minute
	DefaultReadingsLimit     = 100
	DefaultFloorReadingLimit = 50
	DefaultAlertsLimit       = 50
)

type IReading interface {
	CreateReading(ctx context.Context, source string, input *models.Reading) (*models.Reading, error)
	GetReadings(ctx context.Context, query models.ReadingQuery) ([]models.Reading, error)
	GetRecentReadings(ctx context.Context, buildingID string, floor int, lookback time.Duration) ([]models.Reading, error)
}

type IAlert interface {
	CreateAlert(ctx context.Context, input *models.Alert) (*models.Alert, error)
	GetAlerts(ctx context.Context, query models.AlertQuery) ([]models.Alert, error)
	ResolveAlert(ctx context.Context, id uint) (*models.Alert, error)
}

type IPrediction interface {
	Predict(ctx context.Context, buildingID string, floor int, variable forecast.Variable) (*models.Prediction, error)
	Dashboard(ctx context.Context, buildingID string, floor int) (*models.Dashboard, error)
}

// ISink receives every created reading and alert. Writes are best-effort:
// errors are logged and counted, never returned to the caller.
type ISink interface {
	Name() string
	WriteReading(ctx context.Context, reading *models.Reading) error
	WriteAlert(ctx context.Context, alert *models.Alert) error
}

// IFloorState serves the latest reading of a floor from a cache. A nil
// reading means the cache has nothing for that floor.
type IFloorState interface {
	GetFloorState(ctx context.Context, buildingID string, floor int) (*models.Reading, error)
}

type Monitor struct {
	Db         db.DB
	Reading    IReading
	Alert      IAlert
	Prediction IPrediction
	Sinks      []ISink
	FloorState IFloorState

	Predictor forecast.Predictor
	Lookback  time.Duration
	Metrics   *metrics.Metrics
	Now       func() time.Time
}

type ServiceOpts struct {
	Reading    IReading
	Alert      IAlert
	Prediction IPrediction
}

// New wires the default services, thresholds and a fresh metrics registry.
func New(dbInstance db.DB) *Monitor {
	m := &Monitor{
		Db:        dbInstance,
		Predictor: forecast.NewPredictor(),
		Lookback:  DefaultLookback,
		Metrics:   metrics.New(),
		Now:       time.Now,
	}
	return m.WithServices(ServiceOpts{
		Reading:    m.GetIReading(),
		Alert:      m.GetIAlert(),
		Prediction: m.GetIPrediction(),
	})
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Reading != nil {
		m.Reading = opts.Reading
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.Prediction != nil {
		m.Prediction = opts.Prediction
	}
	return m
}

func (m *Monitor) WithSinks(sinks ...ISink) *Monitor {
	for _, s := range sinks {
		if s != nil {
			m.Sinks = append(m.Sinks, s)
		}
	}
	return m
}

// WithFloorState makes Dashboard read the current reading from state first,
// falling back to the store on a miss or error.
func (m *Monitor) WithFloorState(state IFloorState) *Monitor {
	m.FloorState = state
	return m
}

func (m *Monitor) WithLookback(lookback time.Duration) *Monitor {
	if lookback > 0 {
		m.Lookback = lookback
	}
	return m
}

func (m *Monitor) now() time.Time {
	if m.Now == nil {
		return time.Now().UTC()
	}
	return m.Now().UTC()
}
