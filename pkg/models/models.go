package models

import "time"

// VariableKind is the boundary identifier of a forecastable reading field.
type VariableKind string

const (
	VariableTemperature VariableKind = "temp_c"
	VariableHumidity    VariableKind = "humedad_pct"
	VariablePower       VariableKind = "energia_kw"
)

var VariableKinds = []VariableKind{VariableTemperature, VariableHumidity, VariablePower}

func (k VariableKind) Valid() bool {
	switch k {
	case VariableTemperature, VariableHumidity, VariablePower:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type Reading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
	BuildingID  string    `gorm:"index:idx_reading_floor;not null" json:"building"`
	Floor       int       `gorm:"index:idx_reading_floor;not null" json:"floor"`
	Temperature float64   `gorm:"column:temp_c;not null" json:"temp_c"`
	Humidity    float64   `gorm:"column:humedad_pct;not null" json:"humedad_pct"`
	Power       float64   `gorm:"column:energia_kw;not null" json:"energia_kw"`
}

// Value returns the field named by kind. Unknown kinds read as zero.
func (r Reading) Value(kind VariableKind) float64 {
	switch kind {
	case VariableTemperature:
		return r.Temperature
	case VariableHumidity:
		return r.Humidity
	case VariablePower:
		return r.Power
	}
	return 0
}

type Alert struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Timestamp      time.Time    `gorm:"index" json:"timestamp"`
	BuildingID     string       `gorm:"index:idx_alert_floor;not null" json:"building"`
	Floor          int          `gorm:"index:idx_alert_floor;not null" json:"floor"`
	VariableKind   VariableKind `gorm:"type:varchar(20);not null;check:variable_kind IN ('temp_c','humedad_pct','energia_kw')" json:"variable"`
	Severity       Severity     `gorm:"type:varchar(10);not null;check:severity IN ('low','medium','high')" json:"severity"`
	Message        string       `gorm:"not null" json:"message"`
	Recommendation *string      `json:"recommendation"`
	Resolved       bool         `gorm:"default:false;not null" json:"resolved"`
}

type ReadingQuery struct {
	BuildingID string
	Floor      *int
	Limit      int
}

type AlertQuery struct {
	BuildingID string
	Floor      *int
	ActiveOnly bool
	Limit      int
}

type Prediction struct {
	BuildingID      string       `json:"building"`
	Floor           int          `json:"floor"`
	Variable        VariableKind `json:"variable"`
	Prediction60Min float64      `json:"prediction_60min"`
	Risk            string       `json:"risk"`
	Recommendations []string     `json:"recommendations"`
}

type Dashboard struct {
	BuildingID   string                      `json:"building"`
	Floor        int                         `json:"floor"`
	Current      *Reading                    `json:"current"`
	ActiveAlerts []Alert                     `json:"active_alerts"`
	Predictions  map[VariableKind]Prediction `json:"predictions"`
}
