package forecast

import (
	"errors"
	"fmt"

	"liyu1981.xyz/smartfloors-service/pkg/models"
)

var ErrUnsupportedVariable = errors.New("unsupported variable")

// Variable is the engine-side name of a forecastable quantity.
type Variable int

const (
	Temperature Variable = iota
	Humidity
	Power
)

// ParseVariable maps a boundary identifier (temp_c, humedad_pct, energia_kw)
// to a Variable.
func ParseVariable(kind string) (Variable, error) {
	switch models.VariableKind(kind) {
	case models.VariableTemperature:
		return Temperature, nil
	case models.VariableHumidity:
		return Humidity, nil
	case models.VariablePower:
		return Power, nil
	}
	return 0, fmt.Errorf("%w %q, use one of %v", ErrUnsupportedVariable, kind, models.VariableKinds)
}

func (v Variable) Kind() models.VariableKind {
	switch v {
	case Temperature:
		return models.VariableTemperature
	case Humidity:
		return models.VariableHumidity
	case Power:
		return models.VariablePower
	}
	return ""
}

func (v Variable) String() string {
	return string(v.Kind())
}

func (v Variable) valueOf(r models.Reading) float64 {
	return r.Value(v.Kind())
}
