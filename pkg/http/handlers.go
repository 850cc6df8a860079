package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/forecast"
	"liyu1981.xyz/smartfloors-service/pkg/models"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
)

var errInvalidParam = errors.New("invalid parameter")

// statusFor maps core errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, monitor.ErrInvalidReading),
		errors.Is(err, monitor.ErrInvalidAlert),
		errors.Is(err, forecast.ErrUnsupportedVariable),
		errors.Is(err, errInvalidParam):
		return http.StatusBadRequest
	case errors.Is(err, monitor.ErrNoReadings),
		errors.Is(err, monitor.ErrAlertNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (rs *RestfulServer) abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func buildingParam(c *gin.Context) string {
	return c.DefaultQuery("building", common.DefaultBuildingID)
}

func intParam(raw string, name string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidParamf(name, raw)
	}
	return v, nil
}

func optionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw, found := c.GetQuery(name)
	if !found || raw == "" {
		return nil, nil
	}
	v, err := intParam(raw, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func limitQuery(c *gin.Context, defaultLimit int) (int, error) {
	limit, err := optionalIntQuery(c, "limit")
	if err != nil {
		return 0, err
	}
	if limit == nil {
		return defaultLimit, nil
	}
	if *limit <= 0 {
		return 0, errInvalidParamf("limit", strconv.Itoa(*limit))
	}
	return *limit, nil
}

func floorPathParam(c *gin.Context) (int, error) {
	floor, err := intParam(c.Param("floor"), "floor")
	if err != nil {
		return 0, err
	}
	if floor < common.MinFloor || floor > common.MaxFloor {
		return 0, errInvalidParamf("floor", c.Param("floor"))
	}
	return floor, nil
}

func errInvalidParamf(name string, raw string) error {
	return fmt.Errorf("%w %s: %q", errInvalidParam, name, raw)
}

func (rs *RestfulServer) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": common.ServiceName, "version": common.ServiceVersion})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type SensorDataRequest struct {
	Timestamp   time.Time `json:"timestamp" zog:"timestamp"`
	BuildingID  string    `json:"building" zog:"building"`
	Floor       int       `json:"floor" zog:"floor"`
	Temperature float64   `json:"temp_c" zog:"temp_c"`
	Humidity    float64   `json:"humedad_pct" zog:"humedad_pct"`
	Power       float64   `json:"energia_kw" zog:"energia_kw"`
}

var sensorDataRequestSchema = z.Struct(z.Shape{
	"Timestamp":   z.Time(),
	"BuildingID":  z.String().Default(common.DefaultBuildingID),
	"Floor":       z.Int().Required(),
	"Temperature": z.Float64().Required(),
	"Humidity":    z.Float64().Required(),
	"Power":       z.Float64().Required(),
})

func (rs *RestfulServer) PostSensorData(c *gin.Context) {
	var req SensorDataRequest
	if err := sensorDataRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckFloorLimiter(req.BuildingID, req.Floor) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	reading, err := rs.Monitor.Reading.CreateReading(c.Request.Context(), "http", &models.Reading{
		Timestamp:   req.Timestamp,
		BuildingID:  req.BuildingID,
		Floor:       req.Floor,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Power:       req.Power,
	})
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reading)
}

func (rs *RestfulServer) GetSensorData(c *gin.Context) {
	floor, err := optionalIntQuery(c, "floor")
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	limit, err := limitQuery(c, monitor.DefaultReadingsLimit)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	readings, err := rs.Monitor.Reading.GetReadings(c.Request.Context(), models.ReadingQuery{
		BuildingID: buildingParam(c),
		Floor:      floor,
		Limit:      limit,
	})
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetFloorSensorData(c *gin.Context) {
	floor, err := floorPathParam(c)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	limit, err := limitQuery(c, monitor.DefaultFloorReadingLimit)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	readings, err := rs.Monitor.Reading.GetReadings(c.Request.Context(), models.ReadingQuery{
		BuildingID: buildingParam(c),
		Floor:      &floor,
		Limit:      limit,
	})
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetPrediction(c *gin.Context) {
	variable, err := forecast.ParseVariable(c.Param("variable"))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	floor, err := floorPathParam(c)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	buildingID := buildingParam(c)

	if !rs.CheckFloorLimiter(buildingID, floor) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	prediction, err := rs.Monitor.Prediction.Predict(c.Request.Context(), buildingID, floor, variable)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	floor, err := floorPathParam(c)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	buildingID := buildingParam(c)

	if !rs.CheckFloorLimiter(buildingID, floor) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	dashboard, err := rs.Monitor.Prediction.Dashboard(c.Request.Context(), buildingID, floor)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	floor, err := optionalIntQuery(c, "floor")
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	limit, err := optionalIntQuery(c, "limit")
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	activeOnly := true
	if raw, found := c.GetQuery("active_only"); found {
		if activeOnly, err = strconv.ParseBool(raw); err != nil {
			rs.abortWithError(c, errInvalidParamf("active_only", raw))
			return
		}
	}

	query := models.AlertQuery{
		BuildingID: buildingParam(c),
		Floor:      floor,
		ActiveOnly: activeOnly,
	}
	if limit != nil {
		query.Limit = *limit
	}

	var alerts []models.Alert
	if alerts, err = rs.Monitor.Alert.GetAlerts(c.Request.Context(), query); err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type AlertRequest struct {
	BuildingID     string `json:"building" zog:"building"`
	Floor          int    `json:"floor" zog:"floor"`
	VariableKind   string `json:"variable" zog:"variable"`
	Severity       string `json:"severity" zog:"severity"`
	Message        string `json:"message" zog:"message"`
	Recommendation string `json:"recommendation" zog:"recommendation"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"BuildingID":     z.String().Default(common.DefaultBuildingID),
	"Floor":          z.Int().Required(),
	"VariableKind":   z.String().Required(),
	"Severity":       z.String().Required(),
	"Message":        z.String().Required(),
	"Recommendation": z.String(),
})

func (rs *RestfulServer) PostAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert := models.Alert{
		BuildingID:   req.BuildingID,
		Floor:        req.Floor,
		VariableKind: models.VariableKind(req.VariableKind),
		Severity:     models.Severity(req.Severity),
		Message:      req.Message,
	}
	if req.Recommendation != "" {
		alert.Recommendation = &req.Recommendation
	}

	saved, err := rs.Monitor.Alert.CreateAlert(c.Request.Context(), &alert)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		rs.abortWithError(c, errInvalidParamf("id", c.Param("id")))
		return
	}

	alert, err := rs.Monitor.Alert.ResolveAlert(c.Request.Context(), uint(id))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	key := c.Param("key")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(key, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
