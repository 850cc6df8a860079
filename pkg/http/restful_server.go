package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Monitor          *monitor.Monitor
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckFloorLimiter(buildingID string, floor int) bool {
	limiter := rs.GetLimiter(common.FloorKey(buildingID, floor))
	if limiter == nil {
		return true
	}
	if !limiter.Allow() {
		rs.Monitor.Metrics.RateLimited.WithLabelValues("http").Inc()
		return false
	}
	return true
}

func (rs *RestfulServer) SetLimiter(key string, keyRate float64, keyBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(keyRate), keyBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/", rs.Root)
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/health", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(rs.Monitor.Metrics.Handler()))

	sensorData := rs.Server.Group("/sensor-data")
	{
		sensorData.POST("", rs.PostSensorData)
		sensorData.GET("", rs.GetSensorData)
		sensorData.GET("/floors/:floor", rs.GetFloorSensorData)
	}

	rs.Server.GET("/predict/:floor/:variable", rs.GetPrediction)
	rs.Server.GET("/dashboard/:floor", rs.GetDashboard)

	alerts := rs.Server.Group("/alerts")
	{
		alerts.GET("", rs.GetAlerts)
		alerts.POST("", rs.PostAlert)
		alerts.PUT("/:id/resolve", rs.ResolveAlert)
	}

	rs.Server.POST("/limiter/:key", rs.PostLimiter)
}
