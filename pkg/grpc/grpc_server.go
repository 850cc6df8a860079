package grpc

import (
	"golang.org/x/time/rate"
	pb "liyu1981.xyz/smartfloors-service/pkg/grpc/smartfloors_service"

	"liyu1981.xyz/smartfloors-service/pkg/monitor"
)

type SmartFloorsServer struct {
	Monitor          *monitor.Monitor
	RateLimiterStore *monitor.RateLimiterStore
	pb.UnimplementedSmartFloorsServiceServer
}

func (s *SmartFloorsServer) GetLimiter(key string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(key)
	}
}

func (s *SmartFloorsServer) CheckFloorLimiter(key string) bool {
	limiter := s.GetLimiter(key)
	if limiter == nil {
		return true
	}
	if !limiter.Allow() {
		s.Monitor.Metrics.RateLimited.WithLabelValues("grpc").Inc()
		return false
	}
	return true
}

// RateLimitedRequests are the request types checked against the per-floor limiter.
func RateLimitedRequests() []any {
	return []any{
		&pb.PostReadingRequest{},
		&pb.PredictRequest{},
	}
}
