package grpc

import (
	"context"
	"reflect"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"liyu1981.xyz/smartfloors-service/pkg/common"
)

// floorScoped requests name the building floor they act on.
type floorScoped interface {
	GetFloorKey() string
}

// CreateRateLimitInterceptor throttles the listed request types per floor.
// Requests that do not name a floor reach the handler, which rejects them
// as invalid.
func (s *SmartFloorsServer) CreateRateLimitInterceptor(targetReqTypes []any) grpc.UnaryServerInterceptor {
	limited := common.Reducer(targetReqTypes,
		func(m map[reflect.Type]bool, t any) map[reflect.Type]bool {
			m[reflect.TypeOf(t)] = true
			return m
		},
		map[reflect.Type]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !limited[reflect.TypeOf(req)] {
			return handler(ctx, req)
		}
		r, ok := req.(floorScoped)
		if !ok {
			return handler(ctx, req)
		}
		if floorKey := r.GetFloorKey(); floorKey != "" && !s.CheckFloorLimiter(floorKey) {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for floor %s", floorKey)
		}
		return handler(ctx, req)
	}
}
