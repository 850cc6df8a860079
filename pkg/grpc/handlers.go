package grpc

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/types/known/timestamppb"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/forecast"
	pb "liyu1981.xyz/smartfloors-service/pkg/grpc/smartfloors_service"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

func validateBuildingID(buildingID *string) z.ZogIssueList {
	var buildingIDValidator = z.String().Min(1).Required()
	return buildingIDValidator.Validate(buildingID)
}

func validationFailure(err any) *pb.Status {
	return &pb.Status{Success: false, Message: fmt.Sprintf("validation error: %v", err)}
}

func failure(method string, err error) *pb.Status {
	logger := common.GetLoggerWith(common.LoggerNameGrpcServer)
	logger.Warn("Request failed", zap.String("method", method), zap.Error(err))
	return &pb.Status{Success: false, Message: err.Error()}
}

func okStatus() *pb.Status {
	return &pb.Status{Success: true, Message: "OK"}
}

func toPbReading(r *models.Reading) *pb.Reading {
	return &pb.Reading{
		Id:         uint64(r.ID),
		Timestamp:  timestamppb.New(r.Timestamp),
		Building:   r.BuildingID,
		Floor:      int32(r.Floor),
		TempC:      r.Temperature,
		HumedadPct: r.Humidity,
		EnergiaKw:  r.Power,
	}
}

func toPbAlert(a models.Alert) *pb.Alert {
	alert := &pb.Alert{
		Id:        uint64(a.ID),
		Timestamp: timestamppb.New(a.Timestamp),
		Building:  a.BuildingID,
		Floor:     int32(a.Floor),
		Variable:  string(a.VariableKind),
		Severity:  string(a.Severity),
		Message:   a.Message,
		Resolved:  a.Resolved,
	}
	if a.Recommendation != nil {
		alert.Recommendation = *a.Recommendation
	}
	return alert
}

func (s *SmartFloorsServer) PostReading(ctx context.Context, req *pb.PostReadingRequest) (*pb.PostReadingResponse, error) {
	if req.Reading == nil {
		return &pb.PostReadingResponse{Status: validationFailure("reading can not be empty")}, nil
	}
	if err := validateBuildingID(&req.Reading.Building); err != nil {
		return &pb.PostReadingResponse{Status: validationFailure(err)}, nil
	}

	reading := models.Reading{
		BuildingID:  req.Reading.Building,
		Floor:       int(req.Reading.Floor),
		Temperature: req.Reading.TempC,
		Humidity:    req.Reading.HumedadPct,
		Power:       req.Reading.EnergiaKw,
	}
	// a missing timestamp is stamped by the store
	if req.Reading.Timestamp != nil {
		if err := req.Reading.Timestamp.CheckValid(); err != nil {
			return &pb.PostReadingResponse{Status: validationFailure(err)}, nil
		}
		reading.Timestamp = req.Reading.Timestamp.AsTime()
	}

	saved, err := s.Monitor.Reading.CreateReading(ctx, "grpc", &reading)
	if err != nil {
		return &pb.PostReadingResponse{Status: failure("PostReading", err)}, nil
	}

	return &pb.PostReadingResponse{Status: okStatus(), Reading: toPbReading(saved)}, nil
}

func (s *SmartFloorsServer) Predict(ctx context.Context, req *pb.PredictRequest) (*pb.PredictResponse, error) {
	if err := validateBuildingID(&req.Building); err != nil {
		return &pb.PredictResponse{Status: validationFailure(err)}, nil
	}

	var floorValidator = z.Int32().GTE(int32(common.MinFloor)).LTE(int32(common.MaxFloor)).Required()
	if err := floorValidator.Validate(&req.Floor); err != nil {
		return &pb.PredictResponse{Status: validationFailure(err)}, nil
	}

	variable, err := forecast.ParseVariable(req.Variable)
	if err != nil {
		return &pb.PredictResponse{Status: validationFailure(err)}, nil
	}

	prediction, err := s.Monitor.Prediction.Predict(ctx, req.Building, int(req.Floor), variable)
	if err != nil {
		return &pb.PredictResponse{Status: failure("Predict", err)}, nil
	}

	return &pb.PredictResponse{
		Status: okStatus(),
		Prediction: &pb.Prediction{
			Building:        prediction.BuildingID,
			Floor:           int32(prediction.Floor),
			Variable:        string(prediction.Variable),
			Prediction60Min: prediction.Prediction60Min,
			Risk:            prediction.Risk,
			Recommendations: prediction.Recommendations,
		},
	}, nil
}

func (s *SmartFloorsServer) GetAlerts(ctx context.Context, req *pb.GetAlertsRequest) (*pb.GetAlertsResponse, error) {
	if err := validateBuildingID(&req.Building); err != nil {
		return &pb.GetAlertsResponse{Status: validationFailure(err)}, nil
	}

	query := models.AlertQuery{
		BuildingID: req.Building,
		ActiveOnly: req.ActiveOnly,
		Limit:      int(req.Limit),
	}
	if req.Floor != 0 {
		floor := int(req.Floor)
		query.Floor = &floor
	}

	alerts, err := s.Monitor.Alert.GetAlerts(ctx, query)
	if err != nil {
		return &pb.GetAlertsResponse{
			Status: failure("GetAlerts", err),
			Alerts: nil,
		}, nil
	}

	return &pb.GetAlertsResponse{
		Status: okStatus(),
		Alerts: common.Mapper(alerts, toPbAlert),
	}, nil
}

func (s *SmartFloorsServer) ResolveAlert(ctx context.Context, req *pb.ResolveAlertRequest) (*pb.ResolveAlertResponse, error) {
	if req.Id == 0 {
		return &pb.ResolveAlertResponse{Status: validationFailure("id can not be empty")}, nil
	}

	alert, err := s.Monitor.Alert.ResolveAlert(ctx, uint(req.Id))
	if err != nil {
		return &pb.ResolveAlertResponse{Status: failure("ResolveAlert", err)}, nil
	}

	return &pb.ResolveAlertResponse{Status: okStatus(), Alert: toPbAlert(*alert)}, nil
}

func (s *SmartFloorsServer) PostLimiter(ctx context.Context, req *pb.PostLimiterRequest) (*pb.PostLimiterResponse, error) {
	var keyValidator = z.String().Min(1).Required()
	if err := keyValidator.Validate(&req.Key); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailure(err)}, nil
	}

	var rateValidator = z.Float64().GTE(0)
	if err := rateValidator.Validate(&req.Rate); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailure(err)}, nil
	}

	var burstValidator = z.Int32().GTE(0)
	if err := burstValidator.Validate(&req.Burst); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailure(err)}, nil
	}

	if s.RateLimiterStore == nil {
		return &pb.PostLimiterResponse{
			Status: &pb.Status{
				Success: false,
				Message: "RateLimiterStore is not used. No effect.",
			},
		}, nil
	}

	s.RateLimiterStore.SetLimiter(req.Key, rate.Limit(req.Rate), int(req.Burst))
	return &pb.PostLimiterResponse{Status: okStatus()}, nil
}
