package smartfloors_service

import (
	"google.golang.org/protobuf/types/known/timestamppb"
	"liyu1981.xyz/smartfloors-service/pkg/common"
)

type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Reading struct {
	Id         uint64                 `json:"id,omitempty"`
	Timestamp  *timestamppb.Timestamp `json:"timestamp,omitempty"`
	Building   string                 `json:"building"`
	Floor      int32                  `json:"floor"`
	TempC      float64                `json:"temp_c"`
	HumedadPct float64                `json:"humedad_pct"`
	EnergiaKw  float64                `json:"energia_kw"`
}

type PostReadingRequest struct {
	Reading *Reading `json:"reading"`
}

func (r *PostReadingRequest) GetFloorKey() string {
	if r == nil || r.Reading == nil || r.Reading.Building == "" {
		return ""
	}
	return common.FloorKey(r.Reading.Building, int(r.Reading.Floor))
}

type PostReadingResponse struct {
	Status  *Status  `json:"status"`
	Reading *Reading `json:"reading,omitempty"`
}

type PredictRequest struct {
	Building string `json:"building"`
	Floor    int32  `json:"floor"`
	Variable string `json:"variable"`
}

func (r *PredictRequest) GetFloorKey() string {
	if r == nil || r.Building == "" {
		return ""
	}
	return common.FloorKey(r.Building, int(r.Floor))
}

type Prediction struct {
	Building        string   `json:"building"`
	Floor           int32    `json:"floor"`
	Variable        string   `json:"variable"`
	Prediction60Min float64  `json:"prediction_60min"`
	Risk            string   `json:"risk"`
	Recommendations []string `json:"recommendations"`
}

type PredictResponse struct {
	Status     *Status     `json:"status"`
	Prediction *Prediction `json:"prediction,omitempty"`
}

// GetAlertsRequest with Floor 0 lists every floor of the building.
type GetAlertsRequest struct {
	Building   string `json:"building"`
	Floor      int32  `json:"floor"`
	ActiveOnly bool   `json:"active_only"`
	Limit      int32  `json:"limit"`
}

type Alert struct {
	Id             uint64                 `json:"id"`
	Timestamp      *timestamppb.Timestamp `json:"timestamp"`
	Building       string                 `json:"building"`
	Floor          int32                  `json:"floor"`
	Variable       string                 `json:"variable"`
	Severity       string                 `json:"severity"`
	Message        string                 `json:"message"`
	Recommendation string                 `json:"recommendation,omitempty"`
	Resolved       bool                   `json:"resolved"`
}

type GetAlertsResponse struct {
	Status *Status  `json:"status"`
	Alerts []*Alert `json:"alerts"`
}

type ResolveAlertRequest struct {
	Id uint64 `json:"id"`
}

type ResolveAlertResponse struct {
	Status *Status `json:"status"`
	Alert  *Alert  `json:"alert,omitempty"`
}

type PostLimiterRequest struct {
	Key   string  `json:"key"`
	Rate  float64 `json:"rate"`
	Burst int32   `json:"burst"`
}

type PostLimiterResponse struct {
	Status *Status `json:"status"`
}
