package smartfloors_service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	SmartFloorsService_PostReading_FullMethodName  = "/smartfloors.v1.SmartFloorsService/PostReading"
	SmartFloorsService_Predict_FullMethodName      = "/smartfloors.v1.SmartFloorsService/Predict"
	SmartFloorsService_GetAlerts_FullMethodName    = "/smartfloors.v1.SmartFloorsService/GetAlerts"
	SmartFloorsService_ResolveAlert_FullMethodName = "/smartfloors.v1.SmartFloorsService/ResolveAlert"
	SmartFloorsService_PostLimiter_FullMethodName  = "/smartfloors.v1.SmartFloorsService/PostLimiter"
)

type SmartFloorsServiceClient interface {
	PostReading(ctx context.Context, in *PostReadingRequest, opts ...grpc.CallOption) (*PostReadingResponse, error)
	Predict(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictResponse, error)
	GetAlerts(ctx context.Context, in *GetAlertsRequest, opts ...grpc.CallOption) (*GetAlertsResponse, error)
	ResolveAlert(ctx context.Context, in *ResolveAlertRequest, opts ...grpc.CallOption) (*ResolveAlertResponse, error)
	PostLimiter(ctx context.Context, in *PostLimiterRequest, opts ...grpc.CallOption) (*PostLimiterResponse, error)
}

type smartFloorsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSmartFloorsServiceClient(cc grpc.ClientConnInterface) SmartFloorsServiceClient {
	return &smartFloorsServiceClient{cc}
}

func (c *smartFloorsServiceClient) invoke(ctx context.Context, method string, in any, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *smartFloorsServiceClient) PostReading(ctx context.Context, in *PostReadingRequest, opts ...grpc.CallOption) (*PostReadingResponse, error) {
	out := new(PostReadingResponse)
	if err := c.invoke(ctx, SmartFloorsService_PostReading_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFloorsServiceClient) Predict(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictResponse, error) {
	out := new(PredictResponse)
	if err := c.invoke(ctx, SmartFloorsService_Predict_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFloorsServiceClient) GetAlerts(ctx context.Context, in *GetAlertsRequest, opts ...grpc.CallOption) (*GetAlertsResponse, error) {
	out := new(GetAlertsResponse)
	if err := c.invoke(ctx, SmartFloorsService_GetAlerts_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFloorsServiceClient) ResolveAlert(ctx context.Context, in *ResolveAlertRequest, opts ...grpc.CallOption) (*ResolveAlertResponse, error) {
	out := new(ResolveAlertResponse)
	if err := c.invoke(ctx, SmartFloorsService_ResolveAlert_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFloorsServiceClient) PostLimiter(ctx context.Context, in *PostLimiterRequest, opts ...grpc.CallOption) (*PostLimiterResponse, error) {
	out := new(PostLimiterResponse)
	if err := c.invoke(ctx, SmartFloorsService_PostLimiter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type SmartFloorsServiceServer interface {
	PostReading(context.Context, *PostReadingRequest) (*PostReadingResponse, error)
	Predict(context.Context, *PredictRequest) (*PredictResponse, error)
	GetAlerts(context.Context, *GetAlertsRequest) (*GetAlertsResponse, error)
	ResolveAlert(context.Context, *ResolveAlertRequest) (*ResolveAlertResponse, error)
	PostLimiter(context.Context, *PostLimiterRequest) (*PostLimiterResponse, error)
}

// UnimplementedSmartFloorsServiceServer can be embedded to keep servers
// compiling when methods are added.
type UnimplementedSmartFloorsServiceServer struct{}

func (UnimplementedSmartFloorsServiceServer) PostReading(context.Context, *PostReadingRequest) (*PostReadingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PostReading not implemented")
}
func (UnimplementedSmartFloorsServiceServer) Predict(context.Context, *PredictRequest) (*PredictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Predict not implemented")
}
func (UnimplementedSmartFloorsServiceServer) GetAlerts(context.Context, *GetAlertsRequest) (*GetAlertsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAlerts not implemented")
}
func (UnimplementedSmartFloorsServiceServer) ResolveAlert(context.Context, *ResolveAlertRequest) (*ResolveAlertResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveAlert not implemented")
}
func (UnimplementedSmartFloorsServiceServer) PostLimiter(context.Context, *PostLimiterRequest) (*PostLimiterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PostLimiter not implemented")
}

func RegisterSmartFloorsServiceServer(s grpc.ServiceRegistrar, srv SmartFloorsServiceServer) {
	s.RegisterService(&SmartFloorsService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to the grpc.MethodDesc handler shape.
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(SmartFloorsServiceServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SmartFloorsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SmartFloorsServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var SmartFloorsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "smartfloors.v1.SmartFloorsService",
	HandlerType: (*SmartFloorsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PostReading",
			Handler:    unaryHandler(SmartFloorsService_PostReading_FullMethodName, SmartFloorsServiceServer.PostReading),
		},
		{
			MethodName: "Predict",
			Handler:    unaryHandler(SmartFloorsService_Predict_FullMethodName, SmartFloorsServiceServer.Predict),
		},
		{
			MethodName: "GetAlerts",
			Handler:    unaryHandler(SmartFloorsService_GetAlerts_FullMethodName, SmartFloorsServiceServer.GetAlerts),
		},
		{
			MethodName: "ResolveAlert",
			Handler:    unaryHandler(SmartFloorsService_ResolveAlert_FullMethodName, SmartFloorsServiceServer.ResolveAlert),
		},
		{
			MethodName: "PostLimiter",
			Handler:    unaryHandler(SmartFloorsService_PostLimiter_FullMethodName, SmartFloorsServiceServer.PostLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "smartfloors/v1/smartfloors_service",
}
