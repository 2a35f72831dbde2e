package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "idlemon.battle.v1alpha1.BattleService"

// Full method names
const (
	BattleService_StartEncounter_FullMethodName = "/" + ServiceName + "/StartEncounter"
	BattleService_GetBattle_FullMethodName      = "/" + ServiceName + "/GetBattle"
	BattleService_NextTurn_FullMethodName       = "/" + ServiceName + "/NextTurn"
	BattleService_AttemptCapture_FullMethodName = "/" + ServiceName + "/AttemptCapture"
	BattleService_EndBattle_FullMethodName      = "/" + ServiceName + "/EndBattle"
	BattleService_Touch_FullMethodName          = "/" + ServiceName + "/Touch"
)

// BattleServiceServer is the server API for BattleService
type BattleServiceServer interface {
	// StartEncounter spawns a wild creature in a zone and starts a battle against it
	StartEncounter(context.Context, *StartEncounterRequest) (*StartEncounterResponse, error)
	// GetBattle returns the player's battle, including one flagged timed out
	GetBattle(context.Context, *GetBattleRequest) (*GetBattleResponse, error)
	// NextTurn resolves one turn
	NextTurn(context.Context, *NextTurnRequest) (*NextTurnResponse, error)
	// AttemptCapture throws a ball at the wild creature
	AttemptCapture(context.Context, *AttemptCaptureRequest) (*AttemptCaptureResponse, error)
	// EndBattle removes the player's battle
	EndBattle(context.Context, *EndBattleRequest) (*EndBattleResponse, error)
	// Touch keeps the player's battle from timing out
	Touch(context.Context, *TouchRequest) (*TouchResponse, error)
}

// UnimplementedBattleServiceServer can be embedded for forward compatibility
type UnimplementedBattleServiceServer struct{}

func (UnimplementedBattleServiceServer) StartEncounter(context.Context, *StartEncounterRequest) (*StartEncounterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartEncounter not implemented")
}

func (UnimplementedBattleServiceServer) GetBattle(context.Context, *GetBattleRequest) (*GetBattleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBattle not implemented")
}

func (UnimplementedBattleServiceServer) NextTurn(context.Context, *NextTurnRequest) (*NextTurnResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NextTurn not implemented")
}

func (UnimplementedBattleServiceServer) AttemptCapture(context.Context, *AttemptCaptureRequest) (*AttemptCaptureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttemptCapture not implemented")
}

func (UnimplementedBattleServiceServer) EndBattle(context.Context, *EndBattleRequest) (*EndBattleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EndBattle not implemented")
}

func (UnimplementedBattleServiceServer) Touch(context.Context, *TouchRequest) (*TouchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Touch not implemented")
}

// RegisterBattleServiceServer registers srv with s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleService_ServiceDesc, srv)
}

func _BattleService_StartEncounter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartEncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).StartEncounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BattleService_StartEncounter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).StartEncounter(ctx, req.(*StartEncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_GetBattle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetBattleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).GetBattle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BattleService_GetBattle_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).GetBattle(ctx, req.(*GetBattleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_NextTurn_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NextTurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).NextTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BattleService_NextTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).NextTurn(ctx, req.(*NextTurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_AttemptCapture_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AttemptCaptureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).AttemptCapture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BattleService_AttemptCapture_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).AttemptCapture(ctx, req.(*AttemptCaptureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_EndBattle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EndBattleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).EndBattle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BattleService_EndBattle_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).EndBattle(ctx, req.(*EndBattleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_Touch_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TouchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).Touch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BattleService_Touch_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).Touch(ctx, req.(*TouchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BattleService_ServiceDesc describes BattleService for grpc.Server
var BattleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartEncounter",
			Handler:    _BattleService_StartEncounter_Handler,
		},
		{
			MethodName: "GetBattle",
			Handler:    _BattleService_GetBattle_Handler,
		},
		{
			MethodName: "NextTurn",
			Handler:    _BattleService_NextTurn_Handler,
		},
		{
			MethodName: "AttemptCapture",
			Handler:    _BattleService_AttemptCapture_Handler,
		},
		{
			MethodName: "EndBattle",
			Handler:    _BattleService_EndBattle_Handler,
		},
		{
			MethodName: "Touch",
			Handler:    _BattleService_Touch_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "idlemon/battle/v1alpha1/battle",
}

// BattleServiceClient is the client API for BattleService. Calls use the
// JSON codec unless the caller overrides the content subtype.
type BattleServiceClient interface {
	StartEncounter(ctx context.Context, in *StartEncounterRequest, opts ...grpc.CallOption) (*StartEncounterResponse, error)
	GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*GetBattleResponse, error)
	NextTurn(ctx context.Context, in *NextTurnRequest, opts ...grpc.CallOption) (*NextTurnResponse, error)
	AttemptCapture(ctx context.Context, in *AttemptCaptureRequest, opts ...grpc.CallOption) (*AttemptCaptureResponse, error)
	EndBattle(ctx context.Context, in *EndBattleRequest, opts ...grpc.CallOption) (*EndBattleResponse, error)
	Touch(ctx context.Context, in *TouchRequest, opts ...grpc.CallOption) (*TouchResponse, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client over cc
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc: cc}
}

func (c *battleServiceClient) StartEncounter(ctx context.Context, in *StartEncounterRequest, opts ...grpc.CallOption) (*StartEncounterResponse, error) {
	out := new(StartEncounterResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, BattleService_StartEncounter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*GetBattleResponse, error) {
	out := new(GetBattleResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, BattleService_GetBattle_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) NextTurn(ctx context.Context, in *NextTurnRequest, opts ...grpc.CallOption) (*NextTurnResponse, error) {
	out := new(NextTurnResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, BattleService_NextTurn_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) AttemptCapture(ctx context.Context, in *AttemptCaptureRequest, opts ...grpc.CallOption) (*AttemptCaptureResponse, error) {
	out := new(AttemptCaptureResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, BattleService_AttemptCapture_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) EndBattle(ctx context.Context, in *EndBattleRequest, opts ...grpc.CallOption) (*EndBattleResponse, error) {
	out := new(EndBattleResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, BattleService_EndBattle_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) Touch(ctx context.Context, in *TouchRequest, opts ...grpc.CallOption) (*TouchResponse, error) {
	out := new(TouchResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, BattleService_Touch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
