package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rooms.v1alpha1.RoomService"

// Full method names
const (
	RoomService_AddTemplate_FullMethodName      = "/" + ServiceName + "/AddTemplate"
	RoomService_GetTemplate_FullMethodName      = "/" + ServiceName + "/GetTemplate"
	RoomService_ListTemplates_FullMethodName    = "/" + ServiceName + "/ListTemplates"
	RoomService_UpdateTemplate_FullMethodName   = "/" + ServiceName + "/UpdateTemplate"
	RoomService_RemoveTemplate_FullMethodName   = "/" + ServiceName + "/RemoveTemplate"
	RoomService_ImportTemplates_FullMethodName  = "/" + ServiceName + "/ImportTemplates"
	RoomService_SyncToEdgar_FullMethodName      = "/" + ServiceName + "/SyncToEdgar"
	RoomService_PullFromEdgar_FullMethodName    = "/" + ServiceName + "/PullFromEdgar"
	RoomService_GenerateTemplate_FullMethodName = "/" + ServiceName + "/GenerateTemplate"
	RoomService_SaveSnapshot_FullMethodName     = "/" + ServiceName + "/SaveSnapshot"
	RoomService_LoadSnapshot_FullMethodName     = "/" + ServiceName + "/LoadSnapshot"
	RoomService_ListSnapshots_FullMethodName    = "/" + ServiceName + "/ListSnapshots"
	RoomService_CreateSession_FullMethodName    = "/" + ServiceName + "/CreateSession"
	RoomService_GetSession_FullMethodName       = "/" + ServiceName + "/GetSession"
	RoomService_ListSessions_FullMethodName     = "/" + ServiceName + "/ListSessions"
	RoomService_DeleteSession_FullMethodName    = "/" + ServiceName + "/DeleteSession"
	RoomService_PlaceAssets_FullMethodName      = "/" + ServiceName + "/PlaceAssets"
	RoomService_PlaceSingle_FullMethodName      = "/" + ServiceName + "/PlaceSingle"
	RoomService_GetPlacements_FullMethodName    = "/" + ServiceName + "/GetPlacements"
	RoomService_ClearPlacements_FullMethodName  = "/" + ServiceName + "/ClearPlacements"
)

// RoomServiceClient is the client API for RoomService. Every call is sent
// with the JSON codec.
type RoomServiceClient interface {
	AddTemplate(ctx context.Context, in *AddTemplateRequest, opts ...grpc.CallOption) (*AddTemplateResponse, error)
	GetTemplate(ctx context.Context, in *GetTemplateRequest, opts ...grpc.CallOption) (*GetTemplateResponse, error)
	ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error)
	UpdateTemplate(ctx context.Context, in *UpdateTemplateRequest, opts ...grpc.CallOption) (*UpdateTemplateResponse, error)
	RemoveTemplate(ctx context.Context, in *RemoveTemplateRequest, opts ...grpc.CallOption) (*RemoveTemplateResponse, error)
	ImportTemplates(ctx context.Context, in *ImportTemplatesRequest, opts ...grpc.CallOption) (*ImportTemplatesResponse, error)
	SyncToEdgar(ctx context.Context, in *SyncToEdgarRequest, opts ...grpc.CallOption) (*SyncToEdgarResponse, error)
	PullFromEdgar(ctx context.Context, in *PullFromEdgarRequest, opts ...grpc.CallOption) (*PullFromEdgarResponse, error)
	GenerateTemplate(ctx context.Context, in *GenerateTemplateRequest, opts ...grpc.CallOption) (*GenerateTemplateResponse, error)
	SaveSnapshot(ctx context.Context, in *SaveSnapshotRequest, opts ...grpc.CallOption) (*SaveSnapshotResponse, error)
	LoadSnapshot(ctx context.Context, in *LoadSnapshotRequest, opts ...grpc.CallOption) (*LoadSnapshotResponse, error)
	ListSnapshots(ctx context.Context, in *ListSnapshotsRequest, opts ...grpc.CallOption) (*ListSnapshotsResponse, error)
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error)
	DeleteSession(ctx context.Context, in *DeleteSessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error)
	PlaceAssets(ctx context.Context, in *PlaceAssetsRequest, opts ...grpc.CallOption) (*PlaceAssetsResponse, error)
	PlaceSingle(ctx context.Context, in *PlaceSingleRequest, opts ...grpc.CallOption) (*PlaceSingleResponse, error)
	GetPlacements(ctx context.Context, in *GetPlacementsRequest, opts ...grpc.CallOption) (*GetPlacementsResponse, error)
	ClearPlacements(ctx context.Context, in *ClearPlacementsRequest, opts ...grpc.CallOption) (*ClearPlacementsResponse, error)
}

type roomServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRoomServiceClient wraps a connection
func NewRoomServiceClient(cc grpc.ClientConnInterface) RoomServiceClient {
	return &roomServiceClient{cc: cc}
}

func (c *roomServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := make([]grpc.CallOption, 0, len(opts)+1)
	callOpts = append(callOpts, grpc.CallContentSubtype(CodecName))
	callOpts = append(callOpts, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *roomServiceClient) AddTemplate(ctx context.Context, in *AddTemplateRequest, opts ...grpc.CallOption) (*AddTemplateResponse, error) {
	out := new(AddTemplateResponse)
	if err := c.invoke(ctx, RoomService_AddTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) GetTemplate(ctx context.Context, in *GetTemplateRequest, opts ...grpc.CallOption) (*GetTemplateResponse, error) {
	out := new(GetTemplateResponse)
	if err := c.invoke(ctx, RoomService_GetTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error) {
	out := new(ListTemplatesResponse)
	if err := c.invoke(ctx, RoomService_ListTemplates_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) UpdateTemplate(ctx context.Context, in *UpdateTemplateRequest, opts ...grpc.CallOption) (*UpdateTemplateResponse, error) {
	out := new(UpdateTemplateResponse)
	if err := c.invoke(ctx, RoomService_UpdateTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) RemoveTemplate(ctx context.Context, in *RemoveTemplateRequest, opts ...grpc.CallOption) (*RemoveTemplateResponse, error) {
	out := new(RemoveTemplateResponse)
	if err := c.invoke(ctx, RoomService_RemoveTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) ImportTemplates(ctx context.Context, in *ImportTemplatesRequest, opts ...grpc.CallOption) (*ImportTemplatesResponse, error) {
	out := new(ImportTemplatesResponse)
	if err := c.invoke(ctx, RoomService_ImportTemplates_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) SyncToEdgar(ctx context.Context, in *SyncToEdgarRequest, opts ...grpc.CallOption) (*SyncToEdgarResponse, error) {
	out := new(SyncToEdgarResponse)
	if err := c.invoke(ctx, RoomService_SyncToEdgar_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) PullFromEdgar(ctx context.Context, in *PullFromEdgarRequest, opts ...grpc.CallOption) (*PullFromEdgarResponse, error) {
	out := new(PullFromEdgarResponse)
	if err := c.invoke(ctx, RoomService_PullFromEdgar_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) GenerateTemplate(ctx context.Context, in *GenerateTemplateRequest, opts ...grpc.CallOption) (*GenerateTemplateResponse, error) {
	out := new(GenerateTemplateResponse)
	if err := c.invoke(ctx, RoomService_GenerateTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) SaveSnapshot(ctx context.Context, in *SaveSnapshotRequest, opts ...grpc.CallOption) (*SaveSnapshotResponse, error) {
	out := new(SaveSnapshotResponse)
	if err := c.invoke(ctx, RoomService_SaveSnapshot_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) LoadSnapshot(ctx context.Context, in *LoadSnapshotRequest, opts ...grpc.CallOption) (*LoadSnapshotResponse, error) {
	out := new(LoadSnapshotResponse)
	if err := c.invoke(ctx, RoomService_LoadSnapshot_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) ListSnapshots(ctx context.Context, in *ListSnapshotsRequest, opts ...grpc.CallOption) (*ListSnapshotsResponse, error) {
	out := new(ListSnapshotsResponse)
	if err := c.invoke(ctx, RoomService_ListSnapshots_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error) {
	out := new(CreateSessionResponse)
	if err := c.invoke(ctx, RoomService_CreateSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	out := new(GetSessionResponse)
	if err := c.invoke(ctx, RoomService_GetSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error) {
	out := new(ListSessionsResponse)
	if err := c.invoke(ctx, RoomService_ListSessions_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) DeleteSession(ctx context.Context, in *DeleteSessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error) {
	out := new(DeleteSessionResponse)
	if err := c.invoke(ctx, RoomService_DeleteSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) PlaceAssets(ctx context.Context, in *PlaceAssetsRequest, opts ...grpc.CallOption) (*PlaceAssetsResponse, error) {
	out := new(PlaceAssetsResponse)
	if err := c.invoke(ctx, RoomService_PlaceAssets_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) PlaceSingle(ctx context.Context, in *PlaceSingleRequest, opts ...grpc.CallOption) (*PlaceSingleResponse, error) {
	out := new(PlaceSingleResponse)
	if err := c.invoke(ctx, RoomService_PlaceSingle_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) GetPlacements(ctx context.Context, in *GetPlacementsRequest, opts ...grpc.CallOption) (*GetPlacementsResponse, error) {
	out := new(GetPlacementsResponse)
	if err := c.invoke(ctx, RoomService_GetPlacements_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) ClearPlacements(ctx context.Context, in *ClearPlacementsRequest, opts ...grpc.CallOption) (*ClearPlacementsResponse, error) {
	out := new(ClearPlacementsResponse)
	if err := c.invoke(ctx, RoomService_ClearPlacements_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// RoomServiceServer is the server API for RoomService. Implementations
// should embed UnimplementedRoomServiceServer.
type RoomServiceServer interface {
	AddTemplate(context.Context, *AddTemplateRequest) (*AddTemplateResponse, error)
	GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
	UpdateTemplate(context.Context, *UpdateTemplateRequest) (*UpdateTemplateResponse, error)
	RemoveTemplate(context.Context, *RemoveTemplateRequest) (*RemoveTemplateResponse, error)
	ImportTemplates(context.Context, *ImportTemplatesRequest) (*ImportTemplatesResponse, error)
	SyncToEdgar(context.Context, *SyncToEdgarRequest) (*SyncToEdgarResponse, error)
	PullFromEdgar(context.Context, *PullFromEdgarRequest) (*PullFromEdgarResponse, error)
	GenerateTemplate(context.Context, *GenerateTemplateRequest) (*GenerateTemplateResponse, error)
	SaveSnapshot(context.Context, *SaveSnapshotRequest) (*SaveSnapshotResponse, error)
	LoadSnapshot(context.Context, *LoadSnapshotRequest) (*LoadSnapshotResponse, error)
	ListSnapshots(context.Context, *ListSnapshotsRequest) (*ListSnapshotsResponse, error)
	CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error)
	DeleteSession(context.Context, *DeleteSessionRequest) (*DeleteSessionResponse, error)
	PlaceAssets(context.Context, *PlaceAssetsRequest) (*PlaceAssetsResponse, error)
	PlaceSingle(context.Context, *PlaceSingleRequest) (*PlaceSingleResponse, error)
	GetPlacements(context.Context, *GetPlacementsRequest) (*GetPlacementsResponse, error)
	ClearPlacements(context.Context, *ClearPlacementsRequest) (*ClearPlacementsResponse, error)
}

// UnimplementedRoomServiceServer answers every method with Unimplemented
type UnimplementedRoomServiceServer struct{}

func (UnimplementedRoomServiceServer) AddTemplate(context.Context, *AddTemplateRequest) (*AddTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddTemplate not implemented")
}

func (UnimplementedRoomServiceServer) GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTemplate not implemented")
}

func (UnimplementedRoomServiceServer) ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTemplates not implemented")
}

func (UnimplementedRoomServiceServer) UpdateTemplate(context.Context, *UpdateTemplateRequest) (*UpdateTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTemplate not implemented")
}

func (UnimplementedRoomServiceServer) RemoveTemplate(context.Context, *RemoveTemplateRequest) (*RemoveTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveTemplate not implemented")
}

func (UnimplementedRoomServiceServer) ImportTemplates(context.Context, *ImportTemplatesRequest) (*ImportTemplatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportTemplates not implemented")
}

func (UnimplementedRoomServiceServer) SyncToEdgar(context.Context, *SyncToEdgarRequest) (*SyncToEdgarResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncToEdgar not implemented")
}

func (UnimplementedRoomServiceServer) PullFromEdgar(context.Context, *PullFromEdgarRequest) (*PullFromEdgarResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PullFromEdgar not implemented")
}

func (UnimplementedRoomServiceServer) GenerateTemplate(context.Context, *GenerateTemplateRequest) (*GenerateTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateTemplate not implemented")
}

func (UnimplementedRoomServiceServer) SaveSnapshot(context.Context, *SaveSnapshotRequest) (*SaveSnapshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveSnapshot not implemented")
}

func (UnimplementedRoomServiceServer) LoadSnapshot(context.Context, *LoadSnapshotRequest) (*LoadSnapshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadSnapshot not implemented")
}

func (UnimplementedRoomServiceServer) ListSnapshots(context.Context, *ListSnapshotsRequest) (*ListSnapshotsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSnapshots not implemented")
}

func (UnimplementedRoomServiceServer) CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSession not implemented")
}

func (UnimplementedRoomServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSession not implemented")
}

func (UnimplementedRoomServiceServer) ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSessions not implemented")
}

func (UnimplementedRoomServiceServer) DeleteSession(context.Context, *DeleteSessionRequest) (*DeleteSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSession not implemented")
}

func (UnimplementedRoomServiceServer) PlaceAssets(context.Context, *PlaceAssetsRequest) (*PlaceAssetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlaceAssets not implemented")
}

func (UnimplementedRoomServiceServer) PlaceSingle(context.Context, *PlaceSingleRequest) (*PlaceSingleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlaceSingle not implemented")
}

func (UnimplementedRoomServiceServer) GetPlacements(context.Context, *GetPlacementsRequest) (*GetPlacementsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPlacements not implemented")
}

func (UnimplementedRoomServiceServer) ClearPlacements(context.Context, *ClearPlacementsRequest) (*ClearPlacementsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearPlacements not implemented")
}

// RegisterRoomServiceServer registers srv on s
func RegisterRoomServiceServer(s grpc.ServiceRegistrar, srv RoomServiceServer) {
	s.RegisterService(&RoomService_ServiceDesc, srv)
}

func _RoomService_AddTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).AddTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_AddTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).AddTemplate(ctx, req.(*AddTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_GetTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).GetTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_GetTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).GetTemplate(ctx, req.(*GetTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_ListTemplates_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListTemplatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ListTemplates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_ListTemplates_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ListTemplates(ctx, req.(*ListTemplatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_UpdateTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).UpdateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_UpdateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).UpdateTemplate(ctx, req.(*UpdateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_RemoveTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).RemoveTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_RemoveTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).RemoveTemplate(ctx, req.(*RemoveTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_ImportTemplates_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImportTemplatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ImportTemplates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_ImportTemplates_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ImportTemplates(ctx, req.(*ImportTemplatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_SyncToEdgar_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SyncToEdgarRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).SyncToEdgar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_SyncToEdgar_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).SyncToEdgar(ctx, req.(*SyncToEdgarRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_PullFromEdgar_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PullFromEdgarRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).PullFromEdgar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_PullFromEdgar_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).PullFromEdgar(ctx, req.(*PullFromEdgarRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_GenerateTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).GenerateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_GenerateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).GenerateTemplate(ctx, req.(*GenerateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_SaveSnapshot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SaveSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).SaveSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_SaveSnapshot_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).SaveSnapshot(ctx, req.(*SaveSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_LoadSnapshot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).LoadSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_LoadSnapshot_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).LoadSnapshot(ctx, req.(*LoadSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_ListSnapshots_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListSnapshotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ListSnapshots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_ListSnapshots_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ListSnapshots(ctx, req.(*ListSnapshotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_CreateSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_CreateSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).CreateSession(ctx, req.(*CreateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_GetSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).GetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_GetSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).GetSession(ctx, req.(*GetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_ListSessions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListSessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ListSessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_ListSessions_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ListSessions(ctx, req.(*ListSessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_DeleteSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).DeleteSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_DeleteSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).DeleteSession(ctx, req.(*DeleteSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_PlaceAssets_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PlaceAssetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).PlaceAssets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_PlaceAssets_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).PlaceAssets(ctx, req.(*PlaceAssetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_PlaceSingle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PlaceSingleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).PlaceSingle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_PlaceSingle_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).PlaceSingle(ctx, req.(*PlaceSingleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_GetPlacements_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetPlacementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).GetPlacements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_GetPlacements_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).GetPlacements(ctx, req.(*GetPlacementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_ClearPlacements_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ClearPlacementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ClearPlacements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_ClearPlacements_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ClearPlacements(ctx, req.(*ClearPlacementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RoomService_ServiceDesc describes RoomService for grpc.RegisterService
var RoomService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RoomServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddTemplate",
			Handler:    _RoomService_AddTemplate_Handler,
		},
		{
			MethodName: "GetTemplate",
			Handler:    _RoomService_GetTemplate_Handler,
		},
		{
			MethodName: "ListTemplates",
			Handler:    _RoomService_ListTemplates_Handler,
		},
		{
			MethodName: "UpdateTemplate",
			Handler:    _RoomService_UpdateTemplate_Handler,
		},
		{
			MethodName: "RemoveTemplate",
			Handler:    _RoomService_RemoveTemplate_Handler,
		},
		{
			MethodName: "ImportTemplates",
			Handler:    _RoomService_ImportTemplates_Handler,
		},
		{
			MethodName: "SyncToEdgar",
			Handler:    _RoomService_SyncToEdgar_Handler,
		},
		{
			MethodName: "PullFromEdgar",
			Handler:    _RoomService_PullFromEdgar_Handler,
		},
		{
			MethodName: "GenerateTemplate",
			Handler:    _RoomService_GenerateTemplate_Handler,
		},
		{
			MethodName: "SaveSnapshot",
			Handler:    _RoomService_SaveSnapshot_Handler,
		},
		{
			MethodName: "LoadSnapshot",
			Handler:    _RoomService_LoadSnapshot_Handler,
		},
		{
			MethodName: "ListSnapshots",
			Handler:    _RoomService_ListSnapshots_Handler,
		},
		{
			MethodName: "CreateSession",
			Handler:    _RoomService_CreateSession_Handler,
		},
		{
			MethodName: "GetSession",
			Handler:    _RoomService_GetSession_Handler,
		},
		{
			MethodName: "ListSessions",
			Handler:    _RoomService_ListSessions_Handler,
		},
		{
			MethodName: "DeleteSession",
			Handler:    _RoomService_DeleteSession_Handler,
		},
		{
			MethodName: "PlaceAssets",
			Handler:    _RoomService_PlaceAssets_Handler,
		},
		{
			MethodName: "PlaceSingle",
			Handler:    _RoomService_PlaceSingle_Handler,
		},
		{
			MethodName: "GetPlacements",
			Handler:    _RoomService_GetPlacements_Handler,
		},
		{
			MethodName: "ClearPlacements",
			Handler:    _RoomService_ClearPlacements_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
