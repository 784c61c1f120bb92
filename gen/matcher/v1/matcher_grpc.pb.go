// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: matcher/v1/matcher.proto

package matcherv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MatcherService_IngestJob_FullMethodName           = "/matcher.v1.MatcherService/IngestJob"
	MatcherService_IngestCandidate_FullMethodName     = "/matcher.v1.MatcherService/IngestCandidate"
	MatcherService_RunMatching_FullMethodName         = "/matcher.v1.MatcherService/RunMatching"
	MatcherService_ListMatches_FullMethodName         = "/matcher.v1.MatcherService/ListMatches"
	MatcherService_ResolveOrganization_FullMethodName = "/matcher.v1.MatcherService/ResolveOrganization"
)

// MatcherServiceClient is the client API for MatcherService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MatcherServiceClient interface {
	// IngestJob validates, canonicalizes and upserts a job posting.
	IngestJob(ctx context.Context, in *IngestJobRequest, opts ...grpc.CallOption) (*IngestJobResponse, error)
	// IngestCandidate validates, canonicalizes and stores a consultant profile.
	IngestCandidate(ctx context.Context, in *IngestCandidateRequest, opts ...grpc.CallOption) (*IngestCandidateResponse, error)
	// RunMatching scores jobs against the active candidate pool and stores
	// every pair at or above the threshold.
	RunMatching(ctx context.Context, in *RunMatchingRequest, opts ...grpc.CallOption) (*RunMatchingResponse, error)
	// ListMatches returns stored matches ranked by score.
	ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error)
	// ResolveOrganization maps a raw organization name to its canonical record.
	ResolveOrganization(ctx context.Context, in *ResolveOrganizationRequest, opts ...grpc.CallOption) (*ResolveOrganizationResponse, error)
}

type matcherServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMatcherServiceClient(cc grpc.ClientConnInterface) MatcherServiceClient {
	return &matcherServiceClient{cc}
}

func (c *matcherServiceClient) IngestJob(ctx context.Context, in *IngestJobRequest, opts ...grpc.CallOption) (*IngestJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestJobResponse)
	err := c.cc.Invoke(ctx, MatcherService_IngestJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matcherServiceClient) IngestCandidate(ctx context.Context, in *IngestCandidateRequest, opts ...grpc.CallOption) (*IngestCandidateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestCandidateResponse)
	err := c.cc.Invoke(ctx, MatcherService_IngestCandidate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matcherServiceClient) RunMatching(ctx context.Context, in *RunMatchingRequest, opts ...grpc.CallOption) (*RunMatchingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunMatchingResponse)
	err := c.cc.Invoke(ctx, MatcherService_RunMatching_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matcherServiceClient) ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMatchesResponse)
	err := c.cc.Invoke(ctx, MatcherService_ListMatches_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matcherServiceClient) ResolveOrganization(ctx context.Context, in *ResolveOrganizationRequest, opts ...grpc.CallOption) (*ResolveOrganizationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveOrganizationResponse)
	err := c.cc.Invoke(ctx, MatcherService_ResolveOrganization_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MatcherServiceServer is the server API for MatcherService service.
// All implementations must embed UnimplementedMatcherServiceServer
// for forward compatibility.
type MatcherServiceServer interface {
	// IngestJob validates, canonicalizes and upserts a job posting.
	IngestJob(context.Context, *IngestJobRequest) (*IngestJobResponse, error)
	// IngestCandidate validates, canonicalizes and stores a consultant profile.
	IngestCandidate(context.Context, *IngestCandidateRequest) (*IngestCandidateResponse, error)
	// RunMatching scores jobs against the active candidate pool and stores
	// every pair at or above the threshold.
	RunMatching(context.Context, *RunMatchingRequest) (*RunMatchingResponse, error)
	// ListMatches returns stored matches ranked by score.
	ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error)
	// ResolveOrganization maps a raw organization name to its canonical record.
	ResolveOrganization(context.Context, *ResolveOrganizationRequest) (*ResolveOrganizationResponse, error)
	mustEmbedUnimplementedMatcherServiceServer()
}

// UnimplementedMatcherServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMatcherServiceServer struct{}

func (UnimplementedMatcherServiceServer) IngestJob(context.Context, *IngestJobRequest) (*IngestJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestJob not implemented")
}
func (UnimplementedMatcherServiceServer) IngestCandidate(context.Context, *IngestCandidateRequest) (*IngestCandidateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestCandidate not implemented")
}
func (UnimplementedMatcherServiceServer) RunMatching(context.Context, *RunMatchingRequest) (*RunMatchingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunMatching not implemented")
}
func (UnimplementedMatcherServiceServer) ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMatches not implemented")
}
func (UnimplementedMatcherServiceServer) ResolveOrganization(context.Context, *ResolveOrganizationRequest) (*ResolveOrganizationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveOrganization not implemented")
}
func (UnimplementedMatcherServiceServer) mustEmbedUnimplementedMatcherServiceServer() {}
func (UnimplementedMatcherServiceServer) testEmbeddedByValue()                        {}

// UnsafeMatcherServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MatcherServiceServer will
// result in compilation errors.
type UnsafeMatcherServiceServer interface {
	mustEmbedUnimplementedMatcherServiceServer()
}

func RegisterMatcherServiceServer(s grpc.ServiceRegistrar, srv MatcherServiceServer) {
	// If the following call pancis, it indicates UnimplementedMatcherServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MatcherService_ServiceDesc, srv)
}

func _MatcherService_IngestJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatcherServiceServer).IngestJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatcherService_IngestJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatcherServiceServer).IngestJob(ctx, req.(*IngestJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatcherService_IngestCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatcherServiceServer).IngestCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatcherService_IngestCandidate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatcherServiceServer).IngestCandidate(ctx, req.(*IngestCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatcherService_RunMatching_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunMatchingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatcherServiceServer).RunMatching(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatcherService_RunMatching_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatcherServiceServer).RunMatching(ctx, req.(*RunMatchingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatcherService_ListMatches_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatcherServiceServer).ListMatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatcherService_ListMatches_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatcherServiceServer).ListMatches(ctx, req.(*ListMatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatcherService_ResolveOrganization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveOrganizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatcherServiceServer).ResolveOrganization(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatcherService_ResolveOrganization_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatcherServiceServer).ResolveOrganization(ctx, req.(*ResolveOrganizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MatcherService_ServiceDesc is the grpc.ServiceDesc for MatcherService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MatcherService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "matcher.v1.MatcherService",
	HandlerType: (*MatcherServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestJob",
			Handler:    _MatcherService_IngestJob_Handler,
		},
		{
			MethodName: "IngestCandidate",
			Handler:    _MatcherService_IngestCandidate_Handler,
		},
		{
			MethodName: "RunMatching",
			Handler:    _MatcherService_RunMatching_Handler,
		},
		{
			MethodName: "ListMatches",
			Handler:    _MatcherService_ListMatches_Handler,
		},
		{
			MethodName: "ResolveOrganization",
			Handler:    _MatcherService_ResolveOrganization_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "matcher/v1/matcher.proto",
}
