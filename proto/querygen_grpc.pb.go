// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: querygen.proto

package proto

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
	QueryGenService_GenerateQueries_FullMethodName = "/querygen.v1.QueryGenService/GenerateQueries"
)

// QueryGenServiceClient is the client API for QueryGenService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QueryGenService is the external (LLM-backed) query generation service.
type QueryGenServiceClient interface {
	GenerateQueries(ctx context.Context, in *GenerateQueriesRequest, opts ...grpc.CallOption) (*GenerateQueriesResponse, error)
}

type queryGenServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueryGenServiceClient(cc grpc.ClientConnInterface) QueryGenServiceClient {
	return &queryGenServiceClient{cc}
}

func (c *queryGenServiceClient) GenerateQueries(ctx context.Context, in *GenerateQueriesRequest, opts ...grpc.CallOption) (*GenerateQueriesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateQueriesResponse)
	err := c.cc.Invoke(ctx, QueryGenService_GenerateQueries_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryGenServiceServer is the server API for QueryGenService service.
// All implementations must embed UnimplementedQueryGenServiceServer
// for forward compatibility.
//
// QueryGenService is the external (LLM-backed) query generation service.
type QueryGenServiceServer interface {
	GenerateQueries(context.Context, *GenerateQueriesRequest) (*GenerateQueriesResponse, error)
	mustEmbedUnimplementedQueryGenServiceServer()
}

// UnimplementedQueryGenServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueryGenServiceServer struct{}

func (UnimplementedQueryGenServiceServer) GenerateQueries(context.Context, *GenerateQueriesRequest) (*GenerateQueriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateQueries not implemented")
}
func (UnimplementedQueryGenServiceServer) mustEmbedUnimplementedQueryGenServiceServer() {}
func (UnimplementedQueryGenServiceServer) testEmbeddedByValue()                         {}

// UnsafeQueryGenServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueryGenServiceServer will
// result in compilation errors.
type UnsafeQueryGenServiceServer interface {
	mustEmbedUnimplementedQueryGenServiceServer()
}

func RegisterQueryGenServiceServer(s grpc.ServiceRegistrar, srv QueryGenServiceServer) {
	// If the following call panics, it indicates UnimplementedQueryGenServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueryGenService_ServiceDesc, srv)
}

func _QueryGenService_GenerateQueries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateQueriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryGenServiceServer).GenerateQueries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryGenService_GenerateQueries_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryGenServiceServer).GenerateQueries(ctx, req.(*GenerateQueriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueryGenService_ServiceDesc is the grpc.ServiceDesc for QueryGenService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueryGenService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "querygen.v1.QueryGenService",
	HandlerType: (*QueryGenServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateQueries",
			Handler:    _QueryGenService_GenerateQueries_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "querygen.proto",
}
