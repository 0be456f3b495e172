// Package proto holds the gRPC contract for the external query-generation
// service. The generated code (querygen.pb.go, querygen_grpc.pb.go) is not
// committed; run go generate to produce it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative querygen.proto
