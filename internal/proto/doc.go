// Package proto holds the AuthorityService gRPC contract shared by the
// scanner and the authority. Everything but this file is generated from
// authority.proto.
package proto

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/authority.proto
