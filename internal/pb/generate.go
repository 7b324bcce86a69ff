// Package pb holds the protobuf messages and gRPC bindings of the vault
// service, generated from vault.proto.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative vault.proto
