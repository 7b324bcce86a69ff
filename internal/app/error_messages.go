// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault server transports and the client adapter.
//
// All Msg* constants are human-readable message strings written into
// response bodies as {"message": ...}. Keeping them in one place keeps the
// wording identical between the HTTP handlers, the gRPC service and the
// client that decodes them.
package app

const (
	// MsgServerRunning is the body of the health check at GET /.
	MsgServerRunning = "Password Manager API Running"

	// MsgTokenFailed is returned for every authentication failure on a
	// protected route: missing header, malformed, forged or expired token.
	MsgTokenFailed = "Not authorized, token failed"

	// MsgNotAuthorized is returned when the caller does not own the record.
	MsgNotAuthorized = "Not authorized"

	// MsgPasswordNotFound is returned when a record id does not exist.
	MsgPasswordNotFound = "Password not found"

	// MsgPasswordDeleted confirms a successful delete.
	MsgPasswordDeleted = "Password deleted"

	// MsgConflict is returned when a record changed between the ownership
	// check and the write.
	MsgConflict = "Password was modified concurrently"

	// MsgUserAlreadyExists is returned by signup for a taken email.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidCredentials is returned by login for an unknown email or a
	// wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgServerError is returned for every unexpected failure.
	MsgServerError = "Server error"

	// MsgRouteNotFound is returned for unknown routes.
	MsgRouteNotFound = "Route not found"
)
