package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

type errorStatus struct {
	code    codes.Code
	message string
}

// errorStatusMap mirrors the HTTP mapping. An empty message means the error
// text itself is returned.
var errorStatusMap = map[error]errorStatus{
	service.ErrUnauthenticated:    {codes.Unauthenticated, app.MsgTokenFailed},
	service.ErrInvalidCredentials: {codes.Unauthenticated, app.MsgInvalidCredentials},
	service.ErrUnauthorized:       {codes.PermissionDenied, app.MsgNotAuthorized},
	service.ErrNotFound:           {codes.NotFound, app.MsgPasswordNotFound},
	service.ErrValidationFailed:   {codes.InvalidArgument, ""},
	service.ErrEmailAlreadyExists: {codes.AlreadyExists, app.MsgUserAlreadyExists},
	service.ErrConflict:           {codes.Aborted, app.MsgConflict},
}

// toStatus converts a service error into a gRPC status error. Errors that
// already carry a status are returned unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for target, st := range errorStatusMap {
		if errors.Is(err, target) {
			if st.message == "" {
				return status.Error(st.code, err.Error())
			}
			return status.Error(st.code, st.message)
		}
	}
	return status.Error(codes.Internal, app.MsgServerError)
}
