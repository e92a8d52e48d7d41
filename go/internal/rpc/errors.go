package rpc

import (
	"context"
	"database/sql"
	"errors"

	"connectrpc.com/connect"
)

// ErrorCode pairs a package sentinel with the connect code it surfaces as.
type ErrorCode struct {
	Err  error
	Code connect.Code
}

// Map is shorthand for building an ErrorCode.
func Map(err error, code connect.Code) ErrorCode {
	return ErrorCode{Err: err, Code: code}
}

// ToConnectError converts an app error into a connect error. Mappings are
// checked in order; sql.ErrNoRows is NotFound and anything else is Internal.
func ToConnectError(err error, mappings ...ErrorCode) error {
	if err == nil {
		return nil
	}
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return err
	}
	for _, m := range mappings {
		if errors.Is(err, m.Err) {
			return connect.NewError(m.Code, err)
		}
	}
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// InvalidArgument wraps a request decoding problem.
func InvalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}
