package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/agencydesk/internal/state"
)

// toConnectError maps state errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, state.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, state.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
