package http

import (
	"errors"
	"net/http"

	"tailorshop/internal/generated/servers"
	"tailorshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// renderError translates a use case error into the HTTP response the
// contract promises. Transition conflicts carry the current and requested
// statuses so clients can refresh their view; concurrency conflicts carry
// a retry marker.
func renderError(ctx echo.Context, err error) error {
	var transitionErr *errs.InvalidTransitionError
	var stateErr *errs.InvalidStateError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &transitionErr):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:            http.StatusConflict,
			Message:         err.Error(),
			CurrentStatus:   &transitionErr.Current,
			RequestedStatus: &transitionErr.Requested,
		})
	case errors.As(err, &stateErr):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:            http.StatusConflict,
			Message:         err.Error(),
			CurrentStatus:   &stateErr.Current,
			RequestedStatus: &stateErr.Attempted,
		})
	case errors.Is(err, errs.ErrConcurrentConflict):
		retry := true
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Retry:   &retry,
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
