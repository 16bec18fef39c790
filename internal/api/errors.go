// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/logging"
)

// ParamError reports a query or path parameter that could not be parsed.
type ParamError struct {
	Param   string
	Message string
}

func (e *ParamError) Error() string {
	return e.Message
}

// fieldDetails is the error.details payload for validation failures.
type fieldDetails struct {
	Field string `json:"field"`
}

// writeError maps a handler error onto the response envelope.
//
// Repository errors carry only the operation message to the client; the
// underlying store error is logged here with the request ID.
func (h *Handler) writeError(rw *ResponseWriter, r *http.Request, err error) {
	var (
		paramErr *ParamError
		valErr   *discovery.ValidationError
		repoErr  *discovery.RepositoryError
	)

	switch {
	case errors.As(err, &paramErr):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeBadRequest, paramErr.Message, fieldDetails{Field: paramErr.Param})
	case errors.As(err, &valErr):
		rw.ValidationError(valErr.Message, fieldDetails{Field: valErr.Field})
	case errors.As(err, &repoErr):
		logging.Ctx(r.Context()).Error().
			Err(repoErr.Cause()).
			Str("path", r.URL.Path).
			Msg(repoErr.Error())
		rw.ServiceUnavailable(repoErr.Error())
	case errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusGatewayTimeout, ErrCodeTimeout, "Request timed out")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful can be written.
		h.logger.Debug().Str("path", r.URL.Path).Msg("Request canceled by client")
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Unhandled handler error")
		rw.InternalError("Internal server error")
	}
}
