package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/xcontext"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func writeResponse(ctx context.Context) {
	w := xcontext.HTTPWriter(ctx)
	w.Header().Set("Content-Type", "application/json")

	if err := xcontext.Error(ctx); err != nil {
		var errx errorx.Error
		if !errors.As(err, &errx) {
			errx = errorx.Unknown
		}

		w.WriteHeader(httpStatus(errx.Code))
		writeJSON(ctx, w, response{Code: int64(errx.Code), Error: errx.Message})
		return
	}

	writeJSON(ctx, w, response{Code: 0, Data: xcontext.Response(ctx)})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, resp response) {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.TooManyRequests:
		return http.StatusTooManyRequests
	case errorx.Internal, errorx.Unknown.Code:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
