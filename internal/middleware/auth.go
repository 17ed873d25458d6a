package middleware

import (
	"context"
	"strings"

	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/router"
	"github.com/taskhive/backend/pkg/xcontext"
)

// WithAuthentication resolves the access token from the Authorization header
// or the token cookie if present. It never fails; endpoints that require an
// identity add NeedAuthentication on top.
func WithAuthentication() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := ""
		if authorization := xcontext.HTTPRequest(ctx).Header.Get("Authorization"); authorization != "" {
			token = strings.TrimPrefix(authorization, "Bearer ")
		} else {
			cookie, err := xcontext.HTTPRequest(ctx).Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
			if err == nil {
				token = cookie.Value
			}
		}

		if token == "" {
			return nil, nil
		}

		var accessToken model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &accessToken); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, nil
		}

		ctx = xcontext.WithRequestUserID(ctx, accessToken.ID)
		return xcontext.WithRequestRole(ctx, accessToken.Role), nil
	}
}

func NeedAuthentication() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return nil, nil
	}
}
