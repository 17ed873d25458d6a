package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/cors"
	"github.com/taskhive/backend/config"
	"github.com/taskhive/backend/pkg/authenticator"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/logger"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// HandlerFunc is the signature of every endpoint. The request is bound from
// the query string (GET) or the JSON body (POST) before the handler runs.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can derive a new context; a nil
// returned context keeps the current one. A returned error aborts the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is determined, successful or not.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	cfg          config.Configs
	log          logger.Logger
	db           *gorm.DB
	tokenEngine  authenticator.TokenEngine
	sessionStore sessions.Store

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers *[]CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, log logger.Logger) *Router {
	return &Router{
		mux:          http.NewServeMux(),
		cfg:          cfg,
		log:          log,
		db:           db,
		tokenEngine:  authenticator.NewTokenEngine(cfg.Auth.TokenSecret),
		sessionStore: sessions.NewCookieStore([]byte(cfg.Session.Secret)),
		closers:      &[]CloserFunc{},
	}
}

// Branch returns a router sharing the same mux and closers but with an
// independent middleware chain.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	return &clone
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) After(m MiddlewareFunc) {
	r.afters = append(r.afters, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	*r.closers = append(*r.closers, c)
}

func (r *Router) Handler() http.Handler {
	return cors.AllowAll().Handler(r.mux)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	handle(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	handle(r, http.MethodPost, pattern, handler)
}

func handle[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	befores := append([]MiddlewareFunc{}, r.befores...)
	afters := append([]MiddlewareFunc{}, r.afters...)

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := r.newRequestContext(req, w)

		ctx = func(ctx context.Context) context.Context {
			if req.Method != method {
				return xcontext.WithError(ctx,
					errorx.New(errorx.BadRequest, "Not supported method %s", req.Method))
			}

			for _, m := range befores {
				newCtx, err := m(ctx)
				if err != nil {
					return xcontext.WithError(ctx, err)
				}
				if newCtx != nil {
					ctx = newCtx
				}
			}

			request := new(Request)
			var err error
			switch method {
			case http.MethodGet:
				err = bindQuery(req, request)
			case http.MethodPost:
				err = bindBody(req, request)
			}
			if err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				return xcontext.WithError(ctx,
					errorx.New(errorx.BadRequest, "Cannot bind the request"))
			}

			resp, err := handler(ctx, request)
			if err != nil {
				return xcontext.WithError(ctx, err)
			}
			ctx = xcontext.WithResponse(ctx, resp)

			for _, m := range afters {
				newCtx, err := m(ctx)
				if err != nil {
					return xcontext.WithError(ctx, err)
				}
				if newCtx != nil {
					ctx = newCtx
				}
			}

			return ctx
		}(ctx)

		writeResponse(ctx)
		for _, closer := range *r.closers {
			closer(ctx)
		}
	})
}

func (r *Router) newRequestContext(req *http.Request, w http.ResponseWriter) context.Context {
	ctx := req.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.log)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
	ctx = xcontext.WithSessionStore(ctx, r.sessionStore)
	ctx = xcontext.WithHTTPRequest(ctx, req)
	ctx = xcontext.WithHTTPWriter(ctx, w)
	return ctx
}

func bindBody(req *http.Request, obj any) error {
	if req.Body == nil {
		return nil
	}

	return json.NewDecoder(req.Body).Decode(obj)
}

func bindQuery(req *http.Request, obj any) error {
	values := map[string]string{}
	for key, value := range req.URL.Query() {
		if len(value) > 0 {
			values[key] = value[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           obj,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
