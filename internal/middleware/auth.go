package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitrollup/internal/auth"
	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DevOwnerHeader picks the owner when auth is disabled.
	DevOwnerHeader = "X-Owner-ID"
	DevOwner       = "local"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

type ownerResolver interface {
	Owner(ctx context.Context, token string) (string, error)
}

type AuthMiddlewareHandler struct {
	resolver     ownerResolver
	enabled      bool
	allowedPaths map[string]bool
}

// NewAuthMiddlewareHandler resolves session tokens into owners. With enabled set
// to false, the owner is taken from DevOwnerHeader and nothing is checked.
func NewAuthMiddlewareHandler(resolver ownerResolver, enabled bool) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		resolver: resolver,
		enabled:  enabled,
		allowedPaths: map[string]bool{
			"/":        true,
			"/gym/1rm": true,
			// login-logout:
			"/a/login":  true,
			"/a/logout": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if !h.enabled {
				owner := r.Header.Get(DevOwnerHeader)
				if owner == "" {
					owner = DevOwner
				}
				span.SetStatus(codes.Ok, "auth-disabled")
				next.ServeHTTP(w, r.WithContext(feature.WithOwner(r.Context(), owner)))
				return
			}

			authToken := r.Header.Get(auth.TokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			owner, err := h.resolver.Owner(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrNotLogged) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(feature.WithOwner(r.Context(), owner)))
		})
	}
}
