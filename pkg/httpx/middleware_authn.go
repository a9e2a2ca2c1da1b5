package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/cofound/pkg/jwtx"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer token and injects its claims.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "error", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.With(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthn injects claims when a valid bearer token is present and
// otherwise lets the request through unauthenticated. A bad token is not an
// error here; public pages must keep rendering when a session has expired.
func OptionalAuthn(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			claims, err := v.Verify(raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("optional jwt ignored", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.With(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	return raw, raw != ""
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
