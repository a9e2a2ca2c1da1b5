package httpx

import (
	"context"

	"github.com/aussiebroadwan/cofound/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyScopes ctxKey = "scopes"
	CtxKeyClaims ctxKey = "claims"
)

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyScopes, c.Scopes)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// ClaimsFromContext returns the verified claims placed by the authn
// middleware. ok is false for unauthenticated requests.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// UserIDFromContext returns the authenticated subject or "".
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
