package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the browser front end to call the API. An empty list or "*"
// allows any origin, in which case credentials are not allowed either.
func CORS(allowedOrigins []string) Middleware {
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: !allowAll,
		MaxAge:           600,
	})
	return c.Handler
}
