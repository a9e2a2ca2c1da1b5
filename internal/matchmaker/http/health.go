package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/jwtx"
	"github.com/aussiebroadwan/cofound/pkg/matchsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Always returns 200 OK while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	matchsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, matchsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Checks store connectivity and that token verification keys are loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	matchsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	matchsdk.HealthResponse	"degraded"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st Pinger, keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &matchsdk.HealthChecks{Store: "ok", Keys: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if !keys.IsReady() {
			checks.Keys = "error: no keys loaded"
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, matchsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
