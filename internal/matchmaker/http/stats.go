package http

import (
	"net/http"

	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

// StatsHandler serves the landing page counters.
type StatsHandler struct {
	StatsService StatsComputer
}

// ServeHTTP handles GET /v1/stats
//
//	@Summary		Platform Counters
//	@Description	Returns profile, match and connected counts. Counts that cannot be read are reported as 0 and named in degraded.
//	@Description	The team request count is only filled in for callers with an admin scope.
//	@Tags			Stats
//	@Produce		json
//	@Param			Authorization	header		string					false	"Optional bearer token"
//	@Success		200				{object}	matchsdk.StatsResponse	"counters"
//	@Failure		500				{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stats, err := h.StatsService.Compute(ctx, callerFrom(r))
	if err != nil {
		writeServiceError(w, log, "failed to compute stats", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toStats(stats))
}
