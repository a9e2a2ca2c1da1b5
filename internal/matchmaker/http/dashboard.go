package http

import (
	"net/http"

	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

type DashboardHandler struct {
	DashboardService DashboardLoader
}

// ServeHTTP handles GET /v1/admin/dashboard
//
//	@Summary		Admin Dashboard
//	@Description	Loads stats, profiles, matches and all four inboxes at once.
//	@Description	A section that fails is left empty and named in failed; the response is still 200.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.DashboardResponse	"dashboard"
//	@Failure		401	{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/admin/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	d, err := h.DashboardService.Load(ctx, callerFrom(r))
	if err != nil {
		writeServiceError(w, log, "failed to load dashboard", err)
		return
	}
	if len(d.Failed) > 0 {
		log.Warn("dashboard partially loaded", "failed", d.Failed)
	}

	httpx.WriteJSON(w, http.StatusOK, toDashboard(d))
}
