package http

import (
	"net/http"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/matchsdk"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

// ProfilesHandler handles profile submission and the admin profile list.
type ProfilesHandler struct {
	ProfileService ProfileManager
}

// HandlePutMine handles PUT /v1/profiles/me
//
//	@Summary		Submit Own Profile
//	@Description	Creates or replaces the caller's profile. The id is the token subject; email falls back to the token's email claim.
//	@Description	Existing matches keep the snapshot taken when they were created.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		matchsdk.ProfileRequest	true	"Profile form"
//	@Success		200		{object}	matchsdk.Profile		"saved profile"
//	@Failure		400		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Failure		503		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/profiles/me [put].
func (h *ProfilesHandler) HandlePutMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.ProfileRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	p, err := h.ProfileService.Submit(ctx, callerFrom(r), fromProfileRequest(req))
	if err != nil {
		writeServiceError(w, log, "failed to submit profile", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(p))
}

// HandleGetMine handles GET /v1/profiles/me
//
//	@Summary		Get Own Profile
//	@Tags			Profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.Profile		"profile"
//	@Failure		401	{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	matchsdk.ErrorResponse	"no profile submitted yet"
//	@Router			/v1/profiles/me [get].
func (h *ProfilesHandler) HandleGetMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller := callerFrom(r)
	p, err := h.ProfileService.Get(ctx, caller, caller.ID)
	if err != nil {
		writeServiceError(w, log, "failed to get profile", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(p))
}

// HandleList handles GET /v1/profiles
//
//	@Summary		List Profiles
//	@Description	Admin list of all profiles, newest first, with optional filters.
//	@Tags			Profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q			query		string							false	"Case-insensitive search over name, bio and skills"
//	@Param			role		query		string							false	"Founder, Developer, Designer or Other"
//	@Param			commitment	query		string							false	"Commitment level"
//	@Success		200			{object}	matchsdk.ListProfilesResponse	"profiles"
//	@Failure		401			{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Failure		403			{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/profiles [get].
func (h *ProfilesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	filter := domain.ProfileFilter{
		Search:     q.Get("q"),
		Role:       domain.Role(q.Get("role")),
		Commitment: domain.Commitment(q.Get("commitment")),
	}

	profiles, err := h.ProfileService.List(ctx, callerFrom(r), filter)
	if err != nil {
		writeServiceError(w, log, "failed to list profiles", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListProfilesResponse{
		Profiles: mapSlice(profiles, toProfile),
	})
}

// HandleDelete handles DELETE /v1/profiles/{id}
//
//	@Summary		Delete Profile
//	@Description	Removes a profile. Matches that reference it keep their snapshot.
//	@Tags			Profiles
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Profile id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/profiles/{id} [delete].
func (h *ProfilesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if err := h.ProfileService.Delete(ctx, callerFrom(r), id); err != nil {
		writeServiceError(w, log, "failed to delete profile", err)
		return
	}

	log.Info("profile deleted", "profile_id", id)
	w.WriteHeader(http.StatusNoContent)
}
