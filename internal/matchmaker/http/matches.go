package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/matchsdk"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

// MatchesHandler handles match curation and the member match lists.
type MatchesHandler struct {
	MatchService MatchManager
}

// HandleMine handles GET /v1/matches/me
//
//	@Summary		My Matches
//	@Description	Matches the caller takes part in, newest first, seen from the caller's side.
//	@Description	The partner's email and phone are only present once the match has been introduced.
//	@Tags			Matches
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.ListMatchViewsResponse	"matches"
//	@Failure		401	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Failure		503	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/matches/me [get].
func (h *MatchesHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	h.listForUser(w, r, caller.ID)
}

// HandleForUser handles GET /v1/users/{id}/matches
//
//	@Summary		Matches For Identity
//	@Description	Members may only request their own id; admins may request any id.
//	@Tags			Matches
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Identity id"
//	@Success		200	{object}	matchsdk.ListMatchViewsResponse	"matches"
//	@Failure		400	{object}	matchsdk.ErrorResponse			"id does not match the caller"
//	@Failure		401	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Failure		503	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/users/{id}/matches [get].
func (h *MatchesHandler) HandleForUser(w http.ResponseWriter, r *http.Request) {
	h.listForUser(w, r, r.PathValue("id"))
}

func (h *MatchesHandler) listForUser(w http.ResponseWriter, r *http.Request, identityID string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ms, err := h.MatchService.ListForUser(ctx, callerFrom(r), identityID)
	if err != nil {
		writeServiceError(w, log, "failed to list user matches", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListMatchViewsResponse{
		Matches: toMatchViews(strings.TrimSpace(identityID), ms),
	})
}

// HandleCreate handles POST /v1/matches
//
//	@Summary		Create Match
//	@Description	Pairs two existing profiles. Both profiles' name, role, email and phone are copied into the match at this moment.
//	@Tags			Matches
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		matchsdk.CreateMatchRequest	true	"The two profile ids"
//	@Success		201		{object}	matchsdk.Match				"pending match"
//	@Failure		400		{object}	matchsdk.ErrorResponse		"same profile twice, or a profile is incomplete"
//	@Failure		403		{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	matchsdk.ErrorResponse		"a profile does not exist"
//	@Router			/v1/matches [post].
func (h *MatchesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.CreateMatchRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	m, err := h.MatchService.CreateMatch(ctx, callerFrom(r), req.ProfileA, req.ProfileB, req.Notes)
	if err != nil {
		writeServiceError(w, log, "failed to create match", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMatch(m))
}

// HandleList handles GET /v1/matches
//
//	@Summary		List All Matches
//	@Tags			Matches
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.ListMatchesResponse	"matches, newest first"
//	@Failure		403	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/matches [get].
func (h *MatchesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ms, err := h.MatchService.ListAll(ctx, callerFrom(r))
	if err != nil {
		writeServiceError(w, log, "failed to list matches", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListMatchesResponse{Matches: mapSlice(ms, toMatch)})
}

// HandleUpdateStatus handles PATCH /v1/matches/{id}/status
//
//	@Summary		Advance Match Status
//	@Description	Moves a match exactly one step along pending, introduced, connected.
//	@Tags			Matches
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Match id"
//	@Param			request	body		matchsdk.UpdateStatusRequest	true	"Target status"
//	@Success		200		{object}	matchsdk.Match					"updated match"
//	@Failure		400		{object}	matchsdk.ErrorResponse			"unknown status"
//	@Failure		404		{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	matchsdk.ErrorResponse			"not a forward step"
//	@Router			/v1/matches/{id}/status [patch].
func (h *MatchesHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.UpdateStatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	m, err := h.MatchService.UpdateStatus(ctx, callerFrom(r), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, log, "failed to update match status", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMatch(m))
}

// HandleUpdateNotes handles PATCH /v1/matches/{id}/notes
//
//	@Summary		Edit Match Notes
//	@Tags			Matches
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Match id"
//	@Param			request	body		matchsdk.UpdateNotesRequest	true	"New notes"
//	@Success		200		{object}	matchsdk.Match				"updated match"
//	@Failure		404		{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/matches/{id}/notes [patch].
func (h *MatchesHandler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.UpdateNotesRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	m, err := h.MatchService.UpdateNotes(ctx, callerFrom(r), r.PathValue("id"), req.Notes)
	if err != nil {
		writeServiceError(w, log, "failed to update match notes", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMatch(m))
}

// HandleDelete handles DELETE /v1/matches/{id}
//
//	@Summary		Delete Match
//	@Tags			Matches
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Match id"
//	@Success		204	"deleted"
//	@Failure		404	{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/matches/{id} [delete].
func (h *MatchesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.MatchService.DeleteMatch(ctx, callerFrom(r), r.PathValue("id")); err != nil {
		writeServiceError(w, log, "failed to delete match", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
