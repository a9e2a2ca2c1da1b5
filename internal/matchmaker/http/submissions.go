package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/matchsdk"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

// Inbox path segments under /v1/admin.
const (
	InboxWaitlist     = "waitlist"
	InboxTeamRequests = "team-requests"
	InboxReviews      = "reviews"
	InboxContact      = "contact"
)

// SubmissionsHandler handles the public forms and their admin inboxes.
type SubmissionsHandler struct {
	SubmissionService SubmissionManager
}

// HandleJoinWaitlist handles POST /v1/waitlist
//
//	@Summary		Join Waitlist
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		matchsdk.WaitlistRequest	true	"Signup"
//	@Success		201		{object}	matchsdk.WaitlistEntry		"stored entry"
//	@Failure		400		{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Failure		429		{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/waitlist [post].
func (h *SubmissionsHandler) HandleJoinWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.WaitlistRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	s, err := h.SubmissionService.SubmitWaitlist(ctx, fromWaitlistRequest(req))
	if err != nil {
		writeServiceError(w, log, "failed to store waitlist entry", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWaitlistEntry(s))
}

// HandleRequestTeam handles POST /v1/team-requests
//
//	@Summary		Request Team Member
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		matchsdk.TeamRequestForm	true	"Team request"
//	@Success		201		{object}	matchsdk.TeamRequest		"stored request"
//	@Failure		400		{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Failure		429		{object}	matchsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/team-requests [post].
func (h *SubmissionsHandler) HandleRequestTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.TeamRequestForm
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	s, err := h.SubmissionService.SubmitTeamRequest(ctx, fromTeamRequestForm(req))
	if err != nil {
		writeServiceError(w, log, "failed to store team request", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTeamRequest(s))
}

// HandleSubmitReview handles POST /v1/reviews
//
//	@Summary		Submit Review
//	@Description	Stores a testimonial as pending. It is not public until an admin approves it.
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		matchsdk.ReviewRequest	true	"Review"
//	@Success		201		{object}	matchsdk.Review			"stored review"
//	@Failure		400		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/reviews [post].
func (h *SubmissionsHandler) HandleSubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.ReviewRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	s, err := h.SubmissionService.SubmitReview(ctx, fromReviewRequest(req))
	if err != nil {
		writeServiceError(w, log, "failed to store review", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toReview(s))
}

// HandleSendContact handles POST /v1/contact
//
//	@Summary		Contact Us
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		matchsdk.ContactRequest	true	"Enquiry"
//	@Success		201		{object}	matchsdk.ContactMessage	"stored message"
//	@Failure		400		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/contact [post].
func (h *SubmissionsHandler) HandleSendContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.ContactRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	s, err := h.SubmissionService.SubmitContact(ctx, fromContactRequest(req))
	if err != nil {
		writeServiceError(w, log, "failed to store contact message", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toContact(s))
}

// HandleApprovedReviews handles GET /v1/reviews
//
//	@Summary		Public Reviews
//	@Description	The ten newest approved reviews.
//	@Tags			Submissions
//	@Produce		json
//	@Success		200	{object}	matchsdk.ListReviewsResponse	"reviews"
//	@Router			/v1/reviews [get].
func (h *SubmissionsHandler) HandleApprovedReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	reviews, err := h.SubmissionService.ListApprovedReviews(ctx)
	if err != nil {
		writeServiceError(w, log, "failed to list approved reviews", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListReviewsResponse{Reviews: mapSlice(reviews, toReview)})
}

// HandleListWaitlist handles GET /v1/admin/waitlist
//
//	@Summary		Waitlist Inbox
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.ListWaitlistResponse	"entries, newest first"
//	@Failure		403	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/admin/waitlist [get].
func (h *SubmissionsHandler) HandleListWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.SubmissionService.ListWaitlist(ctx, callerFrom(r))
	if err != nil {
		writeServiceError(w, log, "failed to list waitlist", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListWaitlistResponse{Entries: mapSlice(entries, toWaitlistEntry)})
}

// HandleListTeamRequests handles GET /v1/admin/team-requests
//
//	@Summary		Team Request Inbox
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.ListTeamRequestsResponse	"requests, newest first"
//	@Failure		403	{object}	matchsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/admin/team-requests [get].
func (h *SubmissionsHandler) HandleListTeamRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	reqs, err := h.SubmissionService.ListTeamRequests(ctx, callerFrom(r))
	if err != nil {
		writeServiceError(w, log, "failed to list team requests", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListTeamRequestsResponse{Requests: mapSlice(reqs, toTeamRequest)})
}

// HandleListReviews handles GET /v1/admin/reviews
//
//	@Summary		Review Inbox
//	@Description	All reviews including pending ones.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.ListReviewsResponse	"reviews, newest first"
//	@Failure		403	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/admin/reviews [get].
func (h *SubmissionsHandler) HandleListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	reviews, err := h.SubmissionService.ListReviews(ctx, callerFrom(r))
	if err != nil {
		writeServiceError(w, log, "failed to list reviews", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListReviewsResponse{Reviews: mapSlice(reviews, toReview)})
}

// HandleListContacts handles GET /v1/admin/contact
//
//	@Summary		Contact Inbox
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	matchsdk.ListContactsResponse	"messages, newest first"
//	@Failure		403	{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/admin/contact [get].
func (h *SubmissionsHandler) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	msgs, err := h.SubmissionService.ListContacts(ctx, callerFrom(r))
	if err != nil {
		writeServiceError(w, log, "failed to list contact messages", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, matchsdk.ListContactsResponse{Messages: mapSlice(msgs, toContact)})
}

// HandleSetReviewStatus handles PATCH /v1/admin/reviews/{id}/status
//
//	@Summary		Moderate Review
//	@Description	Approves a review ("approved") or takes it off the public list ("pending").
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Review id"
//	@Param			request	body		matchsdk.UpdateStatusRequest	true	"Target status"
//	@Success		200		{object}	matchsdk.Review					"updated review"
//	@Failure		400		{object}	matchsdk.ErrorResponse			"unknown status"
//	@Failure		404		{object}	matchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/admin/reviews/{id}/status [patch].
func (h *SubmissionsHandler) HandleSetReviewStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req matchsdk.UpdateStatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rv, err := h.SubmissionService.SetReviewStatus(ctx, callerFrom(r), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, log, "failed to set review status", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toReview(rv))
}

// HandleDelete handles DELETE /v1/admin/{inbox}/{id}
//
//	@Summary		Delete Inbox Item
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			inbox	path	string	true	"waitlist, team-requests, reviews or contact"
//	@Param			id		path	string	true	"Submission id"
//	@Success		204		"deleted"
//	@Failure		403		{object}	matchsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	matchsdk.ErrorResponse	"unknown inbox or id"
//	@Router			/v1/admin/{inbox}/{id} [delete].
func (h *SubmissionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var del func(context.Context, domain.Identity, string) error
	switch inbox := r.PathValue("inbox"); inbox {
	case InboxWaitlist:
		del = h.SubmissionService.DeleteWaitlist
	case InboxTeamRequests:
		del = h.SubmissionService.DeleteTeamRequest
	case InboxReviews:
		del = h.SubmissionService.DeleteReview
	case InboxContact:
		del = h.SubmissionService.DeleteContact
	default:
		httpx.WriteJSON(w, http.StatusNotFound, matchsdk.ErrorResponse{
			Error:            matchsdk.ErrorCodeNotFound,
			ErrorDescription: "unknown inbox " + inbox,
		})
		return
	}

	id := r.PathValue("id")
	if err := del(ctx, callerFrom(r), id); err != nil {
		writeServiceError(w, log, "failed to delete submission", err)
		return
	}

	log.Info("submission deleted", "inbox", r.PathValue("inbox"), "submission_id", id)
	w.WriteHeader(http.StatusNoContent)
}
