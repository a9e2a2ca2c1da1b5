package http

import (
	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/service"
	"github.com/aussiebroadwan/cofound/pkg/matchsdk"
)

// Conversions between domain values and wire types. Slices are never nil on
// the wire so clients always see [] rather than null.

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func toStats(s domain.Stats) matchsdk.StatsResponse {
	return matchsdk.StatsResponse{
		ProfileCount:     s.ProfileCount,
		MatchCount:       s.MatchCount,
		ConnectedCount:   s.ConnectedCount,
		TeamRequestCount: s.TeamRequestCount,
		Degraded:         s.Degraded,
	}
}

func fromProfileRequest(req matchsdk.ProfileRequest) domain.Profile {
	return domain.Profile{
		Name:       req.Name,
		Location:   req.Location,
		Email:      req.Email,
		Phone:      req.Phone,
		LinkedIn:   req.LinkedIn,
		Role:       domain.Role(req.Role),
		Experience: domain.Experience(req.Experience),
		Skills:     req.Skills,
		Stage:      domain.Stage(req.Stage),
		Commitment: domain.Commitment(req.Commitment),
		Industries: req.Industries,
		Looking:    domain.LookingFor(req.Looking),
		Bio:        req.Bio,
		Idea:       req.Idea,
	}
}

func toProfile(p domain.Profile) matchsdk.Profile {
	return matchsdk.Profile{
		ID: p.ID,
		ProfileRequest: matchsdk.ProfileRequest{
			Name:       p.Name,
			Location:   p.Location,
			Email:      p.Email,
			Phone:      p.Phone,
			LinkedIn:   p.LinkedIn,
			Role:       string(p.Role),
			Experience: string(p.Experience),
			Skills:     nonNil(p.Skills),
			Stage:      string(p.Stage),
			Commitment: string(p.Commitment),
			Industries: nonNil(p.Industries),
			Looking:    string(p.Looking),
			Bio:        p.Bio,
			Idea:       p.Idea,
		},
		CreatedAt: p.CreatedAt,
	}
}

func toParticipant(p domain.Participant) matchsdk.Participant {
	return matchsdk.Participant{Name: p.Name, Role: string(p.Role), Email: p.Email, Phone: p.Phone}
}

func toMatch(m domain.Match) matchsdk.Match {
	return matchsdk.Match{
		ID:        m.ID,
		P1ID:      m.P1ID,
		P2ID:      m.P2ID,
		P1:        toParticipant(m.P1),
		P2:        toParticipant(m.P2),
		Notes:     m.Notes,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMatchView(v domain.MatchView) matchsdk.MatchView {
	return matchsdk.MatchView{
		ID:        v.ID,
		PartnerID: v.PartnerID,
		Partner:   toParticipant(v.Partner),
		Notes:     v.Notes,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
	}
}

func toMatchViews(userID string, ms []domain.Match) []matchsdk.MatchView {
	return mapSlice(service.Views(userID, ms), toMatchView)
}

func fromWaitlistRequest(req matchsdk.WaitlistRequest) domain.WaitlistEntry {
	return domain.WaitlistEntry{
		Name:    req.Name,
		Email:   req.Email,
		City:    req.City,
		Role:    req.Role,
		Source:  req.Source,
		Looking: req.Looking,
	}
}

func toWaitlistEntry(s domain.Submission[domain.WaitlistEntry]) matchsdk.WaitlistEntry {
	return matchsdk.WaitlistEntry{
		ID: s.ID,
		WaitlistRequest: matchsdk.WaitlistRequest{
			Name:    s.Data.Name,
			Email:   s.Data.Email,
			City:    s.Data.City,
			Role:    s.Data.Role,
			Source:  s.Data.Source,
			Looking: s.Data.Looking,
		},
		CreatedAt: s.CreatedAt,
	}
}

func fromTeamRequestForm(req matchsdk.TeamRequestForm) domain.TeamRequest {
	return domain.TeamRequest(req)
}

func toTeamRequest(s domain.Submission[domain.TeamRequest]) matchsdk.TeamRequest {
	return matchsdk.TeamRequest{
		ID:              s.ID,
		TeamRequestForm: matchsdk.TeamRequestForm(s.Data),
		CreatedAt:       s.CreatedAt,
	}
}

// fromReviewRequest leaves Status empty; the service decides it.
func fromReviewRequest(req matchsdk.ReviewRequest) domain.Review {
	return domain.Review{
		Name:    req.Name,
		Role:    req.Role,
		Company: req.Company,
		Rating:  req.Rating,
		Content: req.Content,
	}
}

func toReview(s domain.Submission[domain.Review]) matchsdk.Review {
	return matchsdk.Review{
		ID: s.ID,
		ReviewRequest: matchsdk.ReviewRequest{
			Name:    s.Data.Name,
			Role:    s.Data.Role,
			Company: s.Data.Company,
			Rating:  s.Data.Rating,
			Content: s.Data.Content,
		},
		Status:    string(s.Data.Status),
		CreatedAt: s.CreatedAt,
	}
}

func fromContactRequest(req matchsdk.ContactRequest) domain.ContactMessage {
	return domain.ContactMessage(req)
}

func toContact(s domain.Submission[domain.ContactMessage]) matchsdk.ContactMessage {
	return matchsdk.ContactMessage{
		ID:             s.ID,
		ContactRequest: matchsdk.ContactRequest(s.Data),
		CreatedAt:      s.CreatedAt,
	}
}

func toDashboard(d service.Dashboard) matchsdk.DashboardResponse {
	return matchsdk.DashboardResponse{
		Stats:        toStats(d.Stats),
		Profiles:     mapSlice(d.Profiles, toProfile),
		Matches:      mapSlice(d.Matches, toMatch),
		Waitlist:     mapSlice(d.Waitlist, toWaitlistEntry),
		TeamRequests: mapSlice(d.TeamRequests, toTeamRequest),
		Reviews:      mapSlice(d.Reviews, toReview),
		Contacts:     mapSlice(d.Contacts, toContact),
		Failed:       d.Failed,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
