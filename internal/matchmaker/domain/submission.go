package domain

import (
	"encoding/json"
	"net/mail"
	"strings"
	"time"
)

// SubmissionKind discriminates the variants stored in the submissions
// collection.
type SubmissionKind string

const (
	KindWaitlist    SubmissionKind = "waitlist"
	KindTeamRequest SubmissionKind = "team_request"
	KindReview      SubmissionKind = "review"
	KindContact     SubmissionKind = "contact"
)

var SubmissionKinds = []SubmissionKind{KindWaitlist, KindTeamRequest, KindReview, KindContact}

// Payload is implemented by each submission variant.
type Payload interface {
	Kind() SubmissionKind
	Validate() error
}

// Submission is one stored record of variant T.
type Submission[T Payload] struct {
	ID        string
	CreatedAt time.Time
	Data      T
}

// MarshalJSON flattens the payload next to id, kind and createdAt so the
// wire shape matches the form that produced it.
func (s Submission[T]) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(s.Data)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	for k, v := range map[string]any{"id": s.ID, "kind": s.Data.Kind(), "createdAt": s.CreatedAt} {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// WaitlistEntry is an early-access signup.
type WaitlistEntry struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	City    string   `json:"city,omitempty"`
	Role    string   `json:"role,omitempty"`
	Source  string   `json:"source,omitempty"`
	Looking []string `json:"looking,omitempty"`
}

func (WaitlistEntry) Kind() SubmissionKind { return KindWaitlist }

func (w *WaitlistEntry) Normalize() {
	trimAll(&w.Name, &w.Email, &w.City, &w.Role, &w.Source)
	w.Looking = cleanList(w.Looking)
}

func (w WaitlistEntry) Validate() error {
	if w.Name == "" {
		return required("name")
	}
	return validEmail(w.Email)
}

// LookingSummary renders the looking-for choices as one line.
func (w WaitlistEntry) LookingSummary() string {
	return strings.Join(w.Looking, ", ")
}

// TeamRequest is a startup asking for help hiring a team member.
type TeamRequest struct {
	StartupName string `json:"startupName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	RoleNeeded  string `json:"roleNeeded"`
	Description string `json:"description"`
	Budget      string `json:"budget,omitempty"`
	Equity      string `json:"equity,omitempty"`
}

func (TeamRequest) Kind() SubmissionKind { return KindTeamRequest }

func (t *TeamRequest) Normalize() {
	trimAll(&t.StartupName, &t.ContactName, &t.Email, &t.Phone, &t.RoleNeeded, &t.Description, &t.Budget, &t.Equity)
}

func (t TeamRequest) Validate() error {
	switch {
	case t.StartupName == "":
		return required("startupName")
	case t.ContactName == "":
		return required("contactName")
	case t.RoleNeeded == "":
		return required("roleNeeded")
	case t.Description == "":
		return required("description")
	}
	return validEmail(t.Email)
}

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
)

// DefaultRating is applied when a review is submitted without one.
const DefaultRating = 5

// Review is a testimonial. New reviews wait for admin approval before they
// appear publicly.
type Review struct {
	Name    string       `json:"name"`
	Role    string       `json:"role,omitempty"`
	Company string       `json:"company,omitempty"`
	Rating  int          `json:"rating"`
	Content string       `json:"content"`
	Status  ReviewStatus `json:"status"`
}

func (Review) Kind() SubmissionKind { return KindReview }

func (r *Review) Normalize() {
	trimAll(&r.Name, &r.Role, &r.Company, &r.Content)
	if r.Rating == 0 {
		r.Rating = DefaultRating
	}
	if r.Status == "" {
		r.Status = ReviewPending
	}
}

func (r Review) Validate() error {
	switch {
	case r.Name == "":
		return required("name")
	case r.Content == "":
		return required("content")
	case r.Rating < 1 || r.Rating > 5:
		return invalid("rating", "must be between 1 and 5")
	case r.Status != ReviewPending && r.Status != ReviewApproved:
		return invalid("status", "unknown review status "+string(r.Status))
	}
	return nil
}

// ContactMessage is a general enquiry from the contact page.
type ContactMessage struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Query  string `json:"query"`
}

func (ContactMessage) Kind() SubmissionKind { return KindContact }

func (c *ContactMessage) Normalize() { trimAll(&c.Name, &c.Number, &c.Query) }

func (c ContactMessage) Validate() error {
	switch {
	case c.Name == "":
		return required("name")
	case c.Number == "":
		return required("number")
	case c.Query == "":
		return required("query")
	}
	return nil
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func validEmail(email string) error {
	if email == "" {
		return required("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("email", "is not a valid address")
	}
	return nil
}
