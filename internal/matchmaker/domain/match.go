package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// MatchStatus is the ordered lifecycle of a match.
type MatchStatus string

const (
	StatusPending    MatchStatus = "pending"
	StatusIntroduced MatchStatus = "introduced"
	StatusConnected  MatchStatus = "connected"
)

var statusOrder = []MatchStatus{StatusPending, StatusIntroduced, StatusConnected}

// ParseMatchStatus accepts the lowercase wire form.
func ParseMatchStatus(s string) (MatchStatus, error) {
	st := MatchStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", invalid("status", "unknown status "+s)
	}
	return st, nil
}

func (s MatchStatus) Valid() bool { return slices.Contains(statusOrder, s) }

// CanAdvanceTo allows exactly one step forward. Skipping a step, staying
// put and moving backwards are all refused; connected is terminal.
func (s MatchStatus) CanAdvanceTo(next MatchStatus) bool {
	cur := slices.Index(statusOrder, s)
	nxt := slices.Index(statusOrder, next)
	return cur >= 0 && nxt == cur+1
}

// Next returns the status after s, if any.
func (s MatchStatus) Next() (MatchStatus, bool) {
	i := slices.Index(statusOrder, s)
	if i < 0 || i+1 >= len(statusOrder) {
		return "", false
	}
	return statusOrder[i+1], true
}

// RevealsContact reports whether partners may see each other's email and
// phone. A pending match has not been introduced yet.
func (s MatchStatus) RevealsContact() bool {
	return s == StatusIntroduced || s == StatusConnected
}

// Participant is the point-in-time copy of a profile's public contact fields.
type Participant struct {
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Validate refuses snapshots that would carry missing contact fields.
func (p Participant) Validate() error {
	switch {
	case p.Name == "":
		return required("name")
	case p.Role == "":
		return required("role")
	case p.Email == "":
		return required("email")
	}
	return nil
}

// Match is an admin-curated pairing of two profiles. Participant ids and
// snapshots never change after creation; only Status and Notes do.
type Match struct {
	ID        string
	P1ID      string
	P2ID      string
	P1        Participant
	P2        Participant
	Notes     string
	Status    MatchStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMatch denormalizes a and b into a pending match.
func NewMatch(id string, a, b Profile, notes string, now time.Time) (Match, error) {
	m := Match{
		ID:        id,
		P1ID:      a.ID,
		P2ID:      b.ID,
		P1:        a.Participant(),
		P2:        b.Participant(),
		Notes:     strings.TrimSpace(notes),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return m, m.Validate()
}

// Validate checks the structural invariants of a stored or new match.
func (m Match) Validate() error {
	switch {
	case m.ID == "":
		return required("id")
	case m.P1ID == "":
		return required("p1_id")
	case m.P2ID == "":
		return required("p2_id")
	case m.P1ID == m.P2ID:
		return invalid("p2_id", "a match needs two different people")
	case !m.Status.Valid():
		return invalid("status", "unknown status "+string(m.Status))
	case m.CreatedAt.IsZero():
		return required("createdAt")
	}
	if err := m.P1.Validate(); err != nil {
		return invalid("p1", err.Error())
	}
	if err := m.P2.Validate(); err != nil {
		return invalid("p2", err.Error())
	}
	return nil
}

// Involves reports whether userID is one of the two participants.
func (m Match) Involves(userID string) bool {
	return userID != "" && (m.P1ID == userID || m.P2ID == userID)
}

// Partner returns the other side of the match from userID's point of view.
func (m Match) Partner(userID string) (string, Participant, bool) {
	switch userID {
	case "":
		return "", Participant{}, false
	case m.P1ID:
		return m.P2ID, m.P2, true
	case m.P2ID:
		return m.P1ID, m.P1, true
	}
	return "", Participant{}, false
}

// MatchView is a match as one participant sees it.
type MatchView struct {
	ID        string
	PartnerID string
	Partner   Participant
	Notes     string
	Status    MatchStatus
	CreatedAt time.Time
}

// ViewFor builds userID's view, hiding the partner's email and phone until
// the match has been introduced.
func (m Match) ViewFor(userID string) (MatchView, bool) {
	partnerID, partner, ok := m.Partner(userID)
	if !ok {
		return MatchView{}, false
	}
	if !m.Status.RevealsContact() {
		partner.Email = ""
		partner.Phone = ""
	}
	return MatchView{
		ID:        m.ID,
		PartnerID: partnerID,
		Partner:   partner,
		Notes:     m.Notes,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}, true
}

// SortMatchesNewestFirst orders by CreatedAt descending, breaking ties by id
// descending so the order is total.
func SortMatchesNewestFirst(ms []Match) {
	slices.SortStableFunc(ms, func(a, b Match) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
