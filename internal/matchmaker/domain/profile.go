package domain

import (
	"net/mail"
	"slices"
	"strings"
	"time"
)

type Role string

const (
	RoleFounder   Role = "Founder"
	RoleDeveloper Role = "Developer"
	RoleDesigner  Role = "Designer"
	RoleOther     Role = "Other"
)

var Roles = []Role{RoleFounder, RoleDeveloper, RoleDesigner, RoleOther}

func (r Role) Valid() bool { return slices.Contains(Roles, r) }

type Experience string

var Experiences = []Experience{"Student", "0-1 years", "1-3 years", "3-5 years", "5+ years"}

type Stage string

var Stages = []Stage{"Just an idea", "Building MVP", "MVP ready", "Getting traction"}

type Commitment string

const (
	CommitmentFullTime  Commitment = "Full-time"
	CommitmentWeekends  Commitment = "Part-time (Weekends)"
	CommitmentEvenings  Commitment = "Part-time (Evenings)"
	CommitmentExploring Commitment = "Exploring"
)

var Commitments = []Commitment{CommitmentFullTime, CommitmentWeekends, CommitmentEvenings, CommitmentExploring}

type LookingFor string

var LookingFors = []LookingFor{"Technical Co-founder", "Business Co-founder", "Designer Co-founder", "Any"}

// Profile is a founder's self-submitted record. ID is the owning identity's
// id, so there is at most one profile per identity.
type Profile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	LinkedIn   string     `json:"linkedin,omitempty"`
	Role       Role       `json:"role"`
	Experience Experience `json:"exp,omitempty"`
	Skills     []string   `json:"skills"`
	Stage      Stage      `json:"stage,omitempty"`
	Commitment Commitment `json:"commitment"`
	Industries []string   `json:"industries"`
	Looking    LookingFor `json:"looking"`
	Bio        string     `json:"bio"`
	Idea       string     `json:"idea,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Normalize trims text fields and de-duplicates list fields in place.
func (p *Profile) Normalize() {
	trimAll(&p.ID, &p.Name, &p.Location, &p.Email, &p.Phone, &p.LinkedIn, &p.Bio, &p.Idea)
	p.Skills = cleanList(p.Skills)
	p.Industries = cleanList(p.Industries)
}

// Validate checks the fields a profile form requires.
func (p Profile) Validate() error {
	switch {
	case p.ID == "":
		return required("id")
	case p.Name == "":
		return required("name")
	case p.Location == "":
		return required("location")
	case p.Email == "":
		return required("email")
	case p.Bio == "":
		return required("bio")
	case p.Role == "":
		return required("role")
	case p.Commitment == "":
		return required("commitment")
	case p.Looking == "":
		return required("looking")
	case len(p.Skills) == 0:
		return invalid("skills", "at least one skill is required")
	}

	if _, err := mail.ParseAddress(p.Email); err != nil {
		return invalid("email", "is not a valid address")
	}
	if !p.Role.Valid() {
		return invalid("role", "unknown role "+string(p.Role))
	}
	if !slices.Contains(Commitments, p.Commitment) {
		return invalid("commitment", "unknown commitment "+string(p.Commitment))
	}
	if !slices.Contains(LookingFors, p.Looking) {
		return invalid("looking", "unknown value "+string(p.Looking))
	}
	if p.Experience != "" && !slices.Contains(Experiences, p.Experience) {
		return invalid("exp", "unknown experience "+string(p.Experience))
	}
	if p.Stage != "" && !slices.Contains(Stages, p.Stage) {
		return invalid("stage", "unknown stage "+string(p.Stage))
	}
	return nil
}

// Participant returns the contact snapshot copied into a Match.
func (p Profile) Participant() Participant {
	return Participant{Name: p.Name, Role: p.Role, Email: p.Email, Phone: p.Phone}
}

// ProfileFilter narrows the admin's profile list.
type ProfileFilter struct {
	Search     string // case-insensitive over name, bio and skills
	Role       Role
	Commitment Commitment
}

// Match reports whether p passes f.
func (f ProfileFilter) Match(p Profile) bool {
	if f.Role != "" && p.Role != f.Role {
		return false
	}
	if f.Commitment != "" && p.Commitment != f.Commitment {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Bio), q) {
		return true
	}
	return slices.ContainsFunc(p.Skills, func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	})
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
