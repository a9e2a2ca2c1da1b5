package matchsdk

import "time"

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a stable machine-readable code, e.g. "not_found"
	Error string `json:"error"`

	// ErrorDescription is a human-readable explanation
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the readiness of critical dependencies (only for /readyz).
type HealthChecks struct {
	// Store is the persistent store connectivity
	Store string `json:"store"`

	// Keys reports whether token verification keys are loaded
	Keys string `json:"keys"`
}

// ============================================================================
// Stats
// ============================================================================

// StatsResponse carries the landing page counters. Degraded names counters
// that could not be read and are reported as 0.
type StatsResponse struct {
	ProfileCount     int      `json:"profileCount"`
	MatchCount       int      `json:"matchCount"`
	ConnectedCount   int      `json:"connectedCount"`
	TeamRequestCount int      `json:"teamRequestCount"`
	Degraded         []string `json:"degraded,omitempty"`
}

// ============================================================================
// Profiles
// ============================================================================

// ProfileRequest is the body of PUT /v1/profiles/me. The profile id is always
// the caller's identity and is never taken from the body.
type ProfileRequest struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	LinkedIn   string   `json:"linkedin,omitempty"`
	Role       string   `json:"role"`
	Experience string   `json:"exp,omitempty"`
	Skills     []string `json:"skills"`
	Stage      string   `json:"stage,omitempty"`
	Commitment string   `json:"commitment"`
	Industries []string `json:"industries,omitempty"`
	Looking    string   `json:"looking"`
	Bio        string   `json:"bio"`
	Idea       string   `json:"idea,omitempty"`
}

// Profile is a stored founder profile.
type Profile struct {
	ID string `json:"id"`
	ProfileRequest
	CreatedAt time.Time `json:"createdAt"`
}

type ListProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
}

// ============================================================================
// Matches
// ============================================================================

// Participant is the contact snapshot taken when a match was created.
type Participant struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Match is the admin view of a pairing.
type Match struct {
	ID        string      `json:"id"`
	P1ID      string      `json:"p1Id"`
	P2ID      string      `json:"p2Id"`
	P1        Participant `json:"p1"`
	P2        Participant `json:"p2"`
	Notes     string      `json:"notes,omitempty"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type ListMatchesResponse struct {
	Matches []Match `json:"matches"`
}

// MatchView is a match from one participant's side. The partner's email and
// phone stay empty until the match has been introduced.
type MatchView struct {
	ID        string      `json:"id"`
	PartnerID string      `json:"partnerId"`
	Partner   Participant `json:"partner"`
	Notes     string      `json:"notes,omitempty"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type ListMatchViewsResponse struct {
	Matches []MatchView `json:"matches"`
}

type CreateMatchRequest struct {
	ProfileA string `json:"profileA"`
	ProfileB string `json:"profileB"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateStatusRequest moves a match or a review to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// ============================================================================
// Submissions
// ============================================================================

type WaitlistRequest struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	City    string   `json:"city,omitempty"`
	Role    string   `json:"role,omitempty"`
	Source  string   `json:"source,omitempty"`
	Looking []string `json:"looking,omitempty"`
}

type WaitlistEntry struct {
	ID string `json:"id"`
	WaitlistRequest
	CreatedAt time.Time `json:"createdAt"`
}

type TeamRequestForm struct {
	StartupName string `json:"startupName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	RoleNeeded  string `json:"roleNeeded"`
	Description string `json:"description"`
	Budget      string `json:"budget,omitempty"`
	Equity      string `json:"equity,omitempty"`
}

type TeamRequest struct {
	ID string `json:"id"`
	TeamRequestForm
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewRequest is a public testimonial. Rating defaults to 5 when omitted.
type ReviewRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Rating  int    `json:"rating,omitempty"`
	Content string `json:"content"`
}

type Review struct {
	ID string `json:"id"`
	ReviewRequest
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Query  string `json:"query"`
}

type ContactMessage struct {
	ID string `json:"id"`
	ContactRequest
	CreatedAt time.Time `json:"createdAt"`
}

type ListWaitlistResponse struct {
	Entries []WaitlistEntry `json:"entries"`
}

type ListTeamRequestsResponse struct {
	Requests []TeamRequest `json:"requests"`
}

type ListReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type ListContactsResponse struct {
	Messages []ContactMessage `json:"messages"`
}

// ============================================================================
// Admin Dashboard
// ============================================================================

// DashboardResponse is the admin overview. Failed names the sections that
// could not be loaded; those sections are empty rather than missing.
type DashboardResponse struct {
	Stats        StatsResponse    `json:"stats"`
	Profiles     []Profile        `json:"profiles"`
	Matches      []Match          `json:"matches"`
	Waitlist     []WaitlistEntry  `json:"waitlist"`
	TeamRequests []TeamRequest    `json:"teamRequests"`
	Reviews      []Review         `json:"reviews"`
	Contacts     []ContactMessage `json:"contacts"`
	Failed       []string         `json:"failed,omitempty"`
}
