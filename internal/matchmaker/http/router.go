package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/jwtx"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/cofound/api/matchmaker" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        Pinger
	gatherer     prometheus.Gatherer

	StatsService      StatsComputer
	ProfileService    ProfileManager
	MatchService      MatchManager
	SubmissionService SubmissionManager
	DashboardService  DashboardLoader
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st Pinger,
	gatherer prometheus.Gatherer,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		gatherer:     gatherer,
		logger:       logger,
	}

	// CORS sits inside the request logger so preflights are logged too.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerStats()
	r.registerProfiles()
	r.registerMatches()
	r.registerSubmissions()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Cofound Matchmaker API
//	@version		0.1.0
//	@description	Co-founder matchmaking: founders submit profiles, admins pair them and move each match
//	@description	through pending, introduced and connected.
//	@description
//	@description				Bearer tokens are issued by the identity provider and verified against its JWKS.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/cofound
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// member requires any valid token. Whether the caller may touch a given
// record is decided by the services.
func (r *Router) member(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

// admin additionally requires one of the scopes at the edge. The services
// check again so a misrouted handler cannot skip authorization.
func (r *Router) admin(h http.HandlerFunc, scopes ...string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	// Public, but an admin token unlocks the team request count.
	r.Mux.Handle("GET /v1/stats",
		httpx.Chain(h,
			httpx.OptionalAuthn(r.verifier),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("PUT /v1/profiles/me", r.member(h.HandlePutMine, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles/me", r.member(h.HandleGetMine, httpx.LenientLimit))

	r.Mux.Handle("GET /v1/profiles", r.admin(h.HandleList, domain.ScopeAdminRead, domain.ScopeAdminWrite))
	r.Mux.Handle("DELETE /v1/profiles/{id}", r.admin(h.HandleDelete, domain.ScopeAdminWrite))
}

func (r *Router) registerMatches() {
	h := &MatchesHandler{MatchService: r.MatchService}

	r.Mux.Handle("GET /v1/matches/me", r.member(h.HandleMine, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/users/{id}/matches", r.member(h.HandleForUser, httpx.LenientLimit))

	r.Mux.Handle("POST /v1/matches", r.admin(h.HandleCreate, domain.ScopeAdminWrite))
	r.Mux.Handle("GET /v1/matches", r.admin(h.HandleList, domain.ScopeAdminRead, domain.ScopeAdminWrite))
	r.Mux.Handle("PATCH /v1/matches/{id}/status", r.admin(h.HandleUpdateStatus, domain.ScopeAdminWrite))
	r.Mux.Handle("PATCH /v1/matches/{id}/notes", r.admin(h.HandleUpdateNotes, domain.ScopeAdminWrite))
	r.Mux.Handle("DELETE /v1/matches/{id}", r.admin(h.HandleDelete, domain.ScopeAdminWrite))
}

func (r *Router) registerSubmissions() {
	h := &SubmissionsHandler{SubmissionService: r.SubmissionService}

	// Public forms - strict rate limit by IP (spam)
	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.StrictLimit))
	}
	r.Mux.Handle("POST /v1/waitlist", public(h.HandleJoinWaitlist))
	r.Mux.Handle("POST /v1/team-requests", public(h.HandleRequestTeam))
	r.Mux.Handle("POST /v1/reviews", public(h.HandleSubmitReview))
	r.Mux.Handle("POST /v1/contact", public(h.HandleSendContact))

	r.Mux.Handle("GET /v1/reviews",
		httpx.Chain(http.HandlerFunc(h.HandleApprovedReviews),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &SubmissionsHandler{SubmissionService: r.SubmissionService}
	read := []string{domain.ScopeAdminRead, domain.ScopeAdminWrite}

	r.Mux.Handle("GET /v1/admin/"+InboxWaitlist, r.admin(h.HandleListWaitlist, read...))
	r.Mux.Handle("GET /v1/admin/"+InboxTeamRequests, r.admin(h.HandleListTeamRequests, read...))
	r.Mux.Handle("GET /v1/admin/"+InboxReviews, r.admin(h.HandleListReviews, read...))
	r.Mux.Handle("GET /v1/admin/"+InboxContact, r.admin(h.HandleListContacts, read...))

	r.Mux.Handle("PATCH /v1/admin/reviews/{id}/status", r.admin(h.HandleSetReviewStatus, domain.ScopeAdminWrite))
	r.Mux.Handle("DELETE /v1/admin/{inbox}/{id}", r.admin(h.HandleDelete, domain.ScopeAdminWrite))

	dash := &DashboardHandler{DashboardService: r.DashboardService}
	r.Mux.Handle("GET /v1/admin/dashboard", r.admin(dash.ServeHTTP, read...))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
}
