package rest

import (
	"net/http"

	"github.com/heartmarshall/biokit-backend/internal/transport/middleware"
)

//go:generate moq -out mock_test.go . authService accountService adminService profileService generationService schemaService pressKitService publicService templateService

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Account    *AccountHandler
	Admin      *AdminHandler
	Profile    *ProfileHandler
	Generation *GenerationHandler
	Schema     *SchemaHandler
	PressKit   *PressKitHandler
	Public     *PublicHandler
	Template   *TemplateHandler
	Metrics    http.Handler
}

// Limits are the per-group rate limiters. Nil entries disable limiting.
type Limits struct {
	Auth     middleware.Middleware
	Public   middleware.Middleware
	Generate middleware.Middleware
}

// NewRouter mounts all routes. Authenticated routes expect the caller to be
// resolved by middleware.Auth further out.
func NewRouter(h Handlers, l Limits) *http.ServeMux {
	mux := http.NewServeMux()

	private := func(f http.HandlerFunc, extra ...middleware.Middleware) http.Handler {
		mws := append([]middleware.Middleware{middleware.RequireCaller}, extra...)
		return middleware.Chain(mws...)(f)
	}
	public := func(f http.HandlerFunc) http.Handler {
		return middleware.Chain(l.Public)(f)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.Handle("POST /auth/login", middleware.Chain(l.Auth)(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /auth/refresh", middleware.Chain(l.Auth)(http.HandlerFunc(h.Auth.Refresh)))

	mux.Handle("GET /me", private(h.Account.Me))
	mux.Handle("PATCH /me/settings", private(h.Account.UpdateSettings))
	mux.Handle("GET /billing/history", private(h.Account.BillingHistory))
	mux.Handle("POST /billing/checkout", private(h.Account.Checkout))

	mux.Handle("GET /profiles", private(h.Profile.List))
	mux.Handle("POST /profiles", private(h.Profile.Create))
	mux.Handle("GET /profiles/{id}", private(h.Profile.Get))
	mux.Handle("PATCH /profiles/{id}", private(h.Profile.Update))
	mux.Handle("DELETE /profiles/{id}", private(h.Profile.Delete))
	mux.Handle("PUT /profiles/{id}/published", private(h.Profile.SetPublished))
	mux.Handle("GET /profiles/{id}/biographies", private(h.Profile.Biographies))
	mux.Handle("POST /profiles/{id}/biographies/generate", private(h.Generation.Generate, l.Generate))
	mux.Handle("GET /profiles/{id}/analytics", private(h.Profile.Analytics))
	mux.Handle("GET /profiles/{id}/schema", private(h.Schema.Get))
	mux.Handle("POST /profiles/{id}/schema", private(h.Schema.Generate))
	mux.Handle("GET /profiles/{id}/press-kit", private(h.PressKit.Get))
	mux.Handle("PUT /profiles/{id}/press-kit", private(h.PressKit.Publish))
	mux.Handle("DELETE /profiles/{id}/press-kit", private(h.PressKit.Unpublish))

	mux.Handle("GET /templates", private(h.Template.List))

	mux.Handle("GET /admin/accounts", private(h.Admin.ListAccounts))
	mux.Handle("GET /admin/stats", private(h.Admin.Stats))
	mux.Handle("PUT /admin/accounts/{id}/plan", private(h.Admin.ChangePlan))
	mux.Handle("PUT /admin/accounts/{id}/role", private(h.Admin.SetRole))

	mux.Handle("GET /public/profiles/{slug}", public(h.Public.Profile))
	mux.Handle("GET /public/press-kits/{slug}", public(h.Public.PressKit))
	mux.Handle("GET /public/press-kits/{slug}/download", public(h.Public.Download))

	return mux
}
