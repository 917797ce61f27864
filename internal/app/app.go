package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/account"
	analyticsrepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/analytics"
	billingrepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/billing"
	biographyrepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/biography"
	presskitrepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/presskit"
	profilerepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/profile"
	rolerepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/role"
	snippetrepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/snippet"
	templaterepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/template"
	usagelogrepo "github.com/heartmarshall/biokit-backend/internal/adapter/postgres/usagelog"
	"github.com/heartmarshall/biokit-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/biokit-backend/internal/adapter/provider/checkout"
	"github.com/heartmarshall/biokit-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/biokit-backend/internal/adapter/provider/gotrue"
	"github.com/heartmarshall/biokit-backend/internal/adapter/redis/visitor"
	"github.com/heartmarshall/biokit-backend/internal/auth"
	"github.com/heartmarshall/biokit-backend/internal/config"
	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/metrics"
	"github.com/heartmarshall/biokit-backend/internal/service/access"
	"github.com/heartmarshall/biokit-backend/internal/service/account"
	authsvc "github.com/heartmarshall/biokit-backend/internal/service/auth"
	"github.com/heartmarshall/biokit-backend/internal/service/generation"
	"github.com/heartmarshall/biokit-backend/internal/service/profile"
	"github.com/heartmarshall/biokit-backend/internal/service/publication"
	"github.com/heartmarshall/biokit-backend/internal/service/schema"
	"github.com/heartmarshall/biokit-backend/internal/service/template"
	"github.com/heartmarshall/biokit-backend/internal/transport/middleware"
	"github.com/heartmarshall/biokit-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional collaborators, wires services and handlers,
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	logger.Info("database connected", slog.Int("max_conns", int(cfg.Database.MaxConns)))

	llm, err := newCompleter(ctx, cfg.LLM, logger)
	if err != nil {
		return err
	}

	rdb, tracker, err := newVisitorTracker(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	mtr := metrics.New()
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.Server.TrustProxy)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, Deps{
		Pool:     pool,
		Redis:    rdb,
		LLM:      llm,
		Visitors: tracker,
		Metrics:  mtr,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// Completer produces text completions for biography generation.
type Completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error)
}

// VisitorTracker decides whether a profile view is a visitor's first of the day.
type VisitorTracker interface {
	FirstVisit(ctx context.Context, profileID uuid.UUID, visitor string, day time.Time) (bool, error)
}

// Deps are the runtime collaborators NewHandler wires together. Redis is
// optional and only used for the readiness probe.
type Deps struct {
	Pool     *pgxpool.Pool
	Redis    *goredis.Client
	LLM      Completer
	Visitors VisitorTracker
	Metrics  *metrics.Metrics
	Limiter  *middleware.RateLimiter
}

func newCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (Completer, error) {
	switch cfg.Provider {
	case "gemini":
		c, err := gemini.New(ctx, cfg, "", logger)
		if err != nil {
			return nil, fmt.Errorf("init gemini: %w", err)
		}
		return c, nil
	default:
		return anthropic.New(cfg, logger), nil
	}
}

// newVisitorTracker connects to Redis when an address is configured. Without
// Redis every view counts as a repeat visit.
func newVisitorTracker(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*goredis.Client, VisitorTracker, error) {
	if cfg.Addr == "" {
		logger.Warn("redis not configured, unique visitor counting disabled")
		return nil, visitor.Noop{}, nil
	}
	rdb, err := visitor.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	logger.Info("redis connected", slog.String("addr", cfg.Addr))
	return rdb, visitor.New(rdb, cfg.VisitorTTL, logger), nil
}

// NewHandler wires repositories, services and handlers into the root
// http.Handler. The metrics middleware wraps the mux directly so the matched
// route pattern is visible to it.
func NewHandler(cfg *config.Config, logger *slog.Logger, d Deps) http.Handler {
	pool, rdb, mtr, limiter := d.Pool, d.Redis, d.Metrics, d.Limiter

	tx := postgres.NewTxManager(pool)

	accounts := accountrepo.New(pool)
	roles := rolerepo.New(pool)
	profiles := profilerepo.New(pool)
	bios := biographyrepo.New(pool)
	snippets := snippetrepo.New(pool)
	kits := presskitrepo.New(pool)
	analytics := analyticsrepo.New(pool)
	usage := usagelogrepo.New(pool)
	billing := billingrepo.New(pool)
	templates := templaterepo.New(pool)

	limits := cfg.Plans.Limits()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.AccessTokenTTL)
	accessSvc := access.NewService(logger, accounts, roles, tx, limits)

	var authSvc *authsvc.Service
	if cfg.GoTrue.Enabled() {
		authSvc = authsvc.NewService(logger, gotrue.New(cfg.GoTrue, logger), jwtManager, accessSvc)
	} else {
		logger.Warn("gotrue not configured, password login disabled")
		authSvc = authsvc.NewService(logger, nil, jwtManager, accessSvc)
	}

	accountSvc := account.NewService(logger, accounts, roles, profiles, usage, billing,
		checkout.New(cfg.Billing, logger), accessSvc, limits, cfg.Billing.HistorySize)
	profileSvc := profile.NewService(logger, accounts, profiles, bios, kits, analytics, tx)
	generationSvc := generation.NewService(logger, profiles, bios, usage, d.LLM, mtr, cfg.LLM.MaxTokens)
	schemaSvc := schema.NewService(logger, profiles, snippets)
	publicationSvc := publication.NewService(logger, profiles, bios, snippets, kits, analytics, d.Visitors)
	templateSvc := template.NewService(logger, templates)

	probes := map[string]rest.Probe{
		"postgres": pool.Ping,
	}
	if rdb != nil {
		probes["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), probes),
		Auth:       rest.NewAuthHandler(authSvc, logger),
		Account:    rest.NewAccountHandler(accountSvc, logger),
		Admin:      rest.NewAdminHandler(accountSvc, logger),
		Profile:    rest.NewProfileHandler(profileSvc, logger),
		Generation: rest.NewGenerationHandler(generationSvc, logger),
		Schema:     rest.NewSchemaHandler(schemaSvc, logger),
		PressKit:   rest.NewPressKitHandler(publicationSvc, logger),
		Public:     rest.NewPublicHandler(publicationSvc, logger, cfg.Server.TrustProxy),
		Template:   rest.NewTemplateHandler(templateSvc, logger),
		Metrics:    mtr.Handler(),
	}, rest.Limits{
		Auth:     limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
		Public:   limiter.Limit("public", cfg.RateLimit.PublicPerMinute),
		Generate: limiter.Limit("generate", cfg.RateLimit.GeneratePerMinute),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc, logger),
		middleware.Metrics(mtr),
	)(mux)
}
