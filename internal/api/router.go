package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/api/handler"
	"github.com/yottalab/membership-system/internal/api/middleware"
	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
	"github.com/yottalab/membership-system/internal/core/service"
	"github.com/yottalab/membership-system/internal/core/state"
	"github.com/yottalab/membership-system/internal/infrastructure/announcements"
	"github.com/yottalab/membership-system/internal/infrastructure/config"
	redisdb "github.com/yottalab/membership-system/internal/infrastructure/db/redis"
	"github.com/yottalab/membership-system/internal/infrastructure/db/sqlite"
	"github.com/yottalab/membership-system/internal/infrastructure/ratelimit"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the contact limiter then falls back to the in-process one
// and the readiness probe skips redis. queue may be nil only while mail is
// unconfigured, which the contact service rejects before enqueueing.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client, mirror *state.Mirror, queue ports.MailQueue, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("membership"))

	// --- Repositories ---
	accountRepo := sqlite.NewAccountRepository(db)
	ledgerRepo := sqlite.NewLedgerRepository(db)
	noteRepo := sqlite.NewNoteRepository(db)
	todoRepo := sqlite.NewTodoRepository(db)
	badgeRepo := sqlite.NewBadgeRepository(db)
	authRepo := sqlite.NewAuthRepository(db)

	// --- Services ---
	accountService := service.NewAccountService(accountRepo, noteRepo, mirror, log)
	ledgerService := service.NewLedgerService(ledgerRepo, noteRepo, mirror, log)
	todoService := service.NewTodoService(todoRepo, log)
	badgeService := service.NewBadgeService(badgeRepo, mirror, log)
	authService := service.NewAuthService(authRepo, accountService, cfg.Session.Secret, cfg.Session.TTL, log)
	dashboardService := service.NewDashboardService(
		accountService, ledgerService, todoService, badgeService, authService, mirror, log)

	var limiter ports.ContactLimiter
	if rdb != nil {
		limiter = redisdb.NewRateLimiter(rdb, cfg.Contact.RateMax, cfg.Contact.RateEvery)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.Contact.RateMax, cfg.Contact.RateEvery)
	}
	recipient := ""
	if cfg.MailConfigured() {
		recipient = cfg.Contact.Recipient
	}
	contactService := service.NewContactService(queue, limiter, recipient, log)

	bizinfo := announcements.NewBizinfoClient(cfg.Bizinfo.APIKey, cfg.Bizinfo.BaseURL)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	accountHandler := handler.NewAccountHandler(accountService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	todoHandler := handler.NewTodoHandler(todoService)
	badgeHandler := handler.NewBadgeHandler(badgeService)
	contactHandler := handler.NewContactHandler(contactService)
	announcementsHandler := handler.NewAnnouncementsHandler(bizinfo)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authMW := middleware.Auth(cfg.Session.Secret)

	// --- Root probes and metrics ---
	e.GET("/health/live", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	api := e.Group("/api/v1")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/announcements", announcementsHandler.List)
	api.POST("/contact", contactHandler.Submit)

	api.GET("/dashboard", dashboardHandler.Overview, authMW)
	api.GET("/todos", todoHandler.List, authMW)

	admin := api.Group("/admin", authMW, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users/:class", accountHandler.List)
	admin.POST("/users/:class", accountHandler.Add)
	admin.PUT("/users/:class/:id", accountHandler.Update)
	admin.DELETE("/users/:class/:id", accountHandler.Delete)
	admin.POST("/ledger/:class", ledgerHandler.BulkSet)
	admin.PUT("/notes/:member_id", ledgerHandler.SetNote)
	admin.POST("/todos", todoHandler.Add)
	admin.PUT("/todos/:id", todoHandler.Edit)
	admin.POST("/todos/:id/toggle", todoHandler.Toggle)
	admin.DELETE("/todos/:id", todoHandler.Delete)
	admin.GET("/badges", badgeHandler.List)
	admin.POST("/badges", badgeHandler.Add)
	admin.PUT("/badges/:id", badgeHandler.Update)
	admin.DELETE("/badges/:id", badgeHandler.Delete)
	admin.POST("/password", authHandler.ChangePassword)

	return e
}
