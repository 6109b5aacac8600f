package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/cms-console/docs"
	"github.com/99minutos/cms-console/internal/api/handler"
	"github.com/99minutos/cms-console/internal/api/middleware"
	"github.com/99minutos/cms-console/internal/core/domain"
)

// RouterOptions tunes the router. The zero value uses the default Prometheus registry.
type RouterOptions struct {
	StoreDriver string
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
	// RequestLog enables echo's access log middleware.
	RequestLog bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc *Services, log zerolog.Logger, opts RouterOptions) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if opts.RequestLog {
		e.Use(echomiddleware.Logger())
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "cms",
		Registerer: opts.Registerer,
	}))

	// --- Handlers ---
	repos := svc.Repos
	healthHandler := handler.NewHealthHandler(svc.Store, opts.StoreDriver)
	sessionHandler := handler.NewSessionHandler(svc.Sessions)
	userHandler := handler.NewUserHandler(repos.Users, svc.Moderation)
	roleHandler := handler.NewRoleHandler(repos.Roles, svc.Analytics)
	commentHandler := handler.NewCommentHandler(repos.Comments)
	contentHandler := handler.NewContentHandler(repos.Content)
	moderationHandler := handler.NewModerationHandler(repos.Blacklist, repos.Reports, repos.Audit, svc.Moderation)
	analyticsHandler := handler.NewAnalyticsHandler(svc.Analytics)
	exportHandler := handler.NewExportHandler(svc.Exports)
	settingsHandler := handler.NewSettingsHandler(svc.Settings)

	// --- Probes, metrics, docs (no session required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Session ---
	v1.POST("/session", sessionHandler.Login)
	v1.DELETE("/session", sessionHandler.Logout)

	authed := v1.Group("", middleware.RequireSession(svc.Sessions))
	admin := middleware.RBAC(domain.RoleAdmin)
	editors := middleware.RBAC(domain.RoleAdmin, domain.RoleEditor)

	authed.GET("/session", sessionHandler.Current)

	// --- Users ---
	authed.GET("/users", userHandler.List)
	authed.GET("/users/:id", userHandler.Get)
	authed.POST("/users", userHandler.Create, admin)
	authed.PATCH("/users/:id", userHandler.Update, admin)
	authed.DELETE("/users/:id", userHandler.Delete, admin)
	authed.POST("/users/:id/ban", userHandler.Ban, admin)

	// --- Roles ---
	authed.GET("/roles", roleHandler.List)
	authed.GET("/roles/usage", roleHandler.Usage)
	authed.POST("/roles", roleHandler.Create, admin)
	authed.PATCH("/roles/:id", roleHandler.Update, admin)
	authed.DELETE("/roles/:id", roleHandler.Delete, admin)

	// --- Comments ---
	authed.GET("/comments", commentHandler.List)
	authed.POST("/comments", commentHandler.Create, editors)
	authed.PATCH("/comments/:id", commentHandler.Update, editors)
	authed.DELETE("/comments/:id", commentHandler.Delete, editors)

	// --- Moderation ---
	authed.GET("/blacklist", moderationHandler.ListBlacklist)
	authed.POST("/blacklist", moderationHandler.AddBlacklist, admin)
	authed.POST("/blacklist/reconcile", moderationHandler.Reconcile, admin)
	authed.DELETE("/blacklist/:id", moderationHandler.Unblacklist, admin)
	authed.GET("/reports", moderationHandler.ListReports)
	authed.POST("/reports", moderationHandler.AddReport, admin)
	authed.DELETE("/reports/:id", moderationHandler.DeleteReport, admin)
	authed.GET("/audit", moderationHandler.Audit, admin)

	// --- Content ---
	authed.GET("/content", contentHandler.List)
	authed.POST("/content", contentHandler.Create, editors)
	authed.PATCH("/content/:id", contentHandler.Update, editors)
	authed.DELETE("/content/:id", contentHandler.Delete, editors)

	// --- Analytics & export ---
	authed.GET("/analytics/stats", analyticsHandler.Stats)
	authed.GET("/analytics/top-content", analyticsHandler.TopContent)
	authed.GET("/analytics/dashboard", analyticsHandler.Dashboard)
	authed.GET("/export", exportHandler.All)
	authed.GET("/export/analytics", exportHandler.Analytics)

	// --- Settings ---
	authed.PATCH("/profile", settingsHandler.UpdateProfile)
	authed.DELETE("/profile", settingsHandler.DeleteAccount)
	authed.POST("/admin/reset", settingsHandler.Reset, admin)

	return e
}
