package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/core/service"
	"github.com/99minutos/cms-console/internal/infrastructure/repository"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
	"github.com/99minutos/cms-console/pkg/logger"
)

// Services is the wired application graph over one store.
type Services struct {
	Store      ports.Store
	Repos      *repository.Set
	Seeder     *storage.Seeder
	Sessions   *service.SessionService
	Moderation *service.ModerationService
	Analytics  *service.AnalyticsService
	Exports    *service.ExportService
	Settings   *service.SettingsService
}

// NewServices builds repositories and services. now may be nil.
func NewServices(store ports.Store, log zerolog.Logger, now func() time.Time) *Services {
	if now == nil {
		now = time.Now
	}
	repos := repository.NewSet(store, log, repository.WithClock(now))
	seeder := storage.NewSeeder(store, log)

	return &Services{
		Store:    store,
		Repos:    repos,
		Seeder:   seeder,
		Sessions: service.NewSessionService(repos.Users, repos.Session, logger.Component(log, "session")),
		Moderation: service.NewModerationService(repos.Users, repos.Blacklist, repos.Audit, repos.Session,
			logger.Component(log, "moderation")),
		Analytics: service.NewAnalyticsService(repos.Users, repos.Roles, repos.Comments, repos.Content, now),
		Exports: service.NewExportService(repos.Users, repos.Roles, repos.Comments, repos.Blacklist,
			repos.Reports, repos.Content, now),
		Settings: service.NewSettingsService(repos.Users, repos.Session, seeder,
			logger.Component(log, "settings")),
	}
}
