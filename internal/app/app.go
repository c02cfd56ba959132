package app

import (
	"fmt"
	"net/http"

	"campus-portal-go/internal/config"
	"campus-portal-go/internal/db"
	announcementsdomain "campus-portal-go/internal/domain/announcements"
	"campus-portal-go/internal/domain/audience"
	clubsdomain "campus-portal-go/internal/domain/clubs"
	eventsdomain "campus-portal-go/internal/domain/events"
	notificationsdomain "campus-portal-go/internal/domain/notifications"
	placementsdomain "campus-portal-go/internal/domain/placements"
	roomsdomain "campus-portal-go/internal/domain/rooms"
	todosdomain "campus-portal-go/internal/domain/todos"
	userdomain "campus-portal-go/internal/domain/user"
	"campus-portal-go/internal/repository/inmemory"
	announcementsrepo "campus-portal-go/internal/repository/postgres/announcements"
	clubsrepo "campus-portal-go/internal/repository/postgres/clubs"
	eventsrepo "campus-portal-go/internal/repository/postgres/events"
	notificationsrepo "campus-portal-go/internal/repository/postgres/notifications"
	placementsrepo "campus-portal-go/internal/repository/postgres/placements"
	"campus-portal-go/internal/repository/postgres/relation"
	roomsrepo "campus-portal-go/internal/repository/postgres/rooms"
	todosrepo "campus-portal-go/internal/repository/postgres/todos"
	userrepo "campus-portal-go/internal/repository/postgres/user"
	"campus-portal-go/internal/transport/httpserver"
	"campus-portal-go/internal/transport/httpserver/handler"
	"campus-portal-go/internal/transport/httpserver/handler/common"
	"campus-portal-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	log        logger.Logger
}

func New(log logger.Logger, envFile string) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log, envFile)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(dbConn, cfg.DB.MigrationsDir, log); err != nil {
			closeDB(dbConn)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	log.Info("app: loading timetable", "path", cfg.Portal.TimetablePath)
	timetable, err := roomsdomain.LoadTimetable(cfg.Portal.TimetablePath)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	log.Info("app: initializing router")
	services, profiles := NewServices(cfg, dbConn, timetable, log)
	router := httpserver.NewRouter(cfg, handler.New(services, log), profiles, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		log:        log,
	}, nil
}

// NewServices builds every domain service over dbConn. The returned user
// service also keeps caller profiles current for the auth middleware.
func NewServices(cfg config.Config, dbConn *gorm.DB, timetable *roomsdomain.Timetable, log logger.Logger) (handler.Services, *userdomain.Service) {
	userRepo := userrepo.NewPostgres(dbConn)
	resolver := audience.NewResolverWithCache(userRepo, inmemory.NewInMemoryAudienceCache(), cfg.Portal.AudienceCacheTTL)
	userService := userdomain.NewService(userRepo, resolver)

	notificationsRepo := notificationsrepo.NewPostgres(dbConn)
	fanout := notificationsdomain.NewFanout(resolver, notificationsRepo)

	services := handler.Services{
		Profiles: userService,
		Client: common.ClientSettings{
			PollInterval:   cfg.Portal.PollInterval,
			CampusTimezone: cfg.Portal.CampusTimezone,
		},
		Announcements: announcementsdomain.NewService(announcementsrepo.NewPostgres(dbConn), fanout),
		Events: eventsdomain.NewService(
			eventsrepo.NewPostgres(dbConn),
			relation.NewPostgres(dbConn, relation.EventRSVPs, log),
			fanout,
		),
		Clubs: clubsdomain.NewService(
			clubsrepo.NewPostgres(dbConn),
			relation.NewPostgres(dbConn, relation.ClubMembers, log),
			fanout,
		),
		Placements: placementsdomain.NewService(
			placementsrepo.NewPostgres(dbConn),
			relation.NewPostgres(dbConn, relation.PlacementApplications, log),
			fanout,
		),
		Todos:         todosdomain.NewService(todosrepo.NewPostgres(dbConn)),
		Rooms:         roomsdomain.NewService(roomsrepo.NewPostgres(dbConn), timetable, cfg.Portal.Location()),
		Notifications: notificationsdomain.NewService(notificationsRepo),
	}
	return services, userService
}

// RunMigrations applies pending migrations and exits without serving.
func RunMigrations(log logger.Logger, envFile string) error {
	cfg, err := config.Load(log, envFile)
	if err != nil {
		return err
	}
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return err
	}
	defer closeDB(dbConn)
	return db.Migrate(dbConn, cfg.DB.MigrationsDir, log)
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB) {
	if sqlDB, err := dbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
