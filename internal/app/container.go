package app

import (
	"context"
	"log"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/database/migration"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/infrastructure/cache"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"
	"job-portal/internal/usecase"
	"job-portal/internal/ws"
)

// Container wires every component once at process start; nothing reads
// ambient globals after this point.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Auth     *middleware.AuthMiddleware
	Health   *handler.HealthHandler
	Jobs     *handler.JobHandler
	Users    *handler.UserHandler
	WSHandle *ws.Handler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	jobRepo := repository.NewPostgresJobRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiresIn)

	listing := usecase.NewJobListingUsecase(jobRepo, redisCache, logger)
	mutation := usecase.NewJobMutationUsecase(jobRepo, redisCache, ws.NewNotifier(hub), logger)
	auth := usecase.NewAuthUsecase(userRepo, jwtSvc)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Auth:     middleware.NewAuthMiddleware(jwtSvc, userRepo),
		Health:   handler.NewHealthHandler(),
		Jobs:     handler.NewJobHandler(listing, mutation),
		Users:    handler.NewUserHandler(auth, cfg.Auth),
		WSHandle: ws.NewHandler(hub, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
