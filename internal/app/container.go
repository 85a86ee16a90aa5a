package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"skillmapper/internal/config"
	"skillmapper/internal/database"
	"skillmapper/internal/database/migration"
	dbpostgres "skillmapper/internal/database/postgres"
	"skillmapper/internal/infrastructure/cache"
	"skillmapper/internal/infrastructure/generation"
	"skillmapper/internal/infrastructure/persistence/postgres"
	"skillmapper/internal/pkg/jwt"
	"skillmapper/internal/usecase"
	useruc "skillmapper/internal/usecase/user"
	"skillmapper/internal/ws"
)

// Container holds every long-lived dependency of the service. It is
// built once at startup and torn down in Close.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	JWT       jwt.Service
	Generator generation.Client

	AuthUC             usecase.AuthUsecase
	UserUC             *useruc.Service
	StaticRoadmapUC    *usecase.StaticRoadmapUsecase
	PersonalRoadmapUC  *usecase.PersonalRoadmapUsecase
	StaticProgressUC   *usecase.StaticProgressUsecase
	PersonalProgressUC *usecase.PersonalProgressUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisCache := cache.NewRedis(logger)

	generator, err := generation.NewGeminiClient(logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init generation client: %w", err)
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	userRepo := postgres.NewUserRepository(db)
	staticRepo := postgres.NewStaticRoadmapRepository(db)
	personalRepo := postgres.NewPersonalRoadmapRepository(db)
	staticProgressRepo := postgres.NewStaticProgressRepository(db)
	personalProgressRepo := postgres.NewPersonalProgressRepository(db)

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Hub:       hub,
		JWT:       jwtSvc,
		Generator: generator,

		AuthUC:             usecase.NewAuthUsecase(userRepo, jwtSvc),
		UserUC:             useruc.NewService(userRepo, cfg.Catalog),
		StaticRoadmapUC:    usecase.NewStaticRoadmapUsecase(staticRepo, redisCache),
		PersonalRoadmapUC:  usecase.NewPersonalRoadmapUsecase(userRepo, personalRepo, generator, redisCache, logger),
		StaticProgressUC:   usecase.NewStaticProgressUsecase(staticProgressRepo),
		PersonalProgressUC: usecase.NewPersonalProgressUsecase(personalProgressRepo),
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Printf("redis close error | err=%v", err)
		}
	}

	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
