package api

import (
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/common"
	"github.com/Jfgm299/centro-control-personal/internal/config"
	"github.com/Jfgm299/centro-control-personal/internal/db"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/metrics"
	"github.com/Jfgm299/centro-control-personal/internal/providers"
	"github.com/Jfgm299/centro-control-personal/internal/services"
)

type Repositories struct {
	User    *repositories.UserRepository
	Expense *repositories.ExpenseRepository
	Flight  *repositories.FlightRepository
	Macro   *repositories.MacroRepository
	Gym     *repositories.GymRepository
	Travel  *repositories.TravelRepository
}

type Services struct {
	User    *services.UserService
	Expense *services.ExpenseService
	Flight  *services.FlightService
	Food    *services.FoodService
	Diary   *services.DiaryService
	Gym     *services.GymService
	Travel  *services.TravelService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Cache    common.CacheInterface
	Issuer   *auth.TokenIssuer
}

// InitDependencies wires repositories, providers, and services off the
// already-opened database handles in the db package.
func InitDependencies(cfg *config.Settings) (*Dependencies, error) {

	repos := &Repositories{
		User:    repositories.NewUserRepository(db.PgDB),
		Expense: repositories.NewExpenseRepository(db.PgDB, db.DB),
		Flight:  repositories.NewFlightRepository(db.PgDB),
		Macro:   repositories.NewMacroRepository(db.PgDB),
		Gym:     repositories.NewGymRepository(db.PgDB),
		Travel:  repositories.NewTravelRepository(db.PgDB),
	}

	cache, err := buildCache(cfg)
	if err != nil {
		return nil, err
	}

	flightProvider := providers.NewAeroDataBoxClient(cfg.AeroDataBoxBaseURL, cfg.AeroDataBoxAPIKey, cfg.AeroDataBoxHost)
	foodProvider := providers.NewOpenFoodFactsClient(cfg.OpenFoodFactsBaseURL)
	storage, err := providers.NewS3Storage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StoragePublicURL,
		cfg.StorageUseSSL,
	)
	if err != nil {
		return nil, err
	}

	accessTTL := time.Duration(cfg.AccessTokenMinutes) * time.Minute
	refreshTTL := time.Duration(cfg.RefreshTokenDays) * 24 * time.Hour
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, accessTTL)

	passportSvc := services.NewPassportService()
	statsSvc := services.NewStatsService()

	svcs := &Services{
		User:    services.NewUserService(repos.User, issuer, accessTTL, refreshTTL),
		Expense: services.NewExpenseService(repos.Expense),
		Flight:  services.NewFlightService(repos.Flight, flightProvider, passportSvc),
		Food:    services.NewFoodService(repos.Macro, foodProvider, cache),
		Diary:   services.NewDiaryService(repos.Macro, statsSvc),
		Gym:     services.NewGymService(repos.Gym),
		Travel:  services.NewTravelService(repos.Travel, storage),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metrics.NewMetricsRegistry(),
		Cache:    cache,
		Issuer:   issuer,
	}, nil
}

func buildCache(cfg *config.Settings) (common.CacheInterface, error) {
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr(), cfg.RedisPassword)
		if err != nil {
			logging.Warn("redis unavailable, falling back to in-memory cache", "error", err)
			return common.NewCacheService(3600, 600), nil
		}
		return redisCache, nil
	}
	return common.NewCacheService(3600, 600), nil
}
