package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"blackpot/internal/auth"
	"blackpot/internal/cache"
	"blackpot/internal/config"
	"blackpot/internal/db"
	"blackpot/internal/handler"
	"blackpot/internal/logger"
	"blackpot/internal/model"
	"blackpot/internal/repository"
	"blackpot/internal/router"
	"blackpot/internal/service"
)

// @title Blackpot Restaurant API
// @version 1.0
// @description Restaurant point-of-sale backend with JWT authentication and role-gated staff endpoints.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		// The signing secret and database DSN are hard requirements; refuse
		// to start without them.
		lg := logger.New(logger.Options{})
		lg.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.EndOfDayClose{},
			&model.BusinessDay{},
			&model.Tip{},
			&model.Payment{},
			&model.OrderItem{},
			&model.OrderCourse{},
			&model.Order{},
			&model.Reservation{},
			&model.Shift{},
			&model.WineDetail{},
			&model.StockMovement{},
			&model.InventoryItem{},
			&model.Supplier{},
			&model.MenuItem{},
			&model.MenuSection{},
			&model.Menu{},
			&model.KitchenStation{},
			&model.Table{},
			&model.FinancialSetting{},
			&model.User{},
			&model.Location{},
			&model.Tenant{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Tenant{},
		&model.Location{},
		&model.User{},
		&model.Table{},
		&model.KitchenStation{},
		&model.Menu{},
		&model.MenuSection{},
		&model.MenuItem{},
		&model.Reservation{},
		&model.Order{},
		&model.OrderCourse{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Tip{},
		&model.Supplier{},
		&model.InventoryItem{},
		&model.WineDetail{},
		&model.StockMovement{},
		&model.Shift{},
		&model.FinancialSetting{},
		&model.BusinessDay{},
		&model.EndOfDayClose{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	e := echo.New()
	router.Register(e, cfg, log, cacheClient, jwtService.Secret(), authHandler, userHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
