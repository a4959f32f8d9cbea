package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"trading-service/internal/api"
	"trading-service/internal/config"
	"trading-service/internal/events"
	"trading-service/internal/quote"
	"trading-service/internal/repository"
	"trading-service/internal/service"
	"trading-service/internal/session"
	"trading-service/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB")
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB after retries: %v", err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := connectDB(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := migrations.AutoMigrateUsers(3, db); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}
	if err := migrations.AutoMigrateHoldings(3, db); err != nil {
		log.Fatalf("Failed to migrate holdings table: %v", err)
	}
	if err := migrations.AutoMigrateTransactions(3, db); err != nil {
		log.Fatalf("Failed to migrate transactions table: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter("trade-topic")

	userRepo := repository.NewUserRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	quoteClient := quote.NewClient(cfg.QuoteBaseURL, cfg.QuoteAPIKey)
	sessionStore := session.NewStore(rdb)
	tradePublisher := events.NewTradePublisher(kafkaWriter)

	authService := service.NewAuthService(userRepo, sessionStore, []byte(cfg.JWTSecret))
	tradingService := service.NewTradingService(userRepo, holdingRepo, transactionRepo, tradeRepo, quoteClient, tradePublisher)
	portfolioService := service.NewPortfolioService(userRepo, holdingRepo, quoteClient)

	authHandler := api.NewAuthHandler(authService)
	tradingHandler := api.NewTradingHandler(tradingService)
	portfolioHandler := api.NewPortfolioHandler(portfolioService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "trading-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(401, map[string]string{"error": "must be logged in"})
		},
	}

	authed := e.Group("", echojwt.WithConfig(jwtConfig), api.SessionGuard(authService))
	authed.GET("/", portfolioHandler.Index)
	authed.GET("/quote", portfolioHandler.Quote)
	authed.POST("/quote", portfolioHandler.Quote)
	authed.POST("/buy", tradingHandler.Buy)
	authed.POST("/sell", tradingHandler.Sell)
	authed.GET("/history", tradingHandler.History)
	authed.POST("/contribute", tradingHandler.Contribute)
	authed.POST("/logout", authHandler.Logout)

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
