package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/studentlife/club-directory/internal/config"
	"github.com/studentlife/club-directory/internal/database"
	"github.com/studentlife/club-directory/internal/handler"
	"github.com/studentlife/club-directory/internal/middleware"
	"github.com/studentlife/club-directory/internal/queue"
	"github.com/studentlife/club-directory/internal/repository"
	"github.com/studentlife/club-directory/internal/router"
)

func main() {
	// Load .env before anything reads the environment.  Missing file is
	// fine; deployments set real variables.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unreachable: response cache and rate limiting disabled")
	}

	var audit *queue.Publisher
	if cfg.AMQPURL != "" {
		audit = queue.NewPublisher(cfg.AMQPURL)
		go func() {
			if err := queue.StartAuditConsumer(cfg.AMQPURL); err != nil {
				log.Printf("audit consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewErrorHandler(cfg.Production())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	clubs := handler.NewClubHandler(repository.NewClubRepo(db), audit)
	categories := handler.NewCategoryHandler(repository.NewCategoryRepo(db))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	router.RegisterRoutes(e, clubs, categories, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
