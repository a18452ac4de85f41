package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/show-booking/internal/config"
	"github.com/iliyamo/show-booking/internal/database"
	"github.com/iliyamo/show-booking/internal/handler"
	"github.com/iliyamo/show-booking/internal/middleware"
	"github.com/iliyamo/show-booking/internal/queue"
	"github.com/iliyamo/show-booking/internal/repository"
	"github.com/iliyamo/show-booking/internal/router"
	"github.com/iliyamo/show-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	users := repository.NewUserRepo()
	wallets := repository.NewWalletRepo()
	shows := repository.NewShowRepo()
	bookings := repository.NewBookingRepo()

	if err := database.Seed(shows, cfg.TheatresCSV, cfg.ShowsCSV); err != nil {
		log.Fatalf("seed inventory: %v", err)
	}

	var events service.EventPublisher
	if cfg.QueueOn {
		events = queue.NewPublisher(cfg.QueueURL)
		go queue.StartConsumer(cfg.QueueURL)
	}
	bookingSvc := service.NewBookingService(users, wallets, shows, bookings, events)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and response cache disabled")
	}
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))
	browseCache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAPI(e,
		handler.NewUserHandler(users, wallets, bookingSvc),
		handler.NewWalletHandler(users, wallets),
		handler.NewShowHandler(shows),
		handler.NewBookingHandler(bookingSvc),
		browseCache,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
