package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mountainmixology/cocktail-catering/internal/config"
	"github.com/mountainmixology/cocktail-catering/internal/handler"
	"github.com/mountainmixology/cocktail-catering/internal/middleware"
	"github.com/mountainmixology/cocktail-catering/internal/notify"
	"github.com/mountainmixology/cocktail-catering/internal/queue"
	"github.com/mountainmixology/cocktail-catering/internal/router"
	"github.com/mountainmixology/cocktail-catering/internal/store"
)

func main() {
	cfg := config.Load()

	// Notification pipeline: sink -> notifier -> store hooks. With no
	// broker configured the log sink reproduces the reference
	// behavior of printing the would-be email.
	notifications := store.NewNotificationStore()
	var sink notify.Sink = notify.LogSink{}
	if cfg.AMQPURL != "" {
		sink = notify.QueueSink{URL: cfg.AMQPURL}
		go func() {
			if err := queue.StartEmailConsumer(cfg.AMQPURL); err != nil {
				log.Printf("email consumer stopped: %v", err)
			}
		}()
	}
	notifier := notify.NewNotifier(sink, cfg.NotifyEmail, notifications)

	// Stores are built once here and handed to the handlers; nothing
	// reaches for them globally.
	bookings := store.NewBookingStore(notifier.BookingReceived)
	messages := store.NewContactStore(notifier.ContactReceived)
	cocktails := store.NewCocktailStore()
	store.SeedCocktails(cocktails)
	users := store.NewUserStore()
	tokens := store.NewTokenStore()

	// Redis is optional: a nil client turns the cache and the rate
	// limiter into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewCocktailHandler(cocktails), handler.NewBookingHandler(bookings), handler.NewContactHandler(messages), cache, limit)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens))
	router.RegisterAdmin(e, handler.NewAdminHandler(bookings, messages, notifications), cfg.JWTSecret)
	router.RegisterStatic(e, cfg.StaticDir)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
