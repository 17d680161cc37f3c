package main

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/theatre-reservation/internal/catalog"
	"github.com/iliyamo/theatre-reservation/internal/config"
	"github.com/iliyamo/theatre-reservation/internal/engine"
	"github.com/iliyamo/theatre-reservation/internal/handler"
	"github.com/iliyamo/theatre-reservation/internal/middleware"
	"github.com/iliyamo/theatre-reservation/internal/queue"
	"github.com/iliyamo/theatre-reservation/internal/router"
	queue_publisher "github.com/iliyamo/theatre-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	cat := loadCatalog(cfg)
	eng := engine.New(cat, newSeatMap(cfg, cat))

	h := handler.NewBookingHandler(cat, eng)
	h.EventsEnabled = cfg.EventsEnabled
	h.ExportFile = cfg.ExportFile
	h.TicketsDir = cfg.TicketsDir

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Redis-backed middlewares degrade to pass-throughs when the client
	// is nil, so an absent Redis never blocks startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e, h)

	if cfg.ConsumerEnabled {
		go func() {
			if err := queue.StartBookingConsumer(queue_publisher.BrokerURL()); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s backend=%s)", addr, cfg.Env, cfg.SeatMapBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog builds the show catalog from CATALOG_FILE when set,
// otherwise from the built-in demo list.  A broken catalog file is
// fatal: the service is useless without shows.
func loadCatalog(cfg config.Config) *catalog.Catalog {
	if cfg.CatalogFile == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("load catalog %s: %v", cfg.CatalogFile, err)
	}
	return cat
}

// newSeatMap selects the seat map backend for this deployment.  Both
// backends satisfy the same invariants; the grid variant additionally
// rejects labels outside each show's layout.
func newSeatMap(cfg config.Config, cat *catalog.Catalog) engine.SeatMap {
	switch strings.ToLower(cfg.SeatMapBackend) {
	case "grid":
		return engine.NewGridSeatMap(cat.List())
	case "open", "":
		return engine.NewOpenSeatMap()
	default:
		log.Fatalf("unknown SEATMAP_BACKEND %q (want open or grid)", cfg.SeatMapBackend)
		return nil
	}
}
