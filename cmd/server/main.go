package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/storelab/commerce-api/internal/config"
	"github.com/storelab/commerce-api/internal/db"
	"github.com/storelab/commerce-api/internal/events"
	"github.com/storelab/commerce-api/internal/httpserver"
	"github.com/storelab/commerce-api/internal/logging"
	loggingmw "github.com/storelab/commerce-api/internal/middleware/logging"
	"github.com/storelab/commerce-api/internal/models"
	"github.com/storelab/commerce-api/internal/ordernum"
	"github.com/storelab/commerce-api/internal/repo"
	"github.com/storelab/commerce-api/internal/seed"
	"github.com/storelab/commerce-api/internal/service"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gormDB, err := db.Open(ctx, cfg.DSN())
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	if n, err := seed.Products(context.Background(), gormDB); err != nil {
		log.Fatalf("seed products: %v", err)
	} else if n > 0 {
		log.Printf("seeded %d products", n)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", "commerce-api", "env", cfg.AppEnv)
	slog.SetDefault(logger)

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	r := &repo.GormRepo{DB: gormDB}
	catalogSvc := &service.CatalogService{Repo: r}
	cartSvc := &service.CartService{Repo: r}
	orderSvc := &service.OrderService{Repo: r, Numbers: ordernum.NewGenerator()}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc, Producer: producer},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc, Producer: producer},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("commerce-api listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("commerce-api stopped")
}
