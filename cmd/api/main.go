package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	eventsHttp "formsight/internal/events/adapters/http/fiber"
	eventsRepoPg "formsight/internal/events/adapters/postgres"
	eventsUsecase "formsight/internal/events/core/usecase"

	insightsHttp "formsight/internal/insights/adapters/http/fiber"
	insightsRepoPg "formsight/internal/insights/adapters/postgres"
	insightsUsecase "formsight/internal/insights/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "formsight/docs"
)

// @title formsight API
// @version 1.0
// @description Form-interaction telemetry: event ingestion and field abandonment insights
// @BasePath /
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("failed to open postgres", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping postgres", zap.Error(err))
	}

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
	eventReader := insightsRepoPg.NewEventReader(insightsRepoPg.NewSQLDB(db))

	// Usecases
	ingestEventsUC := eventsUsecase.NewIngestEventsUseCase(eventRepository)
	getInsightsUC := insightsUsecase.NewGetInsightsUseCase(eventReader)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// The capture agent posts cross-origin from customer pages; the browser
	// preflights those requests.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST,GET,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// write path
	eventsHandler := eventsHttp.NewEventHandler(ingestEventsUC, log)
	app.Post("/collect", eventsHandler.Collect)

	// read path
	insightsHandler := insightsHttp.NewInsightsHandler(getInsightsUC)
	app.Get("/insights", insightsHandler.GetInsights)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Warn("fiber stopped", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("fiber shutdown error", zap.Error(err))
	}

	log.Info("server exiting")
}
