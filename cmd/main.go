package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	"github.com/luckyluck/event-booking-app/internal/app"
	"github.com/luckyluck/event-booking-app/internal/clock"
	"github.com/luckyluck/event-booking-app/internal/config"
	"github.com/luckyluck/event-booking-app/internal/graph"
	"github.com/luckyluck/event-booking-app/internal/handlers"
	"github.com/luckyluck/event-booking-app/internal/routes"
	"github.com/luckyluck/event-booking-app/internal/storage/postgres"
	"github.com/luckyluck/event-booking-app/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	pgCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	pgCfg.ConnConfig.RuntimeParams["application_name"] = "event-booking-backend"
	pgCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	pgCfg.MaxConns = cfg.Database.MaxConns
	pgCfg.MinConns = cfg.Database.MinConns
	pgCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), pgCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
		if err := migrations.Apply(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}
	log.Println("Connected to the DB")

	// --- Services and resolvers ---

	eventRepo := postgres.NewEventRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clk := clock.NewSystem()

	eventService := app.NewEventService(eventRepo, userRepo, clk)
	userService := app.NewUserService(userRepo, app.NewBcryptHasher(cfg.Auth.BcryptCost), clk)

	schema := graph.NewSchema(eventService, userService)

	graphqlHandler := handlers.NewGraphQLHandler(schema, cfg.GraphQL.EnableGraphiQL)
	healthHandler := handlers.NewHealthHandler(pool)

	// Setup all routes
	routes.SetupRoutes(graphqlHandler, healthHandler, cfg)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(http.DefaultServeMux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
