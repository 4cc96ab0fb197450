package routes

import (
	"net/http"

	"github.com/luckyluck/event-booking-app/internal/config"
	"github.com/luckyluck/event-booking-app/internal/handlers"
	"github.com/luckyluck/event-booking-app/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(graphqlHandler *handlers.GraphQLHandler, healthHandler *handlers.HealthHandler, cfg *config.Config) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// GraphQL endpoint (bearer token optional; mutations that need a
	// caller reject unauthenticated requests in the resolver)
	http.HandleFunc("/graphql", middleware.Identity(graphqlHandler.GraphQL, &cfg.JWT))

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Event booking backend is running."))
}
