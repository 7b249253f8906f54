package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/jobbot-gateway/internal/middleware"
	"github.com/maxviazov/jobbot-gateway/internal/service"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Users        service.UserService
	Listings     service.ListingService
	Applications service.ApplicationService
	Callbacks    service.CallbackService
}

// Register mounts all public routes on the given engine.
// Probes and docs stay open; everything under /api/v1/users requires the internal token.
func Register(r *gin.Engine, checks map[string]Pinger, svc Services, internalToken string, logger zerolog.Logger) {
	useJSONFieldNames()
	h := NewHealthHandler(checks)

	r.Use(middleware.RequestID(), middleware.AccessLog(logger))

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}

		users := api.Group("/users", middleware.InternalToken(internalToken))
		NewUserHandler(svc.Users).Register(users)
		NewListingHandler(svc.Listings).Register(users)
		NewApplicationHandler(svc.Applications).Register(users)
		NewCallbackHandler(svc.Callbacks).Register(users)
	}
}
