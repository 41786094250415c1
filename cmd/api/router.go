package api

import (
	"net/http"

	"petcare-backend/internal/auth/delivery"
	authUsecase "petcare-backend/internal/auth/usecase"
	serviceDelivery "petcare-backend/internal/service/delivery"
	serviceUsecase "petcare-backend/internal/service/usecase"
	"petcare-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint on the engine. Paths are unversioned
// and mounted at the root, matching the public API contract.
func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, serviceUc serviceUsecase.ServiceUsecase, loginLimiter ratelimit.Limiter) {
	authHandler := delivery.NewAuthHandler(authUc, loginLimiter)
	serviceHandler := serviceDelivery.NewServiceHandler(serviceUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Accounts
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
	r.GET("/users", delivery.AuthMiddleware(authUc), authHandler.ListUsers)

	// Service requests. Creation and listing deliberately carry no token
	// check; see DESIGN.md for the threat-model decision.
	r.POST("/services", serviceHandler.CreateService)
	r.GET("/services", serviceHandler.ListServices)
	r.GET("/services/:userId", serviceHandler.ListServicesByUser)
}
