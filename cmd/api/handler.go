package api

import (
	authUsecase "petcare-backend/internal/auth/usecase"
	serviceUsecase "petcare-backend/internal/service/usecase"
	"petcare-backend/pkg/config"
	"petcare-backend/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	serviceUsecase serviceUsecase.ServiceUsecase
	loginLimiter   ratelimit.Limiter
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, serviceUc serviceUsecase.ServiceUsecase, loginLimiter ratelimit.Limiter, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		serviceUsecase: serviceUc,
		loginLimiter:   loginLimiter,
		config:         cfg,
	}
}

// Engine builds the configured gin engine. Split from Start so tests can
// drive it with httptest.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(h.config.AllowOrigins) == 1 && h.config.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = h.config.AllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(RequestID())

	SetupRoutes(r, h.authUsecase, h.serviceUsecase, h.loginLimiter)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
