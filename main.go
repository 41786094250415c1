package main

import (
	"log"
	"time"

	api "petcare-backend/cmd/api"
	authdomain "petcare-backend/internal/auth/domain"
	authRepo "petcare-backend/internal/auth/repository"
	authUsecase "petcare-backend/internal/auth/usecase"
	servicedomain "petcare-backend/internal/service/domain"
	serviceRepo "petcare-backend/internal/service/repository"
	serviceUsecase "petcare-backend/internal/service/usecase"
	"petcare-backend/pkg/config"
	"petcare-backend/pkg/database"
	"petcare-backend/pkg/ratelimit"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas. The unique index on users.email is the
	// constraint that closes the register check-then-create race.
	if err := db.AutoMigrate(&authdomain.User{}, &servicedomain.Service{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	serviceRepository := serviceRepo.NewGormServiceRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	serviceUsecaseInstance := serviceUsecase.NewServiceUsecase(serviceRepository, userRepository)

	// Login rate limiter: Redis when configured, in-memory otherwise
	loginLimiter := ratelimit.NewLoginLimiter(cfg.RedisURL, 15*time.Minute, 10)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, serviceUsecaseInstance, loginLimiter, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
