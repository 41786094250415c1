package repository

import (
	servicedomain "petcare-backend/internal/service/domain"
)

// ServiceRepository defines the interface for service request data access
type ServiceRepository interface {
	// Create persists a new service request
	Create(service *servicedomain.Service) error

	// FindAllWithOwner returns every service request with its owning user
	// preloaded, newest first
	FindAllWithOwner() ([]*servicedomain.Service, error)

	// FindByUserID returns all service requests for one user, newest first
	FindByUserID(userID uint) ([]*servicedomain.Service, error)
}
