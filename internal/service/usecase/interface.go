package usecase

import (
	servicedto "petcare-backend/internal/service/dto"
)

// ServiceUsecase defines the service request operations
type ServiceUsecase interface {
	// CreateService records a new appointment request for an existing user
	CreateService(req *servicedto.CreateServiceRequest) (*servicedto.ServiceResponse, error)

	// ListAll returns every service request with its owner summary
	ListAll() ([]servicedto.ServiceWithOwnerResponse, error)

	// ListByUser returns the service requests of one user
	ListByUser(userID uint) ([]servicedto.ServiceResponse, error)
}
