package dto

import (
	"time"

	servicedomain "petcare-backend/internal/service/domain"
)

type CreateServiceRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	PetName     string `json:"pet_name" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Notes       string `json:"notes"`
}

// OwnerSummary is the projection of the owning user attached to admin
// listings. It deliberately carries no password or role.
type OwnerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ServiceResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	PetName     string    `json:"pet_name"`
	ServiceType string    `json:"service_type"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceWithOwnerResponse struct {
	ServiceResponse
	Owner OwnerSummary `json:"user"`
}

func NewServiceResponse(svc *servicedomain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          svc.ID,
		UserID:      svc.UserID,
		PetName:     svc.PetName,
		ServiceType: svc.ServiceType,
		Date:        svc.Date.Format("2006-01-02"),
		Notes:       svc.Notes,
		CreatedAt:   svc.CreatedAt,
	}
}

func NewServiceWithOwnerResponse(svc *servicedomain.Service) ServiceWithOwnerResponse {
	return ServiceWithOwnerResponse{
		ServiceResponse: NewServiceResponse(svc),
		Owner: OwnerSummary{
			ID:    svc.User.ID,
			Name:  svc.User.Name,
			Email: svc.User.Email,
			Phone: svc.User.Phone,
		},
	}
}
