package domain

import (
	"time"

	authdomain "petcare-backend/internal/auth/domain"
)

// Service represents a request for a pet-care appointment (grooming, vet
// visit, etc.) placed by a user.
type Service struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"index;not null"`
	User        authdomain.User `json:"-" gorm:"foreignKey:UserID"`
	PetName     string          `json:"pet_name" gorm:"not null"`
	ServiceType string          `json:"service_type" gorm:"not null"`
	Date        time.Time       `json:"date" gorm:"type:date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
