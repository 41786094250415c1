package repository

import (
	"time"

	servicedomain "petcare-backend/internal/service/domain"

	"gorm.io/gorm"
)

// gormServiceRepository implements ServiceRepository using GORM
type gormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM-based ServiceRepository
func NewGormServiceRepository(db *gorm.DB) ServiceRepository {
	return &gormServiceRepository{db: db}
}

func (r *gormServiceRepository) Create(service *servicedomain.Service) error {
	service.CreatedAt = time.Now()
	return r.db.Create(service).Error
}

func (r *gormServiceRepository) FindAllWithOwner() ([]*servicedomain.Service, error) {
	var services []*servicedomain.Service
	err := r.db.Preload("User").Order("created_at DESC").Find(&services).Error
	return services, err
}

func (r *gormServiceRepository) FindByUserID(userID uint) ([]*servicedomain.Service, error) {
	var services []*servicedomain.Service
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&services).Error
	return services, err
}
