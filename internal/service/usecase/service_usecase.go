package usecase

import (
	"errors"
	"time"

	authrepo "petcare-backend/internal/auth/repository"
	servicedomain "petcare-backend/internal/service/domain"
	servicedto "petcare-backend/internal/service/dto"
	"petcare-backend/internal/service/repository"
)

var (
	ErrOwnerNotFound = errors.New("user not found")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

// serviceUsecase implements ServiceUsecase interface
type serviceUsecase struct {
	serviceRepo repository.ServiceRepository
	userRepo    authrepo.UserRepository
}

// NewServiceUsecase creates a new instance of serviceUsecase
func NewServiceUsecase(serviceRepo repository.ServiceRepository, userRepo authrepo.UserRepository) ServiceUsecase {
	return &serviceUsecase{
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
	}
}

func (u *serviceUsecase) CreateService(req *servicedto.CreateServiceRequest) (*servicedto.ServiceResponse, error) {
	owner, err := u.userRepo.FindByID(req.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	service := &servicedomain.Service{
		UserID:      req.UserID,
		PetName:     req.PetName,
		ServiceType: req.ServiceType,
		Date:        date,
		Notes:       req.Notes,
	}

	if err := u.serviceRepo.Create(service); err != nil {
		return nil, err
	}

	resp := servicedto.NewServiceResponse(service)
	return &resp, nil
}

func (u *serviceUsecase) ListAll() ([]servicedto.ServiceWithOwnerResponse, error) {
	services, err := u.serviceRepo.FindAllWithOwner()
	if err != nil {
		return nil, err
	}

	responses := make([]servicedto.ServiceWithOwnerResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, servicedto.NewServiceWithOwnerResponse(svc))
	}
	return responses, nil
}

func (u *serviceUsecase) ListByUser(userID uint) ([]servicedto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]servicedto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, servicedto.NewServiceResponse(svc))
	}
	return responses, nil
}

// parseDate accepts the plain date form first and falls back to RFC3339 so
// clients sending full timestamps still get a date value stored.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
