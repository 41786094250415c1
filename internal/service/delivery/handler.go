package delivery

import (
	"errors"
	"net/http"
	"strconv"

	servicedto "petcare-backend/internal/service/dto"
	"petcare-backend/internal/service/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles service request HTTP requests
type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(serviceUsecase usecase.ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
	}
}

// CreateService records a new appointment request
// POST /services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req servicedto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all required fields"})
		return
	}

	service, err := h.serviceUsecase.CreateService(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOwnerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service request"})
		}
		return
	}

	c.JSON(http.StatusCreated, service)
}

// ListServices returns every service request with its owner summary
// GET /services
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.serviceUsecase.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list service requests"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListServicesByUser returns the service requests of one user
// GET /services/:userId
func (h *ServiceHandler) ListServicesByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id must be a number"})
		return
	}

	services, err := h.serviceUsecase.ListByUser(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list service requests"})
		return
	}

	c.JSON(http.StatusOK, services)
}
