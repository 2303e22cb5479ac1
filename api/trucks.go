package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/ShadowMirage/Freight-Management/internal/service/trucks"
	"github.com/gin-gonic/gin"
)

type TruckHandler struct {
	service trucks.TruckUseCase
}

type createTruckRequest struct {
	DriverID        string    `json:"driver_id" binding:"required"`
	SourceCity      string    `json:"source_city" binding:"required"`
	DestinationCity string    `json:"destination_city" binding:"required"`
	SourceLat       float64   `json:"source_lat"`
	SourceLng       float64   `json:"source_lng"`
	DestLat         float64   `json:"dest_lat"`
	DestLng         float64   `json:"dest_lng"`
	DepartureTime   time.Time `json:"departure_time" binding:"required"`
	CapacityTotal   float64   `json:"capacity_total" binding:"required,gt=0"`
}

func NewTruckHandler(service trucks.TruckUseCase) *TruckHandler {
	return &TruckHandler{service: service}
}

func (h *TruckHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/open", h.listOpen)
	router.GET("/:id", h.get)
}

func (h *TruckHandler) create(c *gin.Context) {
	var req createTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	truck := &domain.Truck{
		DriverID:          req.DriverID,
		SourceCity:        req.SourceCity,
		DestinationCity:   req.DestinationCity,
		SourceLat:         req.SourceLat,
		SourceLng:         req.SourceLng,
		DestLat:           req.DestLat,
		DestLng:           req.DestLng,
		DepartureTime:     req.DepartureTime,
		CapacityTotal:     req.CapacityTotal,
		CapacityAvailable: req.CapacityTotal,
	}
	if err := h.service.Create(c.Request.Context(), truck); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, truck)
}

func (h *TruckHandler) get(c *gin.Context) {
	truck, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *TruckHandler) list(c *gin.Context) {
	limit, offset := pagination(c)
	result, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TruckHandler) listOpen(c *gin.Context) {
	result, err := h.service.ListOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
