package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/ShadowMirage/Freight-Management/internal/service/loads"
	"github.com/gin-gonic/gin"
)

type LoadHandler struct {
	service loads.LoadUseCase
}

type createLoadRequest struct {
	ShipperID  string    `json:"shipper_id" binding:"required"`
	PickupCity string    `json:"pickup_city" binding:"required"`
	DropCity   string    `json:"drop_city" binding:"required"`
	PickupLat  float64   `json:"pickup_lat"`
	PickupLng  float64   `json:"pickup_lng"`
	DropLat    float64   `json:"drop_lat"`
	DropLng    float64   `json:"drop_lng"`
	Weight     float64   `json:"weight" binding:"required,gt=0"`
	Category   string    `json:"category"`
	Deadline   time.Time `json:"deadline" binding:"required"`
}

func NewLoadHandler(service loads.LoadUseCase) *LoadHandler {
	return &LoadHandler{service: service}
}

func (h *LoadHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *LoadHandler) create(c *gin.Context) {
	var req createLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	load := &domain.Load{
		ShipperID:  req.ShipperID,
		PickupCity: req.PickupCity,
		DropCity:   req.DropCity,
		PickupLat:  req.PickupLat,
		PickupLng:  req.PickupLng,
		DropLat:    req.DropLat,
		DropLng:    req.DropLng,
		Weight:     req.Weight,
		Category:   req.Category,
		Deadline:   req.Deadline,
	}
	if err := h.service.Create(c.Request.Context(), load); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, load)
}

func (h *LoadHandler) get(c *gin.Context) {
	load, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, load)
}

func (h *LoadHandler) list(c *gin.Context) {
	limit, offset := pagination(c)
	result, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
