package api

import (
	"errors"
	"net/http"

	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/ShadowMirage/Freight-Management/internal/service/matching"
	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	service matching.MatchingUseCase
}

type selectionRequest struct {
	Phone     string `json:"phone" binding:"required"`
	Selection int    `json:"selection" binding:"required,gte=1"`
}

func NewMatchingHandler(service matching.MatchingUseCase) *MatchingHandler {
	return &MatchingHandler{service: service}
}

func (h *MatchingHandler) Register(router *gin.RouterGroup) {
	router.GET("/trucks/:id/loads", h.loadsForTruck)
	router.GET("/loads/:id/trucks", h.trucksForLoad)
	router.POST("/selection", h.resolveSelection)
}

// loadsForTruck presents candidates; with ?phone= the list is also remembered
// so the caller can later book by selection index.
func (h *MatchingHandler) loadsForTruck(c *gin.Context) {
	truck, candidates, err := h.service.LoadsForTruck(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if phone := c.Query("phone"); phone != "" {
		ids := make([]string, 0, len(candidates))
		for _, l := range candidates {
			ids = append(ids, l.ID)
		}
		if err := h.service.RememberMatches(c.Request.Context(), phone, "truck", truck.ID, ids); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"truck": truck, "loads": candidates})
}

func (h *MatchingHandler) trucksForLoad(c *gin.Context) {
	load, candidates, err := h.service.TrucksForLoad(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if phone := c.Query("phone"); phone != "" {
		ids := make([]string, 0, len(candidates))
		for _, t := range candidates {
			ids = append(ids, t.ID)
		}
		if err := h.service.RememberMatches(c.Request.Context(), phone, "load", load.ID, ids); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"load": load, "trucks": candidates})
}

func (h *MatchingHandler) resolveSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.ResolveSelection(c.Request.Context(), req.Phone, req.Selection)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrNoPendingMatches):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, matching.ErrSelectionOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
