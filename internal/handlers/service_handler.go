package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/catalog"
)

type ServiceHandler struct {
	catalog *catalog.Catalog
}

func NewServiceHandler(cat *catalog.Catalog) *ServiceHandler {
	return &ServiceHandler{catalog: cat}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
}

// --------- Público ---------

// GET /services: catálogo ativo, visível sem login.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context(), false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

// GET /services/:id
func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

// --------- Barbeiro ---------

// GET /barber/services: inclui os desativados.
func (h *ServiceHandler) ListAll(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context(), true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

// POST /barber/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)

	svc, err := h.catalog.Create(c.Request.Context(), actorID, catalog.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// PUT /barber/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)

	svc, err := h.catalog.Update(c.Request.Context(), actorID, c.Param("id"), catalog.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, svc)
}

// DELETE /barber/services/:id: soft delete.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	actorID := c.GetUint(middleware.ContextUserID)

	if err := h.catalog.Deactivate(c.Request.Context(), actorID, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Serviço desativado."})
}

// POST /barber/services/:id/restore
func (h *ServiceHandler) Restore(c *gin.Context) {
	actorID := c.GetUint(middleware.ContextUserID)

	if err := h.catalog.Restore(c.Request.Context(), actorID, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Serviço reativado."})
}
