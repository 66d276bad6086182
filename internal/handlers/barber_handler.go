package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
)

type BarberHandler struct {
	repo domain.Repository
}

func NewBarberHandler(repo domain.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

type BarberDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GET /barbers: diretório público para o fluxo de agendamento.
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, BarberDTO{ID: b.ID, Name: b.Name})
	}

	httpresp.List(c, out)
}
