package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/schedule"
)

type ScheduleHandler struct {
	schedules *schedule.Service
}

func NewScheduleHandler(schedules *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// --------- Requests ---------

type CreateScheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    *bool  `json:"active"`
}

type UpdateScheduleRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Active    *bool   `json:"active"`
}

// --------- Público ---------

// GET /barbers/:id/schedule?date=
func (h *ScheduleHandler) GetForBarber(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Identificador inválido.")
		return
	}

	sched, err := h.schedules.GetByDate(c.Request.Context(), uint(barberID), c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if sched == nil {
		httperr.NotFound(c, "schedule_not_found", "Sem expediente cadastrado para essa data.")
		return
	}

	httpresp.OK(c, sched)
}

// --------- Barbeiro ---------

// GET /barber/schedules?start=&end=
func (h *ScheduleHandler) ListMine(c *gin.Context) {
	barberID := c.GetUint(middleware.ContextUserID)

	scheds, err := h.schedules.ListRange(
		c.Request.Context(),
		barberID,
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, scheds)
}

// POST /barber/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barberID := c.GetUint(middleware.ContextUserID)

	sched, err := h.schedules.Create(c.Request.Context(), barberID, schedule.CreateInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Active:    req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, sched)
}

// PUT /barber/schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barberID := c.GetUint(middleware.ContextUserID)

	sched, err := h.schedules.Update(c.Request.Context(), uint(id), barberID, schedule.UpdateInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Active:    req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, sched)
}

// DELETE /barber/schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	barberID := c.GetUint(middleware.ContextUserID)

	if err := h.schedules.Delete(c.Request.Context(), uint(id), barberID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agenda removida."})
}
