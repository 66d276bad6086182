package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	appointmentuc "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create       *appointmentuc.CreateAppointment
	cancel       *appointmentuc.CancelAppointment
	setStatus    *appointmentuc.SetAppointmentStatus
	listCustomer *appointmentuc.ListCustomerAppointments
	listBarber   *appointmentuc.ListBarberAppointments
	availability *appointmentuc.GetAvailability
}

func NewAppointmentHandler(
	create *appointmentuc.CreateAppointment,
	cancel *appointmentuc.CancelAppointment,
	setStatus *appointmentuc.SetAppointmentStatus,
	listCustomer *appointmentuc.ListCustomerAppointments,
	listBarber *appointmentuc.ListBarberAppointments,
	availability *appointmentuc.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		cancel:       cancel,
		setStatus:    setStatus,
		listCustomer: listCustomer,
		listBarber:   listBarber,
		availability: availability,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	BarberID      uint     `json:"barber_id" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	ServiceID     string   `json:"service_id"`
	ExpectedPrice *float64 `json:"expected_price"`
	Notes         string   `json:"notes"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Availability (público) ---------

// GET /availability?barber_id=&date=&service_id=
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Informe barber_id numérico.")
		return
	}

	dateStr := c.Query("date")
	date, err := parseDate(dateStr)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:        uint(barberID),
		Date:            date,
		DateStr:         dateStr,
		ServicePublicID: c.Query("service_id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"date":      dateStr,
		"slots":     slots,
	})
}

// --------- Cliente ---------

// POST /appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	appointmentDate, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	customerID := c.GetUint(middleware.ContextUserID)

	result, err := h.create.Execute(c.Request.Context(), domain.CreateInput{
		CustomerID:      customerID,
		BarberID:        req.BarberID,
		AppointmentDate: appointmentDate,
		ServicePublicID: req.ServiceID,
		ExpectedPrice:   req.ExpectedPrice,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GET /appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID := c.GetUint(middleware.ContextUserID)

	items, err := h.listCustomer.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	customerID := c.GetUint(middleware.ContextUserID)

	if err := h.cancel.Execute(c.Request.Context(), uint(id), customerID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento cancelado."})
}

// --------- Barbeiro ---------

// GET /barber/appointments?status=&date=
func (h *AppointmentHandler) ListForBarber(c *gin.Context) {
	barberID := c.GetUint(middleware.ContextUserID)

	filter := domain.BarberListFilter{Status: c.Query("status")}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		filter.Date = &date
	}

	items, err := h.listBarber.Execute(c.Request.Context(), barberID, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

// PATCH /barber/appointments/:id/status
func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barberID := c.GetUint(middleware.ContextUserID)

	ap, err := h.setStatus.Execute(c.Request.Context(), uint(id), barberID, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
