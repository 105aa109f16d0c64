package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/utils"
)

type BookingController struct {
	availability in.AvailabilityUseCase
	booking      in.BookingUseCase
}

func NewBookingController(availability in.AvailabilityUseCase, booking in.BookingUseCase) *BookingController {
	return &BookingController{
		availability: availability,
		booking:      booking,
	}
}

func (c *BookingController) RegisterRoutes(router *gin.Engine, sessionAuth gin.HandlerFunc) {
	api := router.Group("/api/v1")
	api.Use(sessionAuth)
	{
		api.GET("/doctors/:doctorId/slots", c.doctorSlots)
		api.POST("/appointments", c.bookAppointment)
		api.PUT("/appointments/:id", c.updateAppointment)
		api.DELETE("/appointments/:id", c.cancelAppointment)
	}
}

// Тело брони. reuseAppointmentId - id отмененной записи из маппинга Reuse,
// бронь с ним уходит как обновление, а не как создание
type bookAppointmentRequest struct {
	DoctorID           int    `json:"doctorId"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Notes              string `json:"notes"`
	ReuseAppointmentID int    `json:"reuseAppointmentId"`
}

type updateAppointmentRequest struct {
	DoctorID  int    `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
	NotesOnly bool   `json:"notesOnly"`
}

func (c *BookingController) doctorSlots(ctx *gin.Context) {
	doctorID, err := strconv.Atoi(ctx.Param("doctorId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	date, err := utils.ParseDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	availability, err := c.availability.GetDoctorSlots(ctx.Request.Context(), currentSession(ctx), doctorID, date)
	if err != nil {
		respondError(ctx, err, "failed to load doctor's schedule")
		return
	}

	ctx.JSON(http.StatusOK, availability)
}

func (c *BookingController) bookAppointment(ctx *gin.Context) {
	var req bookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.booking.Book(ctx.Request.Context(), currentSession(ctx), in.BookingInput{
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		AppointmentID: req.ReuseAppointmentID,
	})
	if err != nil {
		respondError(ctx, err, "failed to book appointment")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, result)
}

func (c *BookingController) updateAppointment(ctx *gin.Context) {
	appointmentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	var req updateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.booking.Book(ctx.Request.Context(), currentSession(ctx), in.BookingInput{
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		AppointmentID: appointmentID,
		NotesOnly:     req.NotesOnly,
	})
	if err != nil {
		respondError(ctx, err, "failed to update appointment")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *BookingController) cancelAppointment(ctx *gin.Context) {
	appointmentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	// Врач нужен только для точечной инвалидации кэша, он может быть неизвестен
	doctorID, _ := strconv.Atoi(ctx.Query("doctorId"))

	if err := c.booking.Cancel(ctx.Request.Context(), currentSession(ctx), appointmentID, doctorID); err != nil {
		respondError(ctx, err, "failed to cancel appointment")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "appointment canceled"})
}
