package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
)

type DashboardController struct {
	accounts     in.AccountUseCase
	appointments in.AppointmentListUseCase
}

func NewDashboardController(accounts in.AccountUseCase, appointments in.AppointmentListUseCase) *DashboardController {
	return &DashboardController{
		accounts:     accounts,
		appointments: appointments,
	}
}

func (c *DashboardController) RegisterRoutes(router *gin.Engine, sessionAuth gin.HandlerFunc) {
	// Справочник врачей открыт: он нужен форме брони еще до логина
	router.GET("/api/v1/doctors", c.doctors)

	api := router.Group("/api/v1")
	api.Use(sessionAuth)
	{
		api.GET("/profile", c.profile)
		api.PUT("/profile", c.updateProfile)
		api.GET("/appointments", c.history)
	}
}

func (c *DashboardController) profile(ctx *gin.Context) {
	profile, err := c.accounts.GetProfile(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		respondError(ctx, err, "failed to load profile")
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func (c *DashboardController) updateProfile(ctx *gin.Context) {
	var input in.ProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.accounts.UpdateProfile(ctx.Request.Context(), currentSession(ctx), input); err != nil {
		respondError(ctx, err, "failed to update profile")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "profile updated successfully"})
}

func (c *DashboardController) history(ctx *gin.Context) {
	filter := domain.NewAppointmentFilter()
	if status := ctx.Query("status"); status != "" {
		filter.Status = status
	}
	if spec := ctx.Query("specialization"); spec != "" {
		filter.Specialization = spec
	}
	if doctor := ctx.Query("doctor"); doctor != "" {
		filter.DoctorName = doctor
	}
	if sortOrder := ctx.Query("sort"); sortOrder != "" {
		filter.Sort = domain.SortOrder(sortOrder)
	}

	result, err := c.appointments.GetHistory(ctx.Request.Context(), currentSession(ctx), filter)
	if err != nil {
		respondError(ctx, err, "failed to load appointments")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *DashboardController) doctors(ctx *gin.Context) {
	directory, err := c.appointments.SearchDoctors(ctx.Request.Context(), ctx.Query("q"), ctx.Query("specialization"))
	if err != nil {
		respondError(ctx, err, "failed to load doctors")
		return
	}

	ctx.JSON(http.StatusOK, directory)
}
