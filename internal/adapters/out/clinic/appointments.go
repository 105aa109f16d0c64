package clinic

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type createAppointmentResponse struct {
	Msg           string `json:"msg"`
	AppointmentID int    `json:"appointment_id"`
}

func (a *ClinicAdapter) GetDoctors(ctx context.Context) ([]domain.Doctor, error) {
	a.logger.Debug("clinic.doctors.fetch", out.LogFields{})

	var doctors []domain.Doctor
	if err := a.do(ctx, http.MethodGet, "/api/doctors", "", nil, &doctors); err != nil {
		a.logger.Error("clinic.doctors.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("clinic.doctors.fetch_success", out.LogFields{
		"count": len(doctors),
	})
	return doctors, nil
}

func (a *ClinicAdapter) GetDoctorAppointments(ctx context.Context, token string, doctorID int) ([]domain.Appointment, error) {
	a.logger.Debug("clinic.doctor_appointments.fetch", out.LogFields{
		"doctorId": doctorID,
	})

	var appointments []domain.Appointment
	path := fmt.Sprintf("/api/doctors/%d/appointments", doctorID)
	if err := a.do(ctx, http.MethodGet, path, token, nil, &appointments); err != nil {
		a.logger.Error("clinic.doctor_appointments.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("clinic.doctor_appointments.fetch_success", out.LogFields{
		"doctorId": doctorID,
		"count":    len(appointments),
	})
	return appointments, nil
}

func (a *ClinicAdapter) CreateAppointment(ctx context.Context, token string, req out.CreateAppointmentRequest) (int, error) {
	a.logger.Info("clinic.appointment.create", out.LogFields{
		"doctorId":        req.DoctorID,
		"appointmentTime": req.AppointmentTime,
	})

	var resp createAppointmentResponse
	if err := a.do(ctx, http.MethodPost, "/api/appointments/create", token, req, &resp); err != nil {
		a.logger.Error("clinic.appointment.create_failed", out.LogFields{
			"doctorId": req.DoctorID,
			"error":    err.Error(),
		})
		return 0, err
	}

	return resp.AppointmentID, nil
}

func (a *ClinicAdapter) UpdateAppointment(ctx context.Context, token string, appointmentID int, req out.UpdateAppointmentRequest) error {
	a.logger.Info("clinic.appointment.update", out.LogFields{
		"appointmentId": appointmentID,
	})

	path := fmt.Sprintf("/api/appointments/%d", appointmentID)
	if err := a.do(ctx, http.MethodPut, path, token, req, nil); err != nil {
		a.logger.Error("clinic.appointment.update_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return err
	}
	return nil
}

func (a *ClinicAdapter) CancelAppointment(ctx context.Context, token string, appointmentID int) error {
	a.logger.Info("clinic.appointment.cancel", out.LogFields{
		"appointmentId": appointmentID,
	})

	path := fmt.Sprintf("/api/appointments/%d", appointmentID)
	if err := a.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		a.logger.Error("clinic.appointment.cancel_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return err
	}
	return nil
}
