package out

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

type RegisterPatientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateAppointmentRequest struct {
	DoctorID        int    `json:"doctor_id"`
	AppointmentTime string `json:"appointment_time"`
	Notes           string `json:"notes"`
}

// Тело PUT /api/appointments/{id}. Поля-указатели не сериализуются,
// если не заданы: обновление только заметок не трогает расписание
type UpdateAppointmentRequest struct {
	AppointmentTime *string `json:"appointment_time,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// Порт удаленного API клиники. Шлюз - только клиент:
// вся персистентность и смена статусов живут на стороне бекенда
type ClinicPort interface {
	RegisterPatient(ctx context.Context, req RegisterPatientRequest) error
	Login(ctx context.Context, email, password string) (string, error)

	GetProfile(ctx context.Context, token string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) error

	GetDoctors(ctx context.Context) ([]domain.Doctor, error)
	GetDoctorAppointments(ctx context.Context, token string, doctorID int) ([]domain.Appointment, error)

	CreateAppointment(ctx context.Context, token string, req CreateAppointmentRequest) (int, error)
	UpdateAppointment(ctx context.Context, token string, appointmentID int, req UpdateAppointmentRequest) error
	CancelAppointment(ctx context.Context, token string, appointmentID int) error
}
