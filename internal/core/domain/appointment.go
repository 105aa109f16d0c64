package domain

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Запись на прием в том виде, в котором ее отдает API клиники.
// ID назначается сервером, до создания записи его нет.
type Appointment struct {
	ID        int                 `json:"id"`
	PatientID int                 `json:"patient_id,omitempty"`
	DoctorID  int                 `json:"doctor_id,omitempty"`
	Time      json_types.DateTime `json:"appointment_time"`
	Status    AppointmentStatus   `json:"status"`
	Notes     string              `json:"notes,omitempty"`
}

// Запись на прием, обогащенная данными врача
// Джойн выполняется на стороне шлюза по doctor_id
type AppointmentWithDoctor struct {
	Appointment
	Doctor *Doctor `json:"doctor,omitempty"`
}
