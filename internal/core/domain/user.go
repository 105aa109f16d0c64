package domain

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  Role   `json:"role"`
}

type Doctor struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
}

// Специализация врача или "General", если она не заполнена.
// Подпись для справочника врачей и формы брони
func (d Doctor) SpecializationOrGeneral() string {
	if d.Specialization == "" {
		return "General"
	}
	return d.Specialization
}

// Подпись специализации в истории записей: незаполненная
// специализация там подписывается как "General Practice"
func (d Doctor) SpecializationOrGeneralPractice() string {
	if d.Specialization == "" {
		return "General Practice"
	}
	return d.Specialization
}

// Профиль пациента вместе с его записями на прием,
// как его отдает GET /api/patients/profile
type Profile struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Appointments []Appointment `json:"appointments"`
}
