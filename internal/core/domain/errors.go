package domain

import (
	"errors"
	"fmt"
)

// Ошибки локальной валидации. Никакой запрос к удаленному API
// при них не отправляется
var (
	ErrDoctorRequired      = errors.New("doctor must be selected")
	ErrDateTimeRequired    = errors.New("date and time slot must be selected")
	ErrMalformedTime       = errors.New("malformed time, expected HH:MM")
	ErrMalformedDate       = errors.New("malformed date, expected YYYY-MM-DD")
	ErrNoSession           = errors.New("no active session")
	ErrAppointmentRequired = errors.New("existing appointment must be selected")
)

// Отказ удаленного API: статус ответа и сообщение из поля msg, если оно было
type RemoteError struct {
	StatusCode int
	Msg        string
}

func (e *RemoteError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("clinic api: unexpected status code: %d", e.StatusCode)
}
