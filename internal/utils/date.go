package utils

import (
	"fmt"
	"regexp"
	"time"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

var timeRegexp = regexp.MustCompile(`^\d{2}:\d{2}$`)

// StartCurrentDay возвращает дату, усеченную до полуночи, таймзона остается прежней
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(str string) (time.Time, error) {
	parsed, err := time.ParseInLocation(json_types.DateLayout, str, time.Local)
	if err != nil {
		return time.Time{}, domain.ErrMalformedDate
	}
	return parsed, nil
}

// FormatDateTime собирает каноническую строку "YYYY-MM-DD HH:MM" для API клиники.
// Время обязано быть с ведущими нулями, иначе операция падает локально,
// до какого-либо сетевого вызова
func FormatDateTime(date time.Time, hhmm string) (string, error) {
	if date.IsZero() {
		return "", domain.ErrMalformedDate
	}
	if !timeRegexp.MatchString(hhmm) {
		return "", domain.ErrMalformedTime
	}
	return fmt.Sprintf("%s %s", date.Format(json_types.DateLayout), hhmm), nil
}
