package json_types

import (
	"encoding/json"
	"time"
)

// Формат даты-времени на проводе API клиники
const DateTimeLayout = "2006-01-02 15:04"

// Дата-время записи на прием. Raw хранит исходную строку:
// запись с неразбираемым временем не валит декодирование всего списка,
// она просто остается с нулевой датой и отбрасывается при разрешении слотов
type DateTime struct {
	Date time.Time
	Raw  string
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsed, err := time.ParseInLocation(DateTimeLayout, str, time.Local)
	if err != nil {
		// Пробуем RFC3339 на случай, если бекенд сменит формат
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			*t = DateTime{Raw: str}
			return nil
		}
	}

	*t = DateTime{Date: parsed, Raw: str}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(t.Raw)
	}
	return json.Marshal(t.Date.Format(DateTimeLayout))
}

// Время слота в формате HH:MM
func (t DateTime) HHMM() string {
	if t.Date.IsZero() {
		return ""
	}
	return t.Date.Format("15:04")
}

// Дата записи, усеченная до полуночи
func (t DateTime) DayStart() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, t.Date.Location())
}
