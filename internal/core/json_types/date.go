package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Календарная дата без времени
type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsed, err := time.ParseInLocation(DateLayout, str, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse date: %v", err)
	}

	*t = Date{Date: parsed}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(DateLayout))
}
