package availability_service

import (
	"strconv"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// Час начала слота из строки "HH:MM"
func slotHour(hhmm string) int {
	if len(hhmm) < 2 {
		return -1
	}
	hour, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return -1
	}
	return hour
}

// Индекс слота каталога по времени "HH:MM", -1 если такого слота нет
func slotIndex(slots []domain.TimeSlot, hhmm string) int {
	for i, slot := range slots {
		if slot.Time == hhmm {
			return i
		}
	}
	return -1
}
