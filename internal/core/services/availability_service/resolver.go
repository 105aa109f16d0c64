package availability_service

import (
	"time"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	"github.com/suchimauz/clinic-booking-gateway/internal/utils"
)

// Resolve - чистое разрешение доступности: одинаковый список записей
// и дата всегда дают одинаковый результат, никакого I/O.
//
// Алгоритм:
//  1. все слоты каталога доступны;
//  2. для сегодняшней даты слоты с часом <= текущего недоступны
//     (бронь в прошлое и в текущий час запрещена);
//  3. запись врача на эту дату со статусом scheduled закрывает свой слот,
//     canceled - оставляет слот свободным и попадает в маппинг Reuse.
//
// Вторым значением возвращаются записи, чье время не удалось сопоставить
// с каталогом, - они не влияют на доступность, но их стоит залогировать
func Resolve(appointments []domain.Appointment, date, now time.Time) (*domain.Availability, []domain.Appointment) {
	slots := domain.SlotCatalog()
	reuse := make(map[string]int)
	day := utils.StartCurrentDay(date)

	// Сегодня нельзя бронировать прошедшие часы и текущий час
	if day.Equal(utils.StartCurrentDay(now)) {
		for i := range slots {
			if slotHour(slots[i].Time) <= now.Hour() {
				slots[i].IsAvailable = false
			}
		}
	}

	var skipped []domain.Appointment
	for _, appointment := range appointments {
		if appointment.Time.Date.IsZero() {
			skipped = append(skipped, appointment)
			continue
		}
		if !appointment.Time.DayStart().Equal(day) {
			continue
		}

		index := slotIndex(slots, appointment.Time.HHMM())
		if index < 0 {
			skipped = append(skipped, appointment)
			continue
		}

		switch appointment.Status {
		case domain.AppointmentStatusScheduled:
			slots[index].IsAvailable = false
		case domain.AppointmentStatusCanceled:
			reuse[slots[index].Time] = appointment.ID
		}
	}

	return &domain.Availability{
		Date:  json_types.Date{Date: day},
		Slots: slots,
		Reuse: reuse,
	}, skipped
}
