package domain

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

// Слот времени приема. Каталог слотов фиксированный,
// флаг IsAvailable пересчитывается на каждый запрос и нигде не хранится
type TimeSlot struct {
	Time        string `json:"time"`
	Label       string `json:"label"`
	IsAvailable bool   `json:"isAvailable"`
}

// Рабочие часы клиники
var slotCatalog = []TimeSlot{
	{Time: "09:00", Label: "9:00 AM"},
	{Time: "10:00", Label: "10:00 AM"},
	{Time: "11:00", Label: "11:00 AM"},
	{Time: "14:00", Label: "2:00 PM"},
	{Time: "15:00", Label: "3:00 PM"},
	{Time: "16:00", Label: "4:00 PM"},
}

// SlotCatalog возвращает свежую копию каталога, все слоты доступны
func SlotCatalog() []TimeSlot {
	catalog := make([]TimeSlot, len(slotCatalog))
	for i, slot := range slotCatalog {
		slot.IsAvailable = true
		catalog[i] = slot
	}
	return catalog
}

// Результат разрешения доступности слотов для врача на выбранную дату.
// Reuse - маппинг "время слота" -> id отмененной записи, занимавшей этот слот.
// Бронирование в такой слот идет через обновление существующей записи,
// а не через создание новой, чтобы не плодить дубли
type Availability struct {
	Date  json_types.Date `json:"date"`
	Slots []TimeSlot      `json:"slots"`
	Reuse map[string]int  `json:"reuse"`
}
