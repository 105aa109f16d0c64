package domain

type SortOrder string

const (
	SortNewestFirst SortOrder = "new"
	SortOldestFirst SortOrder = "old"
)

const FilterAll = "all"

// Фильтры истории записей. Активные фильтры применяются через логическое И
type AppointmentFilter struct {
	Status         string
	Specialization string
	DoctorName     string
	Sort           SortOrder
}

func NewAppointmentFilter() AppointmentFilter {
	return AppointmentFilter{
		Status:         FilterAll,
		Specialization: FilterAll,
		DoctorName:     FilterAll,
		Sort:           SortNewestFirst,
	}
}
