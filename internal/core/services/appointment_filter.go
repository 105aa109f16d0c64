package services

import (
	"sort"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// FilterAppointments применяет активные фильтры через логическое И
// и сортирует по дате-времени записи. Возвращает новый слайс,
// исходный список не трогает. Порядок записей с одинаковым временем
// не оговорен
func FilterAppointments(appointments []domain.AppointmentWithDoctor, filter domain.AppointmentFilter) []domain.AppointmentWithDoctor {
	filtered := make([]domain.AppointmentWithDoctor, 0, len(appointments))
	for _, appointment := range appointments {
		if filter.Status != "" && filter.Status != domain.FilterAll &&
			string(appointment.Status) != filter.Status {
			continue
		}
		if filter.Specialization != "" && filter.Specialization != domain.FilterAll {
			if appointment.Doctor == nil ||
				appointment.Doctor.SpecializationOrGeneralPractice() != filter.Specialization {
				continue
			}
		}
		if filter.DoctorName != "" && filter.DoctorName != domain.FilterAll {
			if appointment.Doctor == nil || appointment.Doctor.Name != filter.DoctorName {
				continue
			}
		}
		filtered = append(filtered, appointment)
	}

	sort.Slice(filtered, func(i, j int) bool {
		a := filtered[i].Time.Date
		b := filtered[j].Time.Date
		if filter.Sort == domain.SortOldestFirst {
			return a.Before(b)
		}
		return b.Before(a)
	})

	return filtered
}

// Уникальные специализации из текущего списка записей,
// в порядке первого появления
func DistinctSpecializations(appointments []domain.AppointmentWithDoctor) []string {
	seen := make(map[string]bool)
	specs := make([]string, 0)
	for _, appointment := range appointments {
		if appointment.Doctor == nil {
			continue
		}
		spec := appointment.Doctor.SpecializationOrGeneralPractice()
		if !seen[spec] {
			seen[spec] = true
			specs = append(specs, spec)
		}
	}
	return specs
}

// Уникальные имена врачей из текущего списка записей
func DistinctDoctorNames(appointments []domain.AppointmentWithDoctor) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, appointment := range appointments {
		if appointment.Doctor == nil || appointment.Doctor.Name == "" {
			continue
		}
		if !seen[appointment.Doctor.Name] {
			seen[appointment.Doctor.Name] = true
			names = append(names, appointment.Doctor.Name)
		}
	}
	return names
}

// Счетчики по статусам для шапки истории
func StatusCounts(appointments []domain.AppointmentWithDoctor) map[domain.AppointmentStatus]int {
	counts := make(map[domain.AppointmentStatus]int)
	for _, appointment := range appointments {
		counts[appointment.Status]++
	}
	return counts
}
