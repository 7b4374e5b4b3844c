package domain

import "time"

// Schedule операционное окно салона
// Инжектируется из конфигурации, чтобы тесты могли варьировать часы работы
type Schedule struct {
	OpenMinutes  int // Минуты от полуночи до открытия (480 для 08:00)
	CloseMinutes int // Минуты от полуночи до закрытия (1200 для 20:00)
	Workdays     map[time.Weekday]bool
}

// DefaultSchedule возвращает стандартное окно 08:00-20:00, понедельник-пятница
func DefaultSchedule() Schedule {
	return Schedule{
		OpenMinutes:  8 * 60,
		CloseMinutes: 20 * 60,
		Workdays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
		},
	}
}

// CapacityMinutes ёмкость одного рабочего дня в минутах
func (s Schedule) CapacityMinutes() int {
	return s.CloseMinutes - s.OpenMinutes
}

// IsWorkday returns true if the salon operates on the weekday of t
func (s Schedule) IsWorkday(t time.Time) bool {
	return s.Workdays[t.Weekday()]
}

// WithinOperatingWindow проверяет, что окно [start, end) целиком лежит
// в рабочем дне: один рабочий день недели, внутри часов работы
func (s Schedule) WithinOperatingWindow(start, end time.Time) bool {
	if !end.After(start) {
		return false
	}
	if !s.IsWorkday(start) {
		return false
	}

	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	sameDay := y1 == y2 && m1 == m2 && d1 == d2
	// Бронирование до полуночи включительно считается тем же днём
	if !sameDay {
		midnight := time.Date(y1, m1, d1, 0, 0, 0, 0, start.Location()).AddDate(0, 0, 1)
		if !end.Equal(midnight) {
			return false
		}
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if !sameDay {
		endMin = 24 * 60
	}

	return startMin >= s.OpenMinutes && endMin <= s.CloseMinutes
}

// DateFormat формат дат в API (YYYY-MM-DD)
const DateFormat = "2006-01-02"
