package fully_booked_days

// Request модель запроса на расчёт полностью занятых дней месяца
type Request struct {
	Year  int
	Month int // 1-12
}

// Response список полностью занятых дней в формате YYYY-MM-DD
type Response struct {
	Days []string
}
