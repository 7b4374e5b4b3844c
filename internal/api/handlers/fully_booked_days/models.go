package fully_booked_days

// FullyBookedDaysResponse HTTP response model
type FullyBookedDaysResponse struct {
	Days []string `json:"days"` // даты YYYY-MM-DD
}
