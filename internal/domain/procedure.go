package domain

import "time"

// Procedure represents a service definition with a bill of materials
type Procedure struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64

	// Materials ordered bill-of-materials consumed per procedure
	Materials []BOMItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BOMItem одна позиция из состава процедуры
type BOMItem struct {
	MaterialID      int64
	QtyPerProcedure float64
}

// Material represents a consumable with stock on hand
// Остаток может уходить в минус - на уровне данных пол не контролируется
type Material struct {
	ID          int64
	Name        string
	StockOnHand float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
