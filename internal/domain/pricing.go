package domain

// DiscountTable скидки по уровням лояльности, доля от цены (0.2 = 20%)
// Инжектируется из конфигурации
type DiscountTable map[LoyaltyTier]float64

// DefaultDiscounts возвращает стандартную таблицу скидок салона
func DefaultDiscounts() DiscountTable {
	return DiscountTable{
		TierGold:   0.20,
		TierSilver: 0.10,
		TierBronze: 0.05,
		TierWorker: 0.50,
	}
}

// FinalPrice вычисляет итоговую цену процедуры для клиента с учётом скидки.
// Цена фиксируется один раз при создании бронирования: последующие изменения
// уровня лояльности на неё не влияют.
func FinalPrice(procedurePrice float64, tier *LoyaltyTier, discounts DiscountTable) float64 {
	if tier == nil {
		return procedurePrice
	}
	return procedurePrice * (1 - discounts[*tier])
}
