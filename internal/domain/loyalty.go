package domain

// Пороги визитов для автоматического присвоения уровня лояльности
const (
	GoldVisitsThreshold   = 50
	SilverVisitsThreshold = 25
	BronzeVisitsThreshold = 10
)

// TierForVisits вычисляет уровень лояльности по количеству визитов.
// Возвращает nil, если визитов недостаточно для любого уровня.
// Чистая идемпотентная функция: одинаковый visitsCount всегда даёт одинаковый уровень.
func TierForVisits(visitsCount int) *LoyaltyTier {
	var tier LoyaltyTier
	switch {
	case visitsCount >= GoldVisitsThreshold:
		tier = TierGold
	case visitsCount >= SilverVisitsThreshold:
		tier = TierSilver
	case visitsCount >= BronzeVisitsThreshold:
		tier = TierBronze
	default:
		return nil
	}
	return &tier
}
