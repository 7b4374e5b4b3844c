package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	discounts := DefaultDiscounts()

	tests := []struct {
		name  string
		price float64
		tier  *LoyaltyTier
		want  float64
	}{
		{"no tier pays full price", 1000, nil, 1000},
		{"bronze gets 5 percent off", 1000, tierPtr(TierBronze), 950},
		{"silver gets 10 percent off", 1000, tierPtr(TierSilver), 900},
		{"gold gets 20 percent off", 1000, tierPtr(TierGold), 800},
		{"worker gets 50 percent off", 1000, tierPtr(TierWorker), 500},
		{"zero price stays zero", 0, tierPtr(TierGold), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FinalPrice(tt.price, tt.tier, discounts), 0.001)
		})
	}
}

func TestFinalPriceUnknownTierInTable(t *testing.T) {
	// Уровень, отсутствующий в таблице, даёт нулевую скидку
	empty := DiscountTable{}
	assert.InDelta(t, 1000.0, FinalPrice(1000, tierPtr(TierGold), empty), 0.001)
}
