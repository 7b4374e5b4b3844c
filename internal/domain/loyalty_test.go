package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForVisits(t *testing.T) {
	tests := []struct {
		visits int
		want   *LoyaltyTier
	}{
		{0, nil},
		{9, nil},
		{10, tierPtr(TierBronze)},
		{24, tierPtr(TierBronze)},
		{25, tierPtr(TierSilver)},
		{49, tierPtr(TierSilver)},
		{50, tierPtr(TierGold)},
		{120, tierPtr(TierGold)},
	}

	for _, tt := range tests {
		got := TierForVisits(tt.visits)
		if tt.want == nil {
			assert.Nil(t, got, "visits=%d", tt.visits)
			continue
		}
		require.NotNil(t, got, "visits=%d", tt.visits)
		assert.Equal(t, *tt.want, *got, "visits=%d", tt.visits)
	}
}

func TestTierForVisitsIdempotent(t *testing.T) {
	first := TierForVisits(30)
	second := TierForVisits(30)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func tierPtr(tier LoyaltyTier) *LoyaltyTier {
	return &tier
}
