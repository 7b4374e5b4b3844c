package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestDomainSchedule_EmptySectionGivesDefault(t *testing.T) {
	cfg := &Config{}

	schedule, err := cfg.DomainSchedule()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSchedule(), schedule)
}

func TestDomainSchedule_CustomHours(t *testing.T) {
	cfg := &Config{Schedule: ScheduleConfig{
		Open:     "09:30",
		Close:    "18:00",
		Workdays: []string{"monday", "Saturday"},
	}}

	schedule, err := cfg.DomainSchedule()

	require.NoError(t, err)
	assert.Equal(t, 9*60+30, schedule.OpenMinutes)
	assert.Equal(t, 18*60, schedule.CloseMinutes)
	assert.True(t, schedule.Workdays[time.Monday])
	assert.True(t, schedule.Workdays[time.Saturday])
	assert.False(t, schedule.Workdays[time.Sunday])
}

func TestDomainSchedule_InvalidClock(t *testing.T) {
	cfg := &Config{Schedule: ScheduleConfig{Open: "9am", Close: "18:00", Workdays: []string{"monday"}}}

	_, err := cfg.DomainSchedule()

	assert.Error(t, err)
}

func TestDomainSchedule_CloseBeforeOpen(t *testing.T) {
	cfg := &Config{Schedule: ScheduleConfig{Open: "18:00", Close: "09:00", Workdays: []string{"monday"}}}

	_, err := cfg.DomainSchedule()

	assert.Error(t, err)
}

func TestDomainSchedule_UnknownWeekday(t *testing.T) {
	cfg := &Config{Schedule: ScheduleConfig{Open: "09:00", Close: "18:00", Workdays: []string{"someday"}}}

	_, err := cfg.DomainSchedule()

	assert.Error(t, err)
}

func TestDomainDiscounts_EmptySectionGivesDefault(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, domain.DefaultDiscounts(), cfg.DomainDiscounts())
}

func TestDomainDiscounts_Custom(t *testing.T) {
	cfg := &Config{Pricing: PricingConfig{Gold: 0.3, Silver: 0.15, Bronze: 0.05, Worker: 0.6}}

	discounts := cfg.DomainDiscounts()

	assert.InDelta(t, 0.3, discounts[domain.TierGold], 0.001)
	assert.InDelta(t, 0.6, discounts[domain.TierWorker], 0.001)
}
