package domain

import "time"

// Role represents the role of a person in the salon
type Role string

const (
	RoleClient Role = "client"
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

// LoyaltyTier represents a client loyalty classification driving a price discount
type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "bronze"
	TierSilver LoyaltyTier = "silver"
	TierGold   LoyaltyTier = "gold"
	TierWorker LoyaltyTier = "worker"
)

// Person represents a client, worker or admin of the salon
type Person struct {
	ID          int64
	Name        string
	Role        Role
	VisitsCount int

	// LoyaltyTier is nil when the client has no tier yet
	LoyaltyTier *LoyaltyTier

	// ManualLoyaltyTier freezes tier auto-computation when set
	ManualLoyaltyTier bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorker returns true if the person performs services
func (p *Person) IsWorker() bool {
	return p.Role == RoleWorker
}

// TierFrozen возвращает true, если авторасчёт уровня лояльности заморожен
func (p *Person) TierFrozen() bool {
	if p.ManualLoyaltyTier {
		return true
	}
	return p.LoyaltyTier != nil && *p.LoyaltyTier == TierWorker
}

// IsValidRole returns true if r is a known role
func IsValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleWorker, RoleAdmin:
		return true
	}
	return false
}
