package port

import (
	"context"
	"math/big"
	"time"

	"comefundme/internal/core/domain"
)

// LedgerRepository defines the persistence layer for the campaign ledger.
// It is an outbound port in hexagonal architecture. Every mutating method
// checks and applies its rule in one atomic step, so several ledger
// processes may share one store.
type LedgerRepository interface {
	// CreateCampaign stores a new campaign. It returns
	// domain.ErrCampaignExists when the id is already taken.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when none exists.
	GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error)
	// Donate adds amount to the funds raised by a live campaign and
	// returns the updated record. It fails with domain.ErrCampaignNotFound
	// or domain.ErrCampaignNotAlive.
	Donate(ctx context.Context, id domain.CampaignID, amount *big.Int, at time.Time) (*domain.Campaign, error)
	// End closes a campaign on behalf of caller, reading the pause flag
	// in the same step. It fails with domain.ErrCampaignNotFound,
	// domain.ErrPaused, domain.ErrNotInitiator or domain.ErrCampaignNotAlive.
	End(ctx context.Context, id domain.CampaignID, caller domain.Address, at time.Time) (*domain.Campaign, error)

	// Paused returns the global pause flag.
	Paused(ctx context.Context) (bool, error)
	// TogglePaused flips the global pause flag and returns the new value.
	TogglePaused(ctx context.Context) (bool, error)
}

// EventPublisher delivers ledger notifications to interested parties.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
