package memory

import (
	"context"
	"math/big"
	"sync"
	"time"

	"comefundme/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository in process memory.
// Records are copied on the way in and out so callers never share state
// with the store.
type LedgerRepository struct {
	mu        sync.RWMutex
	campaigns map[domain.CampaignID]*domain.Campaign
	paused    bool
}

// NewLedgerRepository returns an empty repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{campaigns: make(map[domain.CampaignID]*domain.Campaign)}
}

// CreateCampaign stores c unless its id is already taken.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[c.ID]; ok {
		return domain.ErrCampaignExists
	}
	r.campaigns[c.ID] = c.Clone()
	return nil
}

// GetCampaign returns a campaign by id, or nil when absent.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.campaigns[id].Clone(), nil
}

// Donate credits amount to a live campaign under the write lock.
func (r *LedgerRepository) Donate(ctx context.Context, id domain.CampaignID, amount *big.Int, at time.Time) (*domain.Campaign, error) {
	return r.modify(ctx, id, func(c *domain.Campaign) error {
		return c.Donate(amount, at)
	})
}

// End closes a campaign for caller unless the ledger is paused.
func (r *LedgerRepository) End(ctx context.Context, id domain.CampaignID, caller domain.Address, at time.Time) (*domain.Campaign, error) {
	return r.modify(ctx, id, func(c *domain.Campaign) error {
		return c.End(caller, r.paused, at)
	})
}

// modify applies fn to a copy of the stored campaign and keeps the copy
// only when fn succeeds. fn runs with the write lock held.
func (r *LedgerRepository) modify(ctx context.Context, id domain.CampaignID, fn func(c *domain.Campaign) error) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	c := stored.Clone()
	if err := fn(c); err != nil {
		return nil, err
	}
	r.campaigns[id] = c
	return c.Clone(), nil
}

// Paused returns the pause flag.
func (r *LedgerRepository) Paused(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.paused, nil
}

// TogglePaused flips the pause flag.
func (r *LedgerRepository) TogglePaused(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = !r.paused
	return r.paused, nil
}
