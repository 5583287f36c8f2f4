package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"comefundme/internal/core/domain"
	"comefundme/internal/core/port"
)

// LedgerUseCase implements port.LedgerUseCase on top of a repository.
// Calls within one process are serialised by a mutex; the repository
// makes each change atomic, which keeps several processes sharing a store
// consistent.
type LedgerUseCase struct {
	repo      port.LedgerRepository
	publisher port.EventPublisher
	logger    *slog.Logger

	mu sync.Mutex
	// now is the clock used for record timestamps.
	now func() time.Time
}

// Option configures a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithLogger sets the logger used for diagnostics and publish failures.
func WithLogger(logger *slog.Logger) Option {
	return func(u *LedgerUseCase) { u.logger = logger }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(u *LedgerUseCase) { u.now = now }
}

// NewLedgerUseCase creates a ledger backed by repo that reports events to
// publisher.
func NewLedgerUseCase(repo port.LedgerRepository, publisher port.EventPublisher, opts ...Option) *LedgerUseCase {
	u := &LedgerUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    slog.Default(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetCampaignID returns the deterministic id of a campaign.
func (u *LedgerUseCase) GetCampaignID(creator domain.Address, title, description string) domain.CampaignID {
	return domain.NewCampaignID(creator, title, description)
}

// StartCampaign records a new campaign for caller. A second start with
// the same (caller, title, description) fails with ErrCampaignExists.
func (u *LedgerUseCase) StartCampaign(ctx context.Context, caller domain.Address, title, description string) (*domain.Campaign, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	c := domain.NewCampaign(caller, title, description, u.now())

	existing, err := u.repo.GetCampaign(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrCampaignExists
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		if errors.Is(err, domain.ErrCampaignExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	u.logger.Debug("campaign started",
		slog.String("campaign_id", c.ID.Hex()),
		slog.String("initiator", caller.Hex()))
	u.publish(ctx, domain.CampaignStarted{ID: c.ID})
	return c.Clone(), nil
}

// DonateToCampaign credits amount to a live campaign.
func (u *LedgerUseCase) DonateToCampaign(ctx context.Context, caller domain.Address, id domain.CampaignID, amount *big.Int) (*domain.Campaign, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.repo.Donate(ctx, id, amount, u.now())
	if err != nil {
		return nil, repoError("donate", err)
	}

	u.logger.Debug("donation received",
		slog.String("campaign_id", id.Hex()),
		slog.String("donor", caller.Hex()),
		slog.String("amount", amount.String()))
	u.publish(ctx, domain.CampaignDonationReceived{
		ID:     id,
		Donor:  caller,
		Amount: new(big.Int).Set(amount),
	})
	return c, nil
}

// EndCampaign closes a campaign on behalf of its initiator.
func (u *LedgerUseCase) EndCampaign(ctx context.Context, caller domain.Address, id domain.CampaignID) (*domain.Campaign, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.repo.End(ctx, id, caller, u.now())
	if err != nil {
		return nil, repoError("end campaign", err)
	}

	u.logger.Debug("campaign ended",
		slog.String("campaign_id", id.Hex()),
		slog.String("funds_raised", c.FundsRaised.String()))
	u.publish(ctx, domain.CampaignEnded{
		ID:          id,
		FundsRaised: new(big.Int).Set(c.FundsRaised),
	})
	return c, nil
}

// TogglePause flips the pause flag. Any caller may toggle it.
func (u *LedgerUseCase) TogglePause(ctx context.Context, caller domain.Address) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	paused, err := u.repo.TogglePaused(ctx)
	if err != nil {
		return false, fmt.Errorf("toggle pause flag: %w", err)
	}

	u.logger.Info("pause toggled",
		slog.Bool("paused", paused),
		slog.String("caller", caller.Hex()))
	return paused, nil
}

// Paused returns the pause flag.
func (u *LedgerUseCase) Paused(ctx context.Context) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	paused, err := u.repo.Paused(ctx)
	if err != nil {
		return false, fmt.Errorf("read pause flag: %w", err)
	}
	return paused, nil
}

// GetCampaign returns the stored campaign.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// ruleErrors are rejections the repository reports on behalf of the
// domain. They reach callers unwrapped.
var ruleErrors = []error{
	domain.ErrCampaignNotFound,
	domain.ErrCampaignNotAlive,
	domain.ErrNotInitiator,
	domain.ErrPaused,
	domain.ErrInvalidAmount,
}

func repoError(op string, err error) error {
	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// publish hands an event to the publisher. The state change it describes
// is already stored, so failures are logged rather than returned.
func (u *LedgerUseCase) publish(ctx context.Context, event domain.Event) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Error("publish event error",
			slog.String("event", event.EventName()),
			slog.String("campaign_id", event.Campaign().Hex()),
			slog.Any("error", err))
	}
}
