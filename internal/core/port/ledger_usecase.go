package port

import (
	"context"
	"math/big"

	"comefundme/internal/core/domain"
)

// LedgerUseCase defines the operations exposed by the campaign ledger.
// It is the primary port into the application domain. Every mutating
// operation is all-or-nothing: on error nothing is stored and no event
// is published.
type LedgerUseCase interface {
	// GetCampaignID derives a campaign id from its creator, title and
	// description. It is pure and never fails.
	GetCampaignID(creator domain.Address, title, description string) domain.CampaignID

	// StartCampaign records a new live campaign owned by caller and
	// publishes CampaignStarted. It returns domain.ErrCampaignExists when
	// caller already started a campaign with the same title and
	// description.
	StartCampaign(ctx context.Context, caller domain.Address, title, description string) (*domain.Campaign, error)

	// DonateToCampaign adds amount to a live campaign and publishes
	// CampaignDonationReceived.
	DonateToCampaign(ctx context.Context, caller domain.Address, id domain.CampaignID, amount *big.Int) (*domain.Campaign, error)

	// EndCampaign marks a campaign inactive and publishes CampaignEnded
	// with the final funds raised. Only the initiator may end a campaign
	// and only while the ledger is not paused.
	EndCampaign(ctx context.Context, caller domain.Address, id domain.CampaignID) (*domain.Campaign, error)

	// TogglePause flips the global pause flag and returns its new value.
	TogglePause(ctx context.Context, caller domain.Address) (bool, error)

	// Paused reports the current pause flag.
	Paused(ctx context.Context) (bool, error)

	// GetCampaign returns the stored campaign or domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error)
}
