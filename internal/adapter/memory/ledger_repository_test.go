package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comefundme/internal/core/domain"
)

func TestLedgerRepositoryCampaigns(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	var initiator domain.Address
	initiator[19] = 1
	c := domain.NewCampaign(initiator, "Campaign 1", "Campaign description", time.Unix(0, 0).UTC())

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.CreateCampaign(ctx, c))
	assert.ErrorIs(t, repo.CreateCampaign(ctx, c), domain.ErrCampaignExists)

	// mutating the caller's copy must not leak into the store
	require.NoError(t, c.Donate(domain.Ether(1), time.Unix(1, 0).UTC()))
	got, err = repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.FundsRaised.Sign())

	updated, err := repo.Donate(ctx, c.ID, domain.Ether(2), time.Unix(2, 0).UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, updated.FundsRaised.Cmp(domain.Ether(2)))
	got, err = repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.FundsRaised.Cmp(domain.Ether(2)))
	assert.True(t, got.IsAlive)
	assert.Equal(t, time.Unix(2, 0).UTC(), got.UpdatedAt)
}

func TestLedgerRepositoryUnknownCampaign(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	_, err := repo.Donate(ctx, domain.CampaignID{}, domain.Ether(1), time.Now())
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	_, err = repo.End(ctx, domain.CampaignID{}, domain.Address{}, time.Now())
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestLedgerRepositoryEnd(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	initiator := domain.Address{1}
	c := domain.NewCampaign(initiator, "t", "d", time.Now())
	require.NoError(t, repo.CreateCampaign(ctx, c))

	paused, err := repo.TogglePaused(ctx)
	require.NoError(t, err)
	require.True(t, paused)
	_, err = repo.End(ctx, c.ID, initiator, time.Now())
	assert.ErrorIs(t, err, domain.ErrPaused)

	_, err = repo.TogglePaused(ctx)
	require.NoError(t, err)
	_, err = repo.End(ctx, c.ID, domain.Address{2}, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotInitiator)

	ended, err := repo.End(ctx, c.ID, initiator, time.Now())
	require.NoError(t, err)
	assert.False(t, ended.IsAlive)

	_, err = repo.Donate(ctx, c.ID, domain.Ether(1), time.Now())
	assert.ErrorIs(t, err, domain.ErrCampaignNotAlive)
	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.FundsRaised.Sign())
}

func TestLedgerRepositoryPaused(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	paused, err := repo.Paused(ctx)
	require.NoError(t, err)
	assert.False(t, paused)

	toggled, err := repo.TogglePaused(ctx)
	require.NoError(t, err)
	assert.True(t, toggled)
	paused, err = repo.Paused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)
}

func TestLedgerRepositoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLedgerRepository().Paused(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
