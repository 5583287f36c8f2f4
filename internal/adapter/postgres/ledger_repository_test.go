package postgres

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comefundme/internal/adapter/usecase"
	"comefundme/internal/config/configs"
	"comefundme/internal/core/domain"
	"comefundme/internal/db"
)

func TestFromNumeric(t *testing.T) {
	v, err := fromNumeric(pgtype.Numeric{Int: big.NewInt(4), Exp: 18, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(domain.Ether(4)))

	v, err = fromNumeric(pgtype.Numeric{Int: big.NewInt(1500), Exp: -2, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, int64(15), v.Int64())

	_, err = fromNumeric(pgtype.Numeric{Int: big.NewInt(1501), Exp: -2, Valid: true})
	assert.Error(t, err)

	_, err = fromNumeric(pgtype.Numeric{})
	assert.Error(t, err)

	_, err = fromNumeric(pgtype.Numeric{NaN: true, Valid: true})
	assert.Error(t, err)
}

func TestToNumeric(t *testing.T) {
	n := toNumeric(nil)
	assert.True(t, n.Valid)
	assert.Zero(t, n.Int.Sign())

	src := domain.Ether(2)
	n = toNumeric(src)
	src.SetInt64(0)
	assert.Equal(t, 0, n.Int.Cmp(domain.Ether(2)))
}

// newIntegrationPool connects to the database named by
// COMEFUNDME_TEST_PSQL, migrates it and clears all ledger state. The test
// is skipped when the variable is unset.
func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("COMEFUNDME_TEST_PSQL")
	if addr == "" {
		t.Skip("COMEFUNDME_TEST_PSQL not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE campaigns`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `UPDATE ledger_state SET paused = FALSE WHERE id = 1`)
	require.NoError(t, err)
	return pool
}

func TestLedgerRepositoryIntegration(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(newIntegrationPool(t))

	initiator := domain.Address{0xf3}
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.NewCampaign(initiator, "Campaign 1", "Campaign description", now)
	require.NoError(t, repo.CreateCampaign(ctx, c))
	assert.ErrorIs(t, repo.CreateCampaign(ctx, c), domain.ErrCampaignExists)

	updated, err := repo.Donate(ctx, c.ID, domain.Ether(4), now)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.FundsRaised.Cmp(domain.Ether(4)))

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, initiator, got.Initiator)
	assert.Equal(t, 0, got.FundsRaised.Cmp(domain.Ether(4)))
	assert.True(t, got.IsAlive)

	missing, err := repo.GetCampaign(ctx, domain.CampaignID{})
	require.NoError(t, err)
	assert.Nil(t, missing)
	_, err = repo.Donate(ctx, domain.CampaignID{}, domain.Ether(1), now)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	_, err = repo.End(ctx, domain.CampaignID{}, initiator, now)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)

	paused, err := repo.TogglePaused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)
	paused, err = repo.Paused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)
	_, err = repo.End(ctx, c.ID, initiator, now)
	assert.ErrorIs(t, err, domain.ErrPaused)

	paused, err = repo.TogglePaused(ctx)
	require.NoError(t, err)
	assert.False(t, paused)
	_, err = repo.End(ctx, c.ID, domain.Address{0x70}, now)
	assert.ErrorIs(t, err, domain.ErrNotInitiator)

	ended, err := repo.End(ctx, c.ID, initiator, now)
	require.NoError(t, err)
	assert.False(t, ended.IsAlive)
	_, err = repo.End(ctx, c.ID, initiator, now)
	assert.ErrorIs(t, err, domain.ErrCampaignNotAlive)
	_, err = repo.Donate(ctx, c.ID, domain.Ether(1), now)
	assert.ErrorIs(t, err, domain.ErrCampaignNotAlive)

	got, err = repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAlive)
	assert.Equal(t, 0, got.FundsRaised.Cmp(domain.Ether(4)))
}

// TestDonationsFromTwoLedgers runs two ledger instances, each with its
// own pool, against one database and checks every donation is credited.
func TestDonationsFromTwoLedgers(t *testing.T) {
	ctx := context.Background()
	poolA := newIntegrationPool(t)
	u, err := url.Parse(os.Getenv("COMEFUNDME_TEST_PSQL"))
	require.NoError(t, err)
	poolB, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	defer poolB.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledgers := []*usecase.LedgerUseCase{
		usecase.NewLedgerUseCase(NewLedgerRepository(poolA), nil, usecase.WithLogger(logger)),
		usecase.NewLedgerUseCase(NewLedgerRepository(poolB), nil, usecase.WithLogger(logger)),
	}

	c, err := ledgers[0].StartCampaign(ctx, domain.Address{0xf3}, "t", "d")
	require.NoError(t, err)

	var wg sync.WaitGroup
	count := 20
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(ledger *usecase.LedgerUseCase) {
			defer wg.Done()
			_, err := ledger.DonateToCampaign(ctx, domain.Address{0x70}, c.ID, domain.Ether(1))
			assert.NoError(t, err)
		}(ledgers[i%2])
	}
	wg.Wait()

	for _, ledger := range ledgers {
		got, err := ledger.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.FundsRaised.Cmp(domain.Ether(int64(count))), got.FundsRaised.String())
	}
}
