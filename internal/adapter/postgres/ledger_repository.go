package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"comefundme/internal/core/domain"
)

// uniqueViolation is the SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

const campaignColumns = `initiator, title, description, funds_raised, is_alive, created_at, updated_at`

// LedgerRepository implements port.LedgerRepository using pgxpool for PostgreSQL.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CreateCampaign inserts a campaign. A primary key conflict is reported
// as domain.ErrCampaignExists.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (id, initiator, title, description, funds_raised, is_alive, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		c.ID[:], c.Initiator[:], c.Title, c.Description, toNumeric(c.FundsRaised), c.IsAlive, c.CreatedAt, c.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrCampaignExists
	}
	return err
}

// GetCampaign returns a campaign by id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id[:]), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// Donate credits amount in a single UPDATE, so the addition happens
// under the row lock and concurrent donations from any process add up.
func (r *LedgerRepository) Donate(ctx context.Context, id domain.CampaignID, amount *big.Int, at time.Time) (*domain.Campaign, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET funds_raised = funds_raised + $2, updated_at = $3 WHERE id = $1 AND is_alive RETURNING `+campaignColumns,
		id[:], toNumeric(amount), at)
	c, err := scanCampaign(row, id)
	if errors.Is(err, pgx.ErrNoRows) {
		var alive bool
		err = r.pool.QueryRow(ctx, `SELECT is_alive FROM campaigns WHERE id = $1`, id[:]).Scan(&alive)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		if err != nil {
			return nil, err
		}
		// campaigns never come back to life
		return nil, domain.ErrCampaignNotAlive
	}
	return c, err
}

// End closes a campaign for caller. The pause flag is read with a shared
// lock and the campaign row with an exclusive one, both in the same
// transaction, so neither can change before the update commits.
func (r *LedgerRepository) End(ctx context.Context, id domain.CampaignID, caller domain.Address, at time.Time) (c *domain.Campaign, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			c = nil
		}
	}()

	var paused bool
	err = tx.QueryRow(ctx, `SELECT paused FROM ledger_state WHERE id = 1 FOR SHARE`).Scan(&paused)
	if errors.Is(err, pgx.ErrNoRows) {
		paused, err = false, nil
	}
	if err != nil {
		return nil, err
	}

	c, err = scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id[:]), id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrCampaignNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if err = c.End(caller, paused, at); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, `UPDATE campaigns SET is_alive = FALSE, updated_at = $2 WHERE id = $1`, id[:], at); err != nil {
		return nil, err
	}
	return c, nil
}

// Paused returns the global pause flag.
func (r *LedgerRepository) Paused(ctx context.Context) (bool, error) {
	var paused bool
	err := r.pool.QueryRow(ctx, `SELECT paused FROM ledger_state WHERE id = 1`).Scan(&paused)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return paused, err
}

// TogglePaused flips the global pause flag in one statement. A missing
// state row counts as unpaused.
func (r *LedgerRepository) TogglePaused(ctx context.Context) (bool, error) {
	var paused bool
	err := r.pool.QueryRow(ctx, `INSERT INTO ledger_state (id, paused) VALUES (1, TRUE) ON CONFLICT (id) DO UPDATE SET paused = NOT ledger_state.paused RETURNING paused`).
		Scan(&paused)
	return paused, err
}

// scanCampaign reads one row of campaignColumns. pgx.ErrNoRows is
// returned unchanged.
func scanCampaign(row pgx.Row, id domain.CampaignID) (*domain.Campaign, error) {
	var (
		c         = domain.Campaign{ID: id}
		initiator []byte
		funds     pgtype.Numeric
	)
	if err := row.Scan(&initiator, &c.Title, &c.Description, &funds, &c.IsAlive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if len(initiator) != domain.AddressLength {
		return nil, fmt.Errorf("campaign %s: bad initiator length %d", id, len(initiator))
	}
	copy(c.Initiator[:], initiator)
	var err error
	if c.FundsRaised, err = fromNumeric(funds); err != nil {
		return nil, fmt.Errorf("campaign %s: %w", id, err)
	}
	return &c, nil
}

func toNumeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		v = new(big.Int)
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Exp: 0, Valid: true}
}

// fromNumeric converts a NUMERIC(78,0) value into an integer. pgx strips
// trailing zero digit groups into a positive exponent, so it is folded
// back into the mantissa.
func fromNumeric(n pgtype.Numeric) (*big.Int, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return nil, errors.New("funds raised is not a finite number")
	}
	v := new(big.Int)
	if n.Int != nil {
		v.Set(n.Int)
	}
	switch {
	case n.Exp > 0:
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil)
		v.Mul(v, scale)
	case n.Exp < 0:
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil)
		var rem big.Int
		v.QuoRem(v, scale, &rem)
		if rem.Sign() != 0 {
			return nil, fmt.Errorf("funds raised %s is not an integer", n.Int)
		}
	}
	return v, nil
}
