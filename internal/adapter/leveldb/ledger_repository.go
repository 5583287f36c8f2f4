// Package leveldb stores the campaign ledger in an embedded LevelDB
// database. Campaigns live under "campaign/<id hex>" as JSON documents
// and the pause flag under "ledger/paused".
package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"comefundme/internal/core/domain"
)

const (
	campaignPrefix = "campaign/"
	pausedKey      = "ledger/paused"
)

// campaignRecord is the stored JSON form of a campaign.
type campaignRecord struct {
	ID          domain.CampaignID `json:"id"`
	Initiator   domain.Address    `json:"initiator"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	FundsRaised string            `json:"fundsRaised"`
	IsAlive     bool              `json:"isAlive"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// LedgerRepository implements port.LedgerRepository on LevelDB.
type LedgerRepository struct {
	db *leveldb.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*LedgerRepository, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &LedgerRepository{db: db}, nil
}

// OpenMemory opens a database that lives only in memory.
func OpenMemory() (*LedgerRepository, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb memory storage: %w", err)
	}
	return &LedgerRepository{db: db}, nil
}

// Close releases the database.
func (r *LedgerRepository) Close() error {
	return r.db.Close()
}

// CreateCampaign writes c inside a transaction so the existence check and
// the write cannot interleave with another writer.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := encodeCampaign(c)
	if err != nil {
		return err
	}
	tr, err := r.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("open transaction: %w", err)
	}
	key := campaignKey(c.ID)
	exists, err := tr.Has(key, nil)
	if err != nil {
		tr.Discard()
		return err
	}
	if exists {
		tr.Discard()
		return domain.ErrCampaignExists
	}
	if err = tr.Put(key, value, &opt.WriteOptions{Sync: true}); err != nil {
		tr.Discard()
		return err
	}
	return tr.Commit()
}

// GetCampaign returns a campaign by id, or nil when absent.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.db.Get(campaignKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeCampaign(data)
}

// Donate credits amount to a live campaign.
func (r *LedgerRepository) Donate(ctx context.Context, id domain.CampaignID, amount *big.Int, at time.Time) (*domain.Campaign, error) {
	return r.modify(ctx, id, func(_ *leveldb.Transaction, c *domain.Campaign) error {
		return c.Donate(amount, at)
	})
}

// End closes a campaign for caller. The pause flag is read in the same
// transaction as the campaign.
func (r *LedgerRepository) End(ctx context.Context, id domain.CampaignID, caller domain.Address, at time.Time) (*domain.Campaign, error) {
	return r.modify(ctx, id, func(tr *leveldb.Transaction, c *domain.Campaign) error {
		paused, err := readPaused(tr)
		if err != nil {
			return err
		}
		return c.End(caller, paused, at)
	})
}

// modify loads a campaign inside a transaction, applies fn and writes the
// result back. LevelDB admits one open transaction at a time, so the
// read and the write cannot interleave with another writer.
func (r *LedgerRepository) modify(ctx context.Context, id domain.CampaignID, fn func(tr *leveldb.Transaction, c *domain.Campaign) error) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tr, err := r.db.OpenTransaction()
	if err != nil {
		return nil, fmt.Errorf("open transaction: %w", err)
	}
	key := campaignKey(id)
	data, err := tr.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		tr.Discard()
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		tr.Discard()
		return nil, err
	}
	c, err := decodeCampaign(data)
	if err != nil {
		tr.Discard()
		return nil, err
	}
	if err = fn(tr, c); err != nil {
		tr.Discard()
		return nil, err
	}
	value, err := encodeCampaign(c)
	if err != nil {
		tr.Discard()
		return nil, err
	}
	if err = tr.Put(key, value, &opt.WriteOptions{Sync: true}); err != nil {
		tr.Discard()
		return nil, err
	}
	if err = tr.Commit(); err != nil {
		return nil, err
	}
	return c, nil
}

// Paused returns the pause flag; a missing key reads as false.
func (r *LedgerRepository) Paused(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return readPaused(r.db)
}

// TogglePaused flips the pause flag inside a transaction.
func (r *LedgerRepository) TogglePaused(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	tr, err := r.db.OpenTransaction()
	if err != nil {
		return false, fmt.Errorf("open transaction: %w", err)
	}
	paused, err := readPaused(tr)
	if err != nil {
		tr.Discard()
		return false, err
	}
	paused = !paused
	value := []byte{0}
	if paused {
		value[0] = 1
	}
	if err = tr.Put([]byte(pausedKey), value, &opt.WriteOptions{Sync: true}); err != nil {
		tr.Discard()
		return false, err
	}
	if err = tr.Commit(); err != nil {
		return false, err
	}
	return paused, nil
}

// getter is satisfied by both *leveldb.DB and *leveldb.Transaction.
type getter interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

func readPaused(g getter) (bool, error) {
	data, err := g.Get([]byte(pausedKey), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(data) == 1 && data[0] == 1, nil
}

func campaignKey(id domain.CampaignID) []byte {
	return []byte(campaignPrefix + id.Hex())
}

func encodeCampaign(c *domain.Campaign) ([]byte, error) {
	funds := "0"
	if c.FundsRaised != nil {
		funds = c.FundsRaised.String()
	}
	data, err := json.Marshal(campaignRecord{
		ID:          c.ID,
		Initiator:   c.Initiator,
		Title:       c.Title,
		Description: c.Description,
		FundsRaised: funds,
		IsAlive:     c.IsAlive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode campaign %s: %w", c.ID, err)
	}
	return data, nil
}

func decodeCampaign(data []byte) (*domain.Campaign, error) {
	var rec campaignRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode campaign: %w", err)
	}
	funds, ok := new(big.Int).SetString(rec.FundsRaised, 10)
	if !ok {
		return nil, fmt.Errorf("decode campaign %s: bad funds %q", rec.ID, rec.FundsRaised)
	}
	return &domain.Campaign{
		ID:          rec.ID,
		Initiator:   rec.Initiator,
		Title:       rec.Title,
		Description: rec.Description,
		FundsRaised: funds,
		IsAlive:     rec.IsAlive,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}
