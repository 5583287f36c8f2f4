package domain

import (
	"math/big"
	"time"
)

// Campaign is a fundraising effort identified by its initiator, title
// and description. Campaigns are never deleted; ending one only clears
// IsAlive. FundsRaised is held in wei.
type Campaign struct {
	ID          CampaignID
	Initiator   Address
	Title       string
	Description string
	FundsRaised *big.Int
	IsAlive     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCampaign returns a live campaign with nothing raised yet.
func NewCampaign(initiator Address, title, description string, now time.Time) *Campaign {
	return &Campaign{
		ID:          NewCampaignID(initiator, title, description),
		Initiator:   initiator,
		Title:       title,
		Description: description,
		FundsRaised: new(big.Int),
		IsAlive:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Donate adds amount to the funds raised. The campaign is left unchanged
// when an error is returned.
func (c *Campaign) Donate(amount *big.Int, now time.Time) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if !c.IsAlive {
		return ErrCampaignNotAlive
	}
	c.FundsRaised = new(big.Int).Add(c.funds(), amount)
	c.UpdatedAt = now
	return nil
}

// End marks the campaign inactive. Only the initiator may end it, and
// never while the ledger is paused.
func (c *Campaign) End(caller Address, paused bool, now time.Time) error {
	if paused {
		return ErrPaused
	}
	if caller != c.Initiator {
		return ErrNotInitiator
	}
	if !c.IsAlive {
		return ErrCampaignNotAlive
	}
	c.IsAlive = false
	c.UpdatedAt = now
	return nil
}

// Clone returns a deep copy so callers cannot alias stored balances.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	cp := *c
	cp.FundsRaised = new(big.Int).Set(c.funds())
	return &cp
}

func (c *Campaign) funds() *big.Int {
	if c.FundsRaised == nil {
		return new(big.Int)
	}
	return c.FundsRaised
}

// weiPerEther is 10^18.
var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Ether converts a whole number of ether into wei.
func Ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), weiPerEther)
}

// ParseAmount parses a non-negative base-10 wei amount.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	return v, nil
}
