package domain

import "errors"

// Ledger errors. Every operation that returns one of these leaves the
// ledger untouched.
var (
	ErrCampaignExists    = errors.New("campaign already exists")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrCampaignNotAlive  = errors.New("campaign is not alive")
	ErrNotInitiator      = errors.New("caller is not the campaign initiator")
	ErrPaused            = errors.New("ledger is paused")
	ErrInvalidAmount     = errors.New("donation amount must be positive")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidCampaignID = errors.New("invalid campaign id")
)
