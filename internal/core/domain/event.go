package domain

import "math/big"

// Event names as they appear in published notifications.
const (
	EventCampaignStarted          = "CampaignStarted"
	EventCampaignDonationReceived = "CampaignDonationReceived"
	EventCampaignEnded            = "CampaignEnded"
)

// Event is a notification emitted after a successful state change.
type Event interface {
	EventName() string
	Campaign() CampaignID
}

// CampaignStarted is emitted when a new campaign is recorded.
type CampaignStarted struct {
	ID CampaignID `json:"id"`
}

func (CampaignStarted) EventName() string      { return EventCampaignStarted }
func (e CampaignStarted) Campaign() CampaignID { return e.ID }

// CampaignDonationReceived is emitted for every accepted donation.
type CampaignDonationReceived struct {
	ID     CampaignID `json:"id"`
	Donor  Address    `json:"donor"`
	Amount *big.Int   `json:"amount"`
}

func (CampaignDonationReceived) EventName() string      { return EventCampaignDonationReceived }
func (e CampaignDonationReceived) Campaign() CampaignID { return e.ID }

// CampaignEnded carries the funds raised at the moment the campaign ended.
type CampaignEnded struct {
	ID          CampaignID `json:"id"`
	FundsRaised *big.Int   `json:"fundsRaised"`
}

func (CampaignEnded) EventName() string      { return EventCampaignEnded }
func (e CampaignEnded) Campaign() CampaignID { return e.ID }
