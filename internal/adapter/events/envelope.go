// Package events contains outbound adapters that deliver ledger
// notifications.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"comefundme/internal/core/domain"
)

// Envelope is the wire form of a published event.
type Envelope struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CampaignID string          `json:"campaignId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEnvelope wraps event with a fresh id and timestamp.
func NewEnvelope(event domain.Event, now time.Time) (Envelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}
	return Envelope{
		ID:         uuid.NewString(),
		Name:       event.EventName(),
		CampaignID: event.Campaign().Hex(),
		OccurredAt: now.UTC(),
		Payload:    payload,
	}, nil
}
