package events

import (
	"context"
	"log/slog"

	"comefundme/internal/core/domain"
)

// LogPublisher writes every event to a structured logger.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a publisher that logs to logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs event at info level with its fields as attributes.
func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	attrs := []slog.Attr{
		slog.String("event", event.EventName()),
		slog.String("campaign_id", event.Campaign().Hex()),
	}
	switch e := event.(type) {
	case domain.CampaignDonationReceived:
		attrs = append(attrs,
			slog.String("donor", e.Donor.Hex()),
			slog.String("amount", e.Amount.String()))
	case domain.CampaignEnded:
		attrs = append(attrs, slog.String("funds_raised", e.FundsRaised.String()))
	}
	p.logger.LogAttrs(ctx, slog.LevelInfo, "ledger event", attrs...)
	return nil
}
