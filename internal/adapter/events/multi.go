package events

import (
	"context"
	"errors"

	"comefundme/internal/core/domain"
	"comefundme/internal/core/port"
)

// Multi fans an event out to several publishers. Every publisher is
// attempted; their errors are joined.
type Multi []port.EventPublisher

// Publish implements port.EventPublisher.
func (m Multi) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
