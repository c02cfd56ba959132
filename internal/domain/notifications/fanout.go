package notifications

import (
	"context"
	"fmt"
	"time"

	"campus-portal-go/internal/domain/audience"
	"github.com/google/uuid"
)

type AudienceResolver interface {
	Resolve(ctx context.Context, directive audience.Directive) ([]string, error)
}

type Fanout struct {
	resolver AudienceResolver
	repo     Repository
	now      func() time.Time
}

func NewFanout(resolver AudienceResolver, repo Repository) *Fanout {
	return &Fanout{resolver: resolver, repo: repo, now: time.Now}
}

// Fanout records one notification per recipient of b and returns how many
// were created. It runs after the parent write committed: any error wraps
// ErrFanoutPartialFailure and must not undo the parent.
func (f *Fanout) Fanout(ctx context.Context, b Broadcast) (int, error) {
	recipients, err := f.resolver.Resolve(ctx, b.Audience)
	if err != nil {
		return 0, fmt.Errorf("%w: resolve audience: %w", ErrFanoutPartialFailure, err)
	}
	if len(recipients) == 0 {
		return 0, nil
	}

	message := Message(b)
	kind := TypeFor(b)
	createdAt := f.now().UTC()

	items := make([]Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		items = append(items, Notification{
			ID:          uuid.NewString(),
			RecipientID: recipientID,
			Message:     message,
			Type:        kind,
			SourceType:  b.SourceType,
			SourceID:    b.SourceID,
			CreatedAt:   createdAt,
		})
	}

	if err := f.repo.CreateBatch(ctx, items); err != nil {
		return 0, fmt.Errorf("%w: insert %d notifications: %w", ErrFanoutPartialFailure, len(items), err)
	}

	return len(items), nil
}

// Broadcaster is what broadcastable services need from the fan-out.
type Broadcaster interface {
	Fanout(ctx context.Context, b Broadcast) (int, error)
}
