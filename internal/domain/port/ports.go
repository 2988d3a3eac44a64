package port

import (
	"context"
	"time"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/event"
)

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes decision events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Time source port
// ---------------------------------------------------------------------------

// Clock supplies the evaluation time. It is injected so age computations are
// deterministic under test instead of reading ambient wall-clock state.
type Clock interface {
	Now() time.Time
}
