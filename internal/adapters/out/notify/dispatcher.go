// Package notify delivers notifications to the shared inbox store. Delivery
// failures never propagate into the triggering operation: the message is
// queued in memory and re-attempted by the retry job until the store takes
// it.
package notify

import (
	"context"
	"sync"

	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// StoreDispatcher implements NotificationDispatcher by writing notifications
// to the notification repository. Failed writes are kept in an in-memory
// retry queue, preserving arrival order.
type StoreDispatcher struct {
	repo ports.NotificationRepository

	mu    sync.Mutex
	queue []*notification.Notification
}

// NewStoreDispatcher creates a dispatcher backed by the given repository.
func NewStoreDispatcher(repo ports.NotificationRepository) *StoreDispatcher {
	return &StoreDispatcher{repo: repo}
}

// Dispatch delivers the notification to the inbox store. On failure the
// notification is queued for retry and a DependencyError is returned.
func (d *StoreDispatcher) Dispatch(ctx context.Context, entity *notification.Notification) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	if err := d.repo.Add(ctx, entity); err != nil {
		d.enqueue(entity)
		return errs.NewDependencyError("notification store", err)
	}

	return nil
}

// RetryFailed re-attempts every queued notification. Messages that fail
// again go back to the queue; the count of delivered messages is returned
// together with the last store error, if any.
func (d *StoreDispatcher) RetryFailed(ctx context.Context) (int, error) {
	d.mu.Lock()
	pending := d.queue
	d.queue = nil
	d.mu.Unlock()

	var lastErr error
	delivered := 0

	for _, entity := range pending {
		if err := d.repo.Add(ctx, entity); err != nil {
			d.enqueue(entity)
			lastErr = errs.NewDependencyError("notification store", err)
			continue
		}
		delivered++
	}

	return delivered, lastErr
}

// QueuedCount reports how many notifications await retry.
func (d *StoreDispatcher) QueuedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

func (d *StoreDispatcher) enqueue(entity *notification.Notification) {
	d.mu.Lock()
	d.queue = append(d.queue, entity)
	d.mu.Unlock()
}
