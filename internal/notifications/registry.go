package notifications

import (
	"context"
	"log"
	"sync"
	"time"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PaymentEvent is what subscribers receive when a payment's status is
// resolved as approved.

type PaymentEvent struct {
	PaymentID    string    `json:"payment_id"`
	Status       string    `json:"status"`
	StatusDetail string    `json:"status_detail"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Registry is the process-wide fan-out for payment events. Subscribers are
// added on connect and removed on disconnect; the set resets on restart by
// construction. Broadcast never blocks: a subscriber that cannot keep up
// has the event dropped rather than stalling webhook handling.

type Registry struct {
	mu   sync.RWMutex
	subs map[string]chan PaymentEvent
}

var _ interfaces.IPaymentListener = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{subs: make(map[string]chan PaymentEvent)}
}

// Subscribe registers a new subscriber and returns its id plus the channel
// events will be delivered on.
func (r *Registry) Subscribe(buffer int) (string, <-chan PaymentEvent) {
	if buffer < 1 {
		buffer = 1
	}
	id := uuid.NewString()
	ch := make(chan PaymentEvent, buffer)

	r.mu.Lock()
	r.subs[id] = ch
	r.mu.Unlock()

	log.Printf("[notifications][registry] subscribed id=%s total=%d", id, r.Len())
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Unknown ids are
// a no-op (disconnect handlers may fire more than once).
func (r *Registry) Unsubscribe(id string) {
	r.mu.Lock()
	ch, ok := r.subs[id]
	if ok {
		delete(r.subs, id)
		close(ch)
	}
	r.mu.Unlock()

	if ok {
		log.Printf("[notifications][registry] unsubscribed id=%s total=%d", id, r.Len())
	}
}

func (r *Registry) Broadcast(ev PaymentEvent) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, ch := range r.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("[notifications][registry] subscriber full, dropping id=%s payment_id=%s", id, ev.PaymentID)
		}
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

// PaymentApproved adapts the registry to the status reconciler's listener
// port.
func (r *Registry) PaymentApproved(_ context.Context, p entities.Payment) error {
	r.Broadcast(PaymentEvent{
		PaymentID:    p.ID,
		Status:       string(p.Status),
		StatusDetail: p.StatusDetail,
		OccurredAt:   time.Now().UTC(),
	})
	return nil
}
