package notifier

import (
	"context"
	"fmt"
	"sync/atomic"
)

var (
	ErrNoHealthy = fmt.Errorf("no healthy endpoints")
	ErrNoAcquire = fmt.Errorf("endpoint not acquired")
)

// Notifier fans provisioning events out to webhook endpoints, round-robin
// over the ones whose breaker is ready, with bounded attempts per event.
type Notifier struct {
	endpoints         []Endpoint
	roundRobinCounter atomic.Uint64
	maxAttempts       int
}

func New(eps []Endpoint, maxAttempts int) *Notifier {
	if maxAttempts < 1 {
		maxAttempts = 2
	}

	return &Notifier{endpoints: eps, maxAttempts: maxAttempts}
}

func (n *Notifier) selectEndpoint() (Endpoint, error) {
	healthy := make([]Endpoint, 0, len(n.endpoints))
	for _, p := range n.endpoints {
		if p.Ready() {
			healthy = append(healthy, p)
		}
	}

	if len(healthy) == 0 {
		return nil, ErrNoHealthy
	}

	x := n.roundRobinCounter.Add(1)
	idx := int((x - 1) % uint64(len(healthy)))

	return healthy[idx], nil
}

func (n *Notifier) tryOnce(ctx context.Context, raw []byte) error {
	p, err := n.selectEndpoint()
	if err != nil {
		return err
	}

	if !p.Acquire() {
		return ErrNoAcquire
	}

	return p.Notify(ctx, raw)
}

// Send delivers one event payload, retrying on a (possibly different)
// endpoint up to maxAttempts times.
func (n *Notifier) Send(ctx context.Context, raw []byte) error {
	var last error
	for i := 0; i < n.maxAttempts; i++ {
		if err := n.tryOnce(ctx, raw); err == nil {
			return nil
		} else {
			last = err
		}
	}

	if last == nil {
		last = fmt.Errorf("send failed")
	}

	return last
}
