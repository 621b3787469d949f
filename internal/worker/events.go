package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jmehdipour/radius-admin/internal/kafka"
	"github.com/jmehdipour/radius-admin/internal/metrics"
	"github.com/jmehdipour/radius-admin/internal/model"
)

// Sender delivers one serialized event to downstream webhooks.
type Sender interface {
	Send(ctx context.Context, raw []byte) error
}

// Consumer is the slice of the Kafka consumer the worker needs.
type Consumer interface {
	Fetch(ctx context.Context) (kafka.Message, error)
	Commit(ctx context.Context, m kafka.Message) error
}

// Events consumes provisioning events from Kafka (outbox rows relayed by the
// CDC pipeline) and pushes them to webhook endpoints. Delivery is
// at-least-once: every message is committed after processing, and poison
// messages are committed and skipped.
type Events struct {
	Consumer Consumer
	Notifier Sender

	Workers int
}

// NewEvents builds a worker with sane defaults.
func NewEvents(consumer Consumer, n Sender) *Events {
	return &Events{
		Consumer: consumer,
		Notifier: n,
		Workers:  8,
	}
}

// Run starts the worker and blocks until ctx is cancelled.
func (w *Events) Run(ctx context.Context) error {
	if w.Workers <= 0 {
		w.Workers = 8
	}

	msgCh := make(chan kafka.Message, w.Workers*2)

	go w.fetchLoop(ctx, msgCh)

	for i := 0; i < w.Workers; i++ {
		go w.runProcessor(ctx, msgCh)
	}

	<-ctx.Done()
	return nil
}

func (w *Events) fetchLoop(ctx context.Context, out chan<- kafka.Message) {
	defer close(out)
	for {
		m, err := w.Consumer.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[events] kafka fetch err: %v", err)
			time.Sleep(200 * time.Millisecond)
			continue
		}

		// the buffer may be full at shutdown; never block past cancel
		select {
		case out <- m:
		case <-ctx.Done():
			return
		}
	}
}

func (w *Events) runProcessor(ctx context.Context, in <-chan kafka.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}
			w.processOne(ctx, m)
		}
	}
}

func (w *Events) processOne(ctx context.Context, m kafka.Message) {
	env, err := ParseEnvelope(m.Value)
	if err != nil {
		metrics.EventsDelivered.WithLabelValues("skipped").Inc()
		log.Printf("[events] bad envelope: %v", err)
		_ = w.Consumer.Commit(ctx, m) // poison -> commit, skip
		return
	}

	if err := w.Notifier.Send(ctx, m.Value); err != nil {
		metrics.EventsDelivered.WithLabelValues("failed").Inc()
		log.Printf("[events] deliver %s/%s failed: %v", env.Event, env.CustomerID, err)
	} else {
		metrics.EventsDelivered.WithLabelValues("sent").Inc()
	}

	// Always commit (at-least-once; webhooks are expected to dedupe)
	if err := w.Consumer.Commit(ctx, m); err != nil {
		log.Printf("[events] commit err: %v", err)
	}
}

// ParseEnvelope validates the raw outbox payload.
func ParseEnvelope(raw []byte) (model.EventEnvelope, error) {
	var env model.EventEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return env, err
	}
	if env.Event == "" || env.CustomerID == "" {
		return env, errors.New("envelope missing event or customer_id")
	}
	return env, nil
}
