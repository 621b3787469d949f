package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmehdipour/radius-admin/internal/kafka"
	"github.com/jmehdipour/radius-admin/internal/model"
)

type stubConsumer struct {
	mu      sync.Mutex
	next    kafka.Message
	commits []kafka.Message
}

func (s *stubConsumer) Fetch(ctx context.Context) (kafka.Message, error) {
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	return s.next, nil
}

func (s *stubConsumer) Commit(_ context.Context, m kafka.Message) error {
	s.mu.Lock()
	s.commits = append(s.commits, m)
	s.mu.Unlock()
	return nil
}

func (s *stubConsumer) committed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.commits)
}

type stubSender struct {
	err error
	got [][]byte
}

func (s *stubSender) Send(_ context.Context, raw []byte) error {
	s.got = append(s.got, raw)
	return s.err
}

func TestParseEnvelope_Valid(t *testing.T) {
	raw := []byte(`{"event":"account.provisioned","customer_id":"CUST1234","username":"jane.doe","service_profile":"Premium"}`)

	env, err := ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if env.Event != model.EventAccountProvisioned {
		t.Errorf("event = %q", env.Event)
	}
	if env.CustomerID != "CUST1234" || env.Username != "jane.doe" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestParseEnvelope_Poison(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `garbage`},
		{"missing event", `{"customer_id":"CUST1234"}`},
		{"missing customer_id", `{"event":"account.deprovisioned"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseEnvelope([]byte(tc.raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestProcessOne_DeliversAndCommits(t *testing.T) {
	consumer := &stubConsumer{}
	sender := &stubSender{}
	w := NewEvents(consumer, sender)

	m := kafka.Message{Value: []byte(`{"event":"account.provisioned","customer_id":"CUST1234","username":"jane.doe"}`)}
	w.processOne(context.Background(), m)

	if len(sender.got) != 1 {
		t.Fatalf("sender calls = %d, want 1", len(sender.got))
	}
	if consumer.committed() != 1 {
		t.Errorf("commits = %d, want 1", consumer.committed())
	}
}

func TestProcessOne_PoisonCommittedWithoutDelivery(t *testing.T) {
	consumer := &stubConsumer{}
	sender := &stubSender{}
	w := NewEvents(consumer, sender)

	w.processOne(context.Background(), kafka.Message{Value: []byte(`garbage`)})

	if len(sender.got) != 0 {
		t.Fatalf("sender was called for a poison message")
	}
	if consumer.committed() != 1 {
		t.Errorf("commits = %d, want 1 (poison is committed and skipped)", consumer.committed())
	}
}

func TestProcessOne_FailedDeliveryStillCommits(t *testing.T) {
	consumer := &stubConsumer{}
	sender := &stubSender{err: errors.New("all endpoints down")}
	w := NewEvents(consumer, sender)

	m := kafka.Message{Value: []byte(`{"event":"account.deprovisioned","customer_id":"CUST1234"}`)}
	w.processOne(context.Background(), m)

	if consumer.committed() != 1 {
		t.Errorf("commits = %d, want 1 (at-least-once, no redelivery loop)", consumer.committed())
	}
}

func TestFetchLoop_StopsOnCancelWhenBufferFull(t *testing.T) {
	consumer := &stubConsumer{next: kafka.Message{Value: []byte(`{}`)}}
	w := NewEvents(consumer, &stubSender{})

	ctx, cancel := context.WithCancel(context.Background())

	// nobody reads from out, so the loop ends up blocked on the send
	out := make(chan kafka.Message)
	done := make(chan struct{})
	go func() {
		w.fetchLoop(ctx, out)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fetch loop did not stop after cancel")
	}
}
