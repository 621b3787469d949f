package notifier

import (
	"context"
	"errors"
	"testing"
)

type stubEndpoint struct {
	name      string
	ready     bool
	acquire   bool
	notifyErr error

	calls int
}

func (s *stubEndpoint) Name() string  { return s.name }
func (s *stubEndpoint) Ready() bool   { return s.ready }
func (s *stubEndpoint) Acquire() bool { return s.acquire }

func (s *stubEndpoint) Notify(context.Context, []byte) error {
	s.calls++
	return s.notifyErr
}

func TestNotifier_NoHealthyEndpoints(t *testing.T) {
	n := New([]Endpoint{
		&stubEndpoint{name: "a", ready: false},
		&stubEndpoint{name: "b", ready: false},
	}, 2)

	err := n.Send(context.Background(), []byte(`{}`))
	if !errors.Is(err, ErrNoHealthy) {
		t.Fatalf("err = %v, want ErrNoHealthy", err)
	}
}

func TestNotifier_RoundRobinOverHealthy(t *testing.T) {
	a := &stubEndpoint{name: "a", ready: true, acquire: true}
	b := &stubEndpoint{name: "b", ready: false}
	c := &stubEndpoint{name: "c", ready: true, acquire: true}
	n := New([]Endpoint{a, b, c}, 1)

	for i := 0; i < 4; i++ {
		if err := n.Send(context.Background(), []byte(`{}`)); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	if a.calls != 2 || c.calls != 2 {
		t.Errorf("calls a=%d c=%d, want 2 each", a.calls, c.calls)
	}
	if b.calls != 0 {
		t.Errorf("unready endpoint got %d calls", b.calls)
	}
}

func TestNotifier_RetriesUpToMaxAttempts(t *testing.T) {
	failing := &stubEndpoint{name: "a", ready: true, acquire: true, notifyErr: errors.New("boom")}
	n := New([]Endpoint{failing}, 3)

	err := n.Send(context.Background(), []byte(`{}`))
	if err == nil {
		t.Fatal("send succeeded against a failing endpoint")
	}
	if failing.calls != 3 {
		t.Errorf("calls = %d, want 3", failing.calls)
	}
}

func TestNotifier_SecondAttemptCanSucceed(t *testing.T) {
	failing := &stubEndpoint{name: "a", ready: true, acquire: true, notifyErr: errors.New("boom")}
	healthy := &stubEndpoint{name: "b", ready: true, acquire: true}
	n := New([]Endpoint{failing, healthy}, 2)

	if err := n.Send(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("send: %v", err)
	}
	if healthy.calls != 1 {
		t.Errorf("healthy endpoint calls = %d, want 1", healthy.calls)
	}
}
