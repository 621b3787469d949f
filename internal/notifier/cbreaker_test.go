package notifier

import (
	"testing"
	"time"
)

func TestMicroBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewMicroBreaker(3, time.Hour)

	b.OnFailure()
	b.OnFailure()
	if !b.Ready() {
		t.Fatal("breaker opened before threshold")
	}

	b.OnFailure()
	if b.Ready() {
		t.Fatal("breaker still ready after 3 consecutive failures")
	}
}

func TestMicroBreaker_SuccessResetsCounter(t *testing.T) {
	b := NewMicroBreaker(3, time.Hour)

	b.OnFailure()
	b.OnFailure()
	b.OnSuccess()
	b.OnFailure()
	b.OnFailure()

	if !b.Ready() {
		t.Fatal("success did not reset the failure counter")
	}
}

func TestMicroBreaker_HalfOpenProbe(t *testing.T) {
	b := NewMicroBreaker(1, 10*time.Millisecond)

	b.OnFailure()
	if b.TryAcquire() {
		t.Fatal("acquired while open")
	}

	time.Sleep(20 * time.Millisecond)

	if !b.TryAcquire() {
		t.Fatal("probe not allowed after open window elapsed")
	}
	// Only one probe at a time
	if b.TryAcquire() {
		t.Fatal("second concurrent probe allowed")
	}

	b.OnSuccess()
	if !b.Ready() {
		t.Fatal("breaker not closed after successful probe")
	}
}

func TestMicroBreaker_FailedProbeReopens(t *testing.T) {
	b := NewMicroBreaker(1, 10*time.Millisecond)

	b.OnFailure()
	time.Sleep(20 * time.Millisecond)

	if !b.TryAcquire() {
		t.Fatal("probe not allowed")
	}
	b.OnFailure()

	if b.TryAcquire() {
		t.Fatal("acquired right after a failed probe")
	}
}
