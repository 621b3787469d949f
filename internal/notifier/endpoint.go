package notifier

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// Endpoint is one downstream webhook (NAS orchestration, billing hooks).
type Endpoint interface {
	Name() string
	Ready() bool
	Acquire() bool
	Notify(ctx context.Context, raw []byte) error
}

type HTTPEndpoint struct {
	name   string
	url    string
	client *http.Client
	br     *MicroBreaker
}

func NewHTTPEndpoint(name, url string, timeoutMs, failThreshold, openForMs int) *HTTPEndpoint {
	if timeoutMs <= 0 {
		timeoutMs = 3000
	}

	if failThreshold <= 0 {
		failThreshold = 3
	}

	if openForMs <= 0 {
		openForMs = 15000
	}

	return &HTTPEndpoint{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: time.Duration(timeoutMs) * time.Millisecond},
		br:     NewMicroBreaker(failThreshold, time.Duration(openForMs)*time.Millisecond),
	}
}

func (p *HTTPEndpoint) Name() string  { return p.name }
func (p *HTTPEndpoint) Ready() bool   { return p.br.Ready() }
func (p *HTTPEndpoint) Acquire() bool { return p.br.TryAcquire() }

// Notify posts the event envelope as-is. The payload is already the JSON
// written to the outbox, so it is forwarded without re-encoding.
func (p *HTTPEndpoint) Notify(ctx context.Context, raw []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(raw))
	if err != nil {
		p.br.OnFailure()
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Source", "radius-admin")

	res, err := p.client.Do(req)
	if err != nil {
		p.br.OnFailure()
		return err
	}

	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		p.br.OnFailure()
		return fmt.Errorf("endpoint=%s status=%d", p.name, res.StatusCode)
	}

	p.br.OnSuccess()

	return nil
}
