package http

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/jmehdipour/radius-admin/internal/model"
)

type stubNASRepo struct {
	insertErr error
	listRows  []model.NASDevice
	listErr   error

	inserted []model.NASDevice
}

func (s *stubNASRepo) Insert(_ context.Context, d model.NASDevice) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, d)
	return nil
}

func (s *stubNASRepo) List(context.Context) ([]model.NASDevice, error) {
	return s.listRows, s.listErr
}

func TestAddNASHandler_Success(t *testing.T) {
	repo := &stubNASRepo{}

	form := url.Values{}
	form.Set("nas_name", "core-router-1")
	form.Set("nas_ip", "10.0.0.1")
	form.Set("nas_type", "some custom type") // free text is accepted
	form.Set("shared_secret", "s3cret")

	_, body := postForm(t, addNASHandler(repo), form)

	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("inserted %d devices, want 1", len(repo.inserted))
	}
	if repo.inserted[0].Type != "some custom type" {
		t.Errorf("nas_type = %q, want stored as submitted", repo.inserted[0].Type)
	}
}

func TestAddNASHandler_MissingFields(t *testing.T) {
	repo := &stubNASRepo{}

	form := url.Values{}
	form.Set("nas_name", "core-router-1")

	_, body := postForm(t, addNASHandler(repo), form)

	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "nas_ip") {
		t.Errorf("message = %q, want mention of nas_ip", msg)
	}
	if len(repo.inserted) != 0 {
		t.Errorf("inserted %d devices, want 0", len(repo.inserted))
	}
}

func TestGetNASHandler_Error(t *testing.T) {
	repo := &stubNASRepo{listErr: errors.New("db gone")}

	_, body := postForm(t, getNASHandler(repo), url.Values{})

	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
}
