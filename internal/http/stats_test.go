package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubStatsRepo struct {
	customers int64
	nas       int64
	revenue   float64
	err       error
}

func (s *stubStatsRepo) CountActiveCustomers(context.Context) (int64, error) {
	return s.customers, s.err
}

func (s *stubStatsRepo) CountActiveNAS(context.Context) (int64, error) {
	return s.nas, s.err
}

func (s *stubStatsRepo) ActiveMonthlyRevenue(context.Context) (float64, error) {
	return s.revenue, s.err
}

func getStats(t *testing.T, repo *stubStatsRepo) map[string]any {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/get_stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := getStatsHandler(repo)(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	return body
}

func TestGetStatsHandler_Empty(t *testing.T) {
	body := getStats(t, &stubStatsRepo{})

	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}

	stats, ok := body["stats"].(map[string]any)
	if !ok {
		t.Fatalf("stats missing from response: %v", body)
	}
	if stats["total_users"] != float64(0) {
		t.Errorf("total_users = %v, want 0", stats["total_users"])
	}
	if stats["online_users"] != float64(0) {
		t.Errorf("online_users = %v, want 0 when there are no customers", stats["online_users"])
	}
	if stats["monthly_revenue"] != "0.00" {
		t.Errorf("monthly_revenue = %v, want %q", stats["monthly_revenue"], "0.00")
	}
}

func TestGetStatsHandler_RevenueFormat(t *testing.T) {
	body := getStats(t, &stubStatsRepo{customers: 3, nas: 2, revenue: 119.97})

	stats := body["stats"].(map[string]any)
	if stats["monthly_revenue"] != "119.97" {
		t.Errorf("monthly_revenue = %v, want %q", stats["monthly_revenue"], "119.97")
	}
	if stats["nas_count"] != float64(2) {
		t.Errorf("nas_count = %v, want 2", stats["nas_count"])
	}

	online, ok := stats["online_users"].(float64)
	if !ok {
		t.Fatalf("online_users missing: %v", stats)
	}
	if online < 0 || online > 3 {
		t.Errorf("online_users = %v, want within [0, 3]", online)
	}
}

func TestSimulatedOnline_Bounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := simulatedOnline(10)
		if n < 0 || n > 10 {
			t.Fatalf("simulatedOnline(10) = %d, out of [0, 10]", n)
		}
	}

	if n := simulatedOnline(0); n != 0 {
		t.Errorf("simulatedOnline(0) = %d, want 0", n)
	}
	if n := simulatedOnline(-5); n != 0 {
		t.Errorf("simulatedOnline(-5) = %d, want 0", n)
	}
}
