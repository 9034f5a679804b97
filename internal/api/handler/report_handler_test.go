package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aquapure/sales-portal/internal/api/middleware"
	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

type stubReportService struct {
	review *ports.BusinessReview
	err    error
}

func (s *stubReportService) BusinessReview(_ context.Context, _ string) (*ports.BusinessReview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

func TestReportHandler_BusinessReview(t *testing.T) {
	createdAt := time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)
	metrics := &domain.WeeklyMetrics{UserID: "user-1", DealerAudits: 4, HOASurveys: 2, DealerConversions: 1}
	stub := &stubReportService{review: &ports.BusinessReview{
		TotalActivity:    6,
		TotalConversions: 1,
		Metrics:          metrics,
		Pipeline: []ports.PipelineEntry{
			{
				AuditID:   "audit-1",
				Type:      domain.AuditTypeDealer,
				Summary:   "Profit Audit",
				Highlight: "Proj. Profit: ₱10000",
				CreatedAt: createdAt,
			},
		},
	}}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/reports/business-review", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "user-1", Name: "Joy", Team: "Luzon"})

	if err := h.BusinessReview(c); err != nil {
		t.Fatalf("BusinessReview: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data struct {
			TotalActivity    int `json:"totalActivity"`
			TotalConversions int `json:"totalConversions"`
			Metrics          struct {
				DealerAudits int `json:"dealerAudits"`
			} `json:"metrics"`
			Pipeline []struct {
				ID        string `json:"id"`
				Type      string `json:"type"`
				Summary   string `json:"summary"`
				Highlight string `json:"highlight"`
			} `json:"pipeline"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Data.TotalActivity != 6 || resp.Data.TotalConversions != 1 {
		t.Errorf("totals = (%d, %d), want (6, 1)", resp.Data.TotalActivity, resp.Data.TotalConversions)
	}
	if resp.Data.Metrics.DealerAudits != 4 {
		t.Errorf("dealerAudits = %d, want 4", resp.Data.Metrics.DealerAudits)
	}
	if len(resp.Data.Pipeline) != 1 {
		t.Fatalf("pipeline length = %d, want 1", len(resp.Data.Pipeline))
	}
	entry := resp.Data.Pipeline[0]
	if entry.ID != "audit-1" || entry.Type != "Dealer" {
		t.Errorf("entry = %+v, want id audit-1 type Dealer", entry)
	}
	if entry.Highlight != "Proj. Profit: ₱10000" {
		t.Errorf("highlight = %q", entry.Highlight)
	}
}

func TestReportHandler_BusinessReview_EmptyPipeline(t *testing.T) {
	stub := &stubReportService{review: &ports.BusinessReview{
		Metrics:  &domain.WeeklyMetrics{UserID: "user-1"},
		Pipeline: nil,
	}}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/reports/business-review", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "user-1"})

	if err := h.BusinessReview(c); err != nil {
		t.Fatalf("BusinessReview: %v", err)
	}

	var resp struct {
		Data struct {
			Pipeline []any `json:"pipeline"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// an agent with no audits still gets an array, not null
	if resp.Data.Pipeline == nil {
		t.Error("pipeline is null, want empty array")
	}
}

func TestReportHandler_BusinessReview_NoUser(t *testing.T) {
	h := NewReportHandler(&stubReportService{})
	c, _ := newTestContext(t, http.MethodGet, "/reports/business-review", "")

	if err := h.BusinessReview(c); err == nil {
		t.Fatal("expected error without an authenticated user")
	}
}
