package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

func TestReportService_BusinessReview(t *testing.T) {
	auditRepo := &stubAuditRepo{}
	metricsRepo := newStubMetricsRepo()
	_, _ = metricsRepo.Create(context.Background(), &domain.WeeklyMetrics{
		UserID:             "user-1",
		DealerAudits:       2,
		HOASurveys:         3,
		IndustrialMeetings: 1,
		DealerConversions:  1,
		NewRefillStations:  4,
		BulkContracts:      2,
	})

	audits := NewAuditService(auditRepo, zerolog.Nop())
	_, _ = audits.Create(context.Background(), ports.CreateAuditInput{
		UserID:  "user-1",
		Type:    domain.AuditTypeDealer,
		Data:    dealerPayload(10000),
		Summary: "Profit Audit",
	})
	_, _ = audits.Create(context.Background(), ports.CreateAuditInput{
		UserID:  "user-1",
		Type:    domain.AuditTypeHOA,
		Data:    json.RawMessage(`{"units":100,"deliveriesPerUnit":4}`),
		Summary: "Site Survey (100 units)",
	})
	_, _ = audits.Create(context.Background(), ports.CreateAuditInput{
		UserID:  "user-1",
		Type:    domain.AuditTypeIndustrial,
		Data:    json.RawMessage(`{"reliability":"Medium","downtimeCost":50000,"repairTime":4,"risk":600000}`),
		Summary: "Risk Analysis (Ice Plant)",
	})

	svc := NewReportService(auditRepo, metricsRepo, zerolog.Nop())
	review, err := svc.BusinessReview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	if review.TotalActivity != 6 {
		t.Fatalf("expected total activity 6, got %d", review.TotalActivity)
	}
	if review.TotalConversions != 7 {
		t.Fatalf("expected total conversions 7, got %d", review.TotalConversions)
	}
	if len(review.Pipeline) != 3 {
		t.Fatalf("expected 3 pipeline entries, got %d", len(review.Pipeline))
	}
	// newest first: industrial audit was recorded last
	if review.Pipeline[0].Highlight != "Risk: ₱600000" {
		t.Fatalf("unexpected industrial highlight: %s", review.Pipeline[0].Highlight)
	}
	// HOA exposure is units * deliveriesPerUnit, rendered as entries
	if review.Pipeline[1].Highlight != "Risk: 400 entries" {
		t.Fatalf("unexpected hoa highlight: %s", review.Pipeline[1].Highlight)
	}
	if review.Pipeline[2].Highlight != "Proj. Profit: ₱10000" {
		t.Fatalf("unexpected dealer highlight: %s", review.Pipeline[2].Highlight)
	}
}

func TestReportService_BusinessReview_NoMetricsRecord(t *testing.T) {
	metricsRepo := newStubMetricsRepo()
	svc := NewReportService(&stubAuditRepo{}, metricsRepo, zerolog.Nop())

	review, err := svc.BusinessReview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if review.TotalActivity != 0 || review.TotalConversions != 0 {
		t.Fatalf("expected zero totals, got %d/%d", review.TotalActivity, review.TotalConversions)
	}
	// report is read-only: it must not create a metrics record
	if metricsRepo.creates != 0 {
		t.Fatalf("report created a metrics record")
	}
	if len(review.Pipeline) != 0 {
		t.Fatalf("expected empty pipeline")
	}
}
