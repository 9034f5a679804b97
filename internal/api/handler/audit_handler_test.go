package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aquapure/sales-portal/internal/api/middleware"
	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

type stubAuditService struct {
	createFn     func(ctx context.Context, input ports.CreateAuditInput) (*domain.Audit, error)
	listRecentFn func(ctx context.Context, userID string) ([]*domain.Audit, error)
	getByIDFn    func(ctx context.Context, userID, auditID string) (*domain.Audit, error)
	created      int
}

func (s *stubAuditService) Create(ctx context.Context, input ports.CreateAuditInput) (*domain.Audit, error) {
	s.created++
	return s.createFn(ctx, input)
}

func (s *stubAuditService) ListRecent(ctx context.Context, userID string) ([]*domain.Audit, error) {
	return s.listRecentFn(ctx, userID)
}

func (s *stubAuditService) GetByID(ctx context.Context, userID, auditID string) (*domain.Audit, error) {
	return s.getByIDFn(ctx, userID, auditID)
}

const validDealerBody = `{
	"type": "Dealer",
	"data": {"dailyOutput":50,"sellingPrice":25,"electricity":2500,"rent":5000,"labor":12000,"maint":3000,"daysOpen":26,"netProfit":10000},
	"summary": "Profit Audit"
}`

func TestAuditHandler_Create_Dealer(t *testing.T) {
	stub := &stubAuditService{
		createFn: func(_ context.Context, input ports.CreateAuditInput) (*domain.Audit, error) {
			if input.UserID != "user-1" || input.Type != domain.AuditTypeDealer {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Audit{
				ID:        "audit-1",
				UserID:    input.UserID,
				Type:      input.Type,
				Data:      input.Data,
				Summary:   input.Summary,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewAuditHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/audits", validDealerBody)
	c.Set(middleware.UserContextKey, &domain.User{ID: "user-1"})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	data := resp["data"].(map[string]any)
	if data["id"] != "audit-1" || data["type"] != "Dealer" {
		t.Fatalf("unexpected audit payload: %v", data)
	}
}

func TestAuditHandler_Create_Rejected(t *testing.T) {
	stub := &stubAuditService{
		createFn: func(context.Context, ports.CreateAuditInput) (*domain.Audit, error) {
			return nil, errors.New("unreachable")
		},
	}
	h := NewAuditHandler(stub)

	cases := []struct {
		name string
		body string
	}{
		{"unknown type", `{"type":"Residential","data":{"units":1},"summary":"x"}`},
		{"missing summary", `{"type":"HOA","data":{"units":100,"deliveriesPerUnit":4}}`},
		{"missing data", `{"type":"HOA","summary":"x"}`},
		{"data not an object", `{"type":"HOA","data":[1,2],"summary":"x"}`},
		{"dealer missing field", `{"type":"Dealer","data":{"dailyOutput":50},"summary":"x"}`},
		{"hoa negative units", `{"type":"HOA","data":{"units":-1,"deliveriesPerUnit":4},"summary":"x"}`},
		{"industrial bad reliability", `{"type":"Industrial","data":{"downtimeCost":50000,"repairTime":4,"reliability":"Sometimes"},"summary":"x"}`},
	}
	for _, tc := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/audits", tc.body)
		c.Set(middleware.UserContextKey, &domain.User{ID: "user-1"})

		err := h.Create(c)
		var he *echo.HTTPError
		if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", tc.name, err)
		}
	}
	if stub.created != 0 {
		t.Fatalf("rejected requests must not reach the service, got %d creates", stub.created)
	}
}

func TestAuditHandler_Create_HOAWithExtraFields(t *testing.T) {
	stub := &stubAuditService{
		createFn: func(_ context.Context, input ports.CreateAuditInput) (*domain.Audit, error) {
			return &domain.Audit{ID: "audit-1", Type: input.Type, Data: input.Data, Summary: input.Summary}, nil
		},
	}
	h := NewAuditHandler(stub)

	body := `{"type":"HOA","data":{"units":100,"deliveriesPerUnit":4,"deliveryRisk":"High","waterSource":"Refill Station","wastePerUnit":2,"complaints":3},"summary":"Site Survey (100 units)"}`
	c, rec := newTestContext(t, http.MethodPost, "/audits", body)
	c.Set(middleware.UserContextKey, &domain.User{ID: "user-1"})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuditHandler_List(t *testing.T) {
	stub := &stubAuditService{
		listRecentFn: func(_ context.Context, userID string) ([]*domain.Audit, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []*domain.Audit{}, nil
		},
	}
	h := NewAuditHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/audits", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "user-1"})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if data, ok := resp["data"].([]any); !ok || len(data) != 0 {
		t.Fatalf("expected empty audit list, got %v", resp["data"])
	}
}

func TestAuditHandler_Get_NotFound(t *testing.T) {
	stub := &stubAuditService{
		getByIDFn: func(context.Context, string, string) (*domain.Audit, error) {
			return nil, domain.ErrAuditNotFound
		},
	}
	h := NewAuditHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/audits/audit-9", "")
	c.SetParamNames("id")
	c.SetParamValues("audit-9")
	c.Set(middleware.UserContextKey, &domain.User{ID: "user-1"})

	err := h.Get(c)
	if !errors.Is(err, domain.ErrAuditNotFound) {
		t.Fatalf("expected ErrAuditNotFound to propagate, got %v", err)
	}
}
