package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/server/http/dto"
	"github.com/polkiloo/pressdesk/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/pressdesk/internal/test"
)

func newEngine(facade handlers.DashboardFacade) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(facade, logger)
	gin.SetMode(gin.TestMode)
	return engine
}

func TestSetupRoutes(t *testing.T) {
	engine := newEngine(testhelpers.DashboardFacadeStub{})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/customers", "", http.StatusOK},
		{http.MethodPost, "/api/customers", `{"name":"John Smith"}`, http.StatusCreated},
		{http.MethodPatch, "/api/customers/CUS-1", `{"email":"john@example.com"}`, http.StatusNoContent},
		{http.MethodDelete, "/api/customers/CUS-1", "", http.StatusNoContent},
		{http.MethodGet, "/api/employees", "", http.StatusOK},
		{http.MethodGet, "/api/orders", "", http.StatusOK},
		{http.MethodPost, "/api/orders", `{"quantity":10,"unitPrice":5}`, http.StatusCreated},
		{http.MethodPatch, "/api/orders/ORD-1", `{"paymentStatus":"credit"}`, http.StatusNoContent},
		{http.MethodGet, "/api/payments", "", http.StatusOK},
		{http.MethodPost, "/api/payments/PAY-1/transactions", `{"amount":5,"method":"cash"}`, http.StatusNoContent},
		{http.MethodGet, "/api/reports/summary", "", http.StatusOK},
		{http.MethodGet, "/api/reports/breakdown", "", http.StatusOK},
		{http.MethodGet, "/api/reports/export/customers", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = bytes.NewReader([]byte(tt.body))
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			resp := httptest.NewRecorder()
			engine.ServeHTTP(resp, req)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	facade := testhelpers.DashboardFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context) ([]model.Order, error) {
				return []model.Order{{ID: "ORD-1", CustomerName: "John Smith"}}, nil
			},
		},
	}
	engine := newEngine(facade)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoded response, got headers %v", resp.Header())
	}

	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer reader.Close()
	var orders []dto.Order
	if err := json.NewDecoder(reader).Decode(&orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 1 || orders[0].CustomerName != "John Smith" {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestSetupAcceptsCompressedRequests(t *testing.T) {
	var got model.CustomerDraft
	facade := testhelpers.DashboardFacadeStub{
		CustomerFacadeStub: testhelpers.CustomerFacadeStub{
			AddFn: func(_ context.Context, draft model.CustomerDraft) (*model.Customer, error) {
				got = draft
				return &model.Customer{ID: "CUS-1", Name: draft.Name}, nil
			},
		},
	}
	engine := newEngine(facade)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"name":"Lisa Anderson"}`))
	_ = gz.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/customers", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got.Name != "Lisa Anderson" {
		t.Fatalf("unexpected draft %+v", got)
	}
}

var _ handlers.DashboardFacade = testhelpers.DashboardFacadeStub{}
