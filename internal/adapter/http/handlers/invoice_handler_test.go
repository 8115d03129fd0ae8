package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"repairdeck/internal/adapter/http/handlers/mocks"
	"repairdeck/internal/domain/approval"
	"repairdeck/internal/domain/entities"
	"repairdeck/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets/:ticket_id/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets/t-1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("command carries role header and pin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets/:ticket_id/invoices", h.CreateInvoice)

		uc.EXPECT().CreateFromTicket(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateInvoiceCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateInvoiceCommand) (entities.Invoice, error) {
				if cmd.TicketID != "t-1" {
					t.Fatalf("expected ticket id from path, got %q", cmd.TicketID)
				}
				if cmd.ActorRole != entities.RoleTechnician {
					t.Fatalf("expected role from header, got %q", cmd.ActorRole)
				}
				if cmd.AdminPIN != "1234" || !cmd.FromEstimate || !cmd.IncludeNotes {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Invoice{ID: "inv-1", TicketID: "t-1", Status: entities.InvoiceStatusPending}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets/t-1/invoices",
			bytes.NewBufferString(`{"from_estimate":true,"include_notes":true,"admin_pin":"1234"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorRoleHeader, "Technician")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("approval required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets/:ticket_id/invoices", h.CreateInvoice)

		uc.EXPECT().CreateFromTicket(gomock.Any(), gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrApprovalRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets/t-1/invoices",
			bytes.NewBufferString(`{"line_items":[{"description":"Labor","unit_price":55}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "APPROVAL_REQUIRED" {
			t.Fatalf("expected APPROVAL_REQUIRED, got %v", body["code"])
		}
	})

	t.Run("pin rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets/:ticket_id/invoices", h.CreateInvoice)

		uc.EXPECT().CreateFromTicket(gomock.Any(), gomock.Any()).
			Return(entities.Invoice{}, approval.ErrPINRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets/t-1/invoices",
			bytes.NewBufferString(`{"admin_pin":"0000","line_items":[{"description":"Labor","unit_price":55}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PIN_REJECTED" {
			t.Fatalf("expected PIN_REJECTED, got %v", body["code"])
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets/:ticket_id/invoices", h.CreateInvoice)

		uc.EXPECT().CreateFromTicket(gomock.Any(), gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets/t-1/invoices",
			bytes.NewBufferString(`{"from_estimate":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body defaults to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", json.RawMessage("{}")).
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Paid" {
			t.Fatalf("expected Paid, got %v", body["status"])
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.RecordPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments",
			bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "inv-404").
			Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found with display amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Amount: 140.3892, Status: entities.InvoiceStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["amount_display"] != "$140.39" {
			t.Fatalf("expected $140.39, got %v", body["amount_display"])
		}
	})
}
