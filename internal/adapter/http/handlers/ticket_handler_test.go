package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"repairdeck/internal/adapter/http/handlers/mocks"
	"repairdeck/internal/domain/entities"
	"repairdeck/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTicketHandler_CreateTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets", h.CreateTicket)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing vehicle fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets", h.CreateTicket)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets",
			bytes.NewBufferString(`{"customer_name":"Dana Ortiz"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets", h.CreateTicket)

		uc.EXPECT().CreateTicket(gomock.Any(), gomock.AssignableToTypeOf(entities.Ticket{})).
			Return(entities.Ticket{ID: "t-1", CustomerName: "Dana Ortiz", Vehicle: "2014 Civic", Status: entities.TicketStatusNew}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets",
			bytes.NewBufferString(`{"customer_name":"Dana Ortiz","vehicle":"2014 Civic","issue":"Squealing brakes"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["status"] != "New" {
			t.Fatalf("expected New status, got %v", body["status"])
		}
	})
}

func TestTicketHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:ticket_id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatus("Parked")).
			Return(entities.Ticket{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1/status",
			bytes.NewBufferString(`{"status":"Parked"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("balance due conflict carries invoice details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:ticket_id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusCompleted).
			Return(entities.Ticket{}, &usecase.BalanceDueError{InvoiceID: "inv-7", Amount: 150})

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1/status",
			bytes.NewBufferString(`{"status":"Completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.Code != "BALANCE_DUE" {
			t.Fatalf("expected BALANCE_DUE, got %s", body.Code)
		}
		if body.Details["invoice_id"] != "inv-7" || body.Details["amount_display"] != "$150.00" {
			t.Fatalf("unexpected details: %v", body.Details)
		}
	})

	t.Run("invoice required conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:ticket_id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusCompleted).
			Return(entities.Ticket{}, usecase.ErrInvoiceRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1/status",
			bytes.NewBufferString(`{"status":"Completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("transition success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:ticket_id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusInProgress).
			Return(entities.Ticket{ID: "t-1", Status: entities.TicketStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1/status",
			bytes.NewBufferString(`{"status":"In Progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("ticket not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:ticket_id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "t-9", entities.TicketStatusCancelled).
			Return(entities.Ticket{}, usecase.ErrTicketNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-9/status",
			bytes.NewBufferString(`{"status":"Cancelled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
