package handlers

import (
	"bytes"
	"context"
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

func TestEstimateHandler_SaveEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/tickets/:ticket_id/estimate", h.SaveEstimate)

		req := httptest.NewRequest(http.MethodPut, "/v1/tickets/t-1/estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/tickets/:ticket_id/estimate", h.SaveEstimate)

		req := httptest.NewRequest(http.MethodPut, "/v1/tickets/t-1/estimate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ticket not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/tickets/:ticket_id/estimate", h.SaveEstimate)

		uc.EXPECT().SaveEstimate(gomock.Any(), "t-1", gomock.Any()).
			Return(entities.Estimate{}, usecase.ErrTicketNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/tickets/t-1/estimate",
			bytes.NewBufferString(`{"line_items":[{"description":"Labor","unit_price":40}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/tickets/:ticket_id/estimate", h.SaveEstimate)

		uc.EXPECT().SaveEstimate(gomock.Any(), "t-1", gomock.Any()).
			Return(entities.Estimate{}, entities.ErrNegativePrice)

		req := httptest.NewRequest(http.MethodPut, "/v1/tickets/t-1/estimate",
			bytes.NewBufferString(`{"line_items":[{"description":"Labor","unit_price":-5}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save success with display totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/tickets/:ticket_id/estimate", h.SaveEstimate)

		uc.EXPECT().SaveEstimate(gomock.Any(), "t-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items entities.LineItems) (entities.Estimate, error) {
				if len(items) != 1 || items[0].Quantity != 1 {
					t.Fatalf("expected defaulted quantity, got %+v", items)
				}
				return entities.Estimate{
					ID:       "e-1",
					TicketID: "t-1",
					Subtotal: 129.99,
					Tax:      10.3992,
					Total:    140.3892,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/tickets/t-1/estimate",
			bytes.NewBufferString(`{"line_items":[{"description":"Brakes","unit_price":129.99}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["total_display"] != "$140.39" {
			t.Fatalf("expected display total $140.39, got %v", body["total_display"])
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/tickets/:ticket_id/estimate", h.GetEstimate)

		uc.EXPECT().GetByTicketID(gomock.Any(), "t-1").
			Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/tickets/t-1/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/tickets/:ticket_id/estimate", h.GetEstimate)

		uc.EXPECT().GetByTicketID(gomock.Any(), "t-1").
			Return(entities.Estimate{ID: "e-1", TicketID: "t-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tickets/t-1/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
