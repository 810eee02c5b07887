package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laptopcare/internal/adapter/http/handlers/mocks"
	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/bookings", h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), "user-1", "prob-1", "eng-1", gomock.Any()).
			Return(entities.Booking{}, usecase.ErrInvalidSchedule)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/bookings",
			bytes.NewBufferString(`{"problem_id":"prob-1","engineer_id":"eng-1","scheduled_time":"2020-01-01T10:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("engineer role mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/bookings", h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), "user-1", "prob-1", "eng-1", gomock.Any()).
			Return(entities.Booking{}, usecase.ErrEngineerRoleMismatch)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/bookings",
			bytes.NewBufferString(`{"problem_id":"prob-1","engineer_id":"eng-1","scheduled_time":"2030-01-01T10:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/bookings", h.CreateBooking)

		scheduled := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), "user-1", "prob-1", "eng-1", scheduled).Return(entities.Booking{
			ID:            "book-1",
			ProblemID:     "prob-1",
			EngineerID:    "eng-1",
			RequesterID:   "user-1",
			ScheduledTime: scheduled,
			Status:        entities.BookingStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/bookings",
			bytes.NewBufferString(`{"problem_id":"prob-1","engineer_id":"eng-1","scheduled_time":"2030-01-01T10:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["id"] != "book-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBookingHandler_ConfirmBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing confirmed field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("eng-1", entities.RoleEngineer)
		r.PATCH("/troubleshoot/bookings/:booking_id/confirm", h.ConfirmBooking)

		req := httptest.NewRequest(http.MethodPatch, "/troubleshoot/bookings/book-1/confirm", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden for other engineer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("eng-2", entities.RoleEngineer)
		r.PATCH("/troubleshoot/bookings/:booking_id/confirm", h.ConfirmBooking)

		uc.EXPECT().Decide(gomock.Any(), "book-1", "eng-2", entities.RoleEngineer, true).
			Return(entities.Booking{}, usecase.ErrBookingForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/troubleshoot/bookings/book-1/confirm", bytes.NewBufferString(`{"confirmed":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("eng-1", entities.RoleEngineer)
		r.PATCH("/troubleshoot/bookings/:booking_id/confirm", h.ConfirmBooking)

		uc.EXPECT().Decide(gomock.Any(), "book-1", "eng-1", entities.RoleEngineer, true).
			Return(entities.Booking{}, usecase.ErrBookingAlreadyDecided)

		req := httptest.NewRequest(http.MethodPatch, "/troubleshoot/bookings/book-1/confirm", bytes.NewBufferString(`{"confirmed":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("explicit false rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("eng-1", entities.RoleEngineer)
		r.PATCH("/troubleshoot/bookings/:booking_id/confirm", h.ConfirmBooking)

		uc.EXPECT().Decide(gomock.Any(), "book-1", "eng-1", entities.RoleEngineer, false).Return(entities.Booking{
			ID:         "book-1",
			Status:     entities.BookingStatusRejected,
			DecidedBy:  "eng-1",
			EngineerID: "eng-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/troubleshoot/bookings/book-1/confirm", bytes.NewBufferString(`{"confirmed":false}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["status"] != "rejected" || body["decided_by"] != "eng-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("admin confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := authedRouter("admin-1", entities.RoleAdmin)
		r.PATCH("/troubleshoot/bookings/:booking_id/confirm", h.ConfirmBooking)

		uc.EXPECT().Decide(gomock.Any(), "book-1", "admin-1", entities.RoleAdmin, true).Return(entities.Booking{
			ID:        "book-1",
			Status:    entities.BookingStatusConfirmed,
			DecidedBy: "admin-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/troubleshoot/bookings/book-1/confirm", bytes.NewBufferString(`{"confirmed":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
