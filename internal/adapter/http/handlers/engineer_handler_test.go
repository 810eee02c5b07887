package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"laptopcare/internal/adapter/http/handlers/mocks"
	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEngineerHandler_FindNearby(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing latitude", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerLocatorUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/engineers/nearby", h.FindNearby)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/engineers/nearby", bytes.NewBufferString(`{"longitude":3.3792}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero coordinates bind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerLocatorUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/engineers/nearby", h.FindNearby)

		uc.EXPECT().FindNearby(gomock.Any(), usecase.NearbyQuery{Latitude: 0, Longitude: 0}).
			Return([]entities.NearbyEngineer{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/engineers/nearby", bytes.NewBufferString(`{"latitude":0,"longitude":0}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no engineers available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerLocatorUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/engineers/nearby", h.FindNearby)

		uc.EXPECT().FindNearby(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrNoEngineersAvailable)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/engineers/nearby", bytes.NewBufferString(`{"latitude":6.5244,"longitude":3.3792}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success preserves ranking order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerLocatorUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := authedRouter("user-1", entities.RoleUser)
		r.POST("/troubleshoot/engineers/nearby", h.FindNearby)

		uc.EXPECT().FindNearby(gomock.Any(), usecase.NearbyQuery{Latitude: 6.5244, Longitude: 3.3792, RadiusKM: 25, Limit: 5}).
			Return([]entities.NearbyEngineer{
				{EngineerID: "eng-a", Name: "A", DistanceKM: 4.3},
				{EngineerID: "eng-b", Name: "B", DistanceKM: 12.8},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/troubleshoot/engineers/nearby",
			bytes.NewBufferString(`{"latitude":6.5244,"longitude":3.3792,"radius_km":25,"limit":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body) != 2 || body[0]["id"] != "eng-a" || body[1]["id"] != "eng-b" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestEngineerHandler_UpdateLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid coordinate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerLocatorUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := authedRouter("eng-1", entities.RoleEngineer)
		r.PUT("/troubleshoot/engineers/me/location", h.UpdateLocation)

		uc.EXPECT().UpdateLocation(gomock.Any(), "eng-1", 95.0, 3.3792).
			Return(entities.EngineerLocation{}, usecase.ErrInvalidCoordinate)

		req := httptest.NewRequest(http.MethodPut, "/troubleshoot/engineers/me/location", bytes.NewBufferString(`{"latitude":95,"longitude":3.3792}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerLocatorUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := authedRouter("eng-1", entities.RoleEngineer)
		r.PUT("/troubleshoot/engineers/me/location", h.UpdateLocation)

		uc.EXPECT().UpdateLocation(gomock.Any(), "eng-1", 6.5, 3.35).
			Return(entities.EngineerLocation{EngineerID: "eng-1", Latitude: 6.5, Longitude: 3.35}, nil)

		req := httptest.NewRequest(http.MethodPut, "/troubleshoot/engineers/me/location", bytes.NewBufferString(`{"latitude":6.5,"longitude":3.35}`))
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
		if body["engineer_id"] != "eng-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
