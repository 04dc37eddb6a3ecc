package services

import (
	"errors"
	"testing"
	"time"

	"agrimind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_Create(t *testing.T) {
	tests := []struct {
		name          string
		request       models.CreateActivityRequest
		mockSetup     func(*MockStore)
		expectedError bool
	}{
		{
			name: "Success - Scheduled date parsed",
			request: models.CreateActivityRequest{
				Crop:          "maize",
				Activity:      "water",
				Description:   "Morning irrigation",
				ScheduledDate: "2026-09-10",
			},
			mockSetup: func(store *MockStore) {
				store.On("CreateCropActivity", mock.MatchedBy(func(na models.NewCropActivity) bool {
					return na.Crop == "maize" &&
						na.ScheduledDate.Format("2006-01-02") == "2026-09-10" &&
						na.Status == "" && na.Priority == ""
				})).Return(&models.CropActivity{
					ID:       "a-1",
					Status:   models.StatusPending,
					Priority: models.PriorityMedium,
				}, nil)
			},
		},
		{
			name: "Success - Explicit status and priority pass through",
			request: models.CreateActivityRequest{
				Crop:          "beans",
				Activity:      "harvest",
				Description:   "First harvest",
				ScheduledDate: "2026-09-12",
				Status:        "completed",
				Priority:      "high",
			},
			mockSetup: func(store *MockStore) {
				store.On("CreateCropActivity", mock.MatchedBy(func(na models.NewCropActivity) bool {
					return na.Status == models.StatusCompleted && na.Priority == models.PriorityHigh
				})).Return(&models.CropActivity{ID: "a-2"}, nil)
			},
		},
		{
			name: "Error - Unparseable date",
			request: models.CreateActivityRequest{
				Crop:          "maize",
				Activity:      "water",
				Description:   "Morning irrigation",
				ScheduledDate: "next tuesday",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockStore)
			if tt.mockSetup != nil {
				tt.mockSetup(mockStore)
			}

			service := NewActivityService(mockStore)
			activity, err := service.Create("user-1", tt.request)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, activity)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, activity)
			}

			mockStore.AssertExpectations(t)
		})
	}
}

func TestActivityService_List(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("GetUserCropActivities", "user-1").Return([]*models.CropActivity{{ID: "a-1"}}, nil)

		service := NewActivityService(mockStore)
		results, err := service.List("user-1", "")

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		mockStore.AssertExpectations(t)
	})

	t.Run("filtered by status", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("GetUserCropActivitiesByStatus", "user-1", models.StatusPending).
			Return([]*models.CropActivity{{ID: "a-1", Status: models.StatusPending}}, nil)

		service := NewActivityService(mockStore)
		results, err := service.List("user-1", models.StatusPending)

		assert.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, models.StatusPending, results[0].Status)
		mockStore.AssertExpectations(t)
	})
}

func TestActivityService_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mockStore := new(MockStore)
		mockStore.On("UpdateActivityStatus", "a-1", models.StatusCompleted, (*time.Time)(nil)).
			Return(&models.CropActivity{
				ID:            "a-1",
				Status:        models.StatusCompleted,
				CompletedDate: &now,
			}, nil)

		service := NewActivityService(mockStore)
		updated, err := service.UpdateStatus("a-1", models.StatusCompleted)

		assert.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, models.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedDate)
		mockStore.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("UpdateActivityStatus", "missing", models.StatusCompleted, (*time.Time)(nil)).
			Return(nil, nil)

		service := NewActivityService(mockStore)
		updated, err := service.UpdateStatus("missing", models.StatusCompleted)

		assert.ErrorIs(t, err, ErrActivityNotFound)
		assert.Nil(t, updated)
		mockStore.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("UpdateActivityStatus", "a-1", models.StatusCancelled, (*time.Time)(nil)).
			Return(nil, errors.New("store unavailable"))

		service := NewActivityService(mockStore)
		updated, err := service.UpdateStatus("a-1", models.StatusCancelled)

		assert.Error(t, err)
		assert.Nil(t, updated)
		mockStore.AssertExpectations(t)
	})
}
