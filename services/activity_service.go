package services

import (
	"time"

	"agrimind/models"
)

// ActivityService manages the crop activity calendar.
type ActivityService struct {
	store ActivityStore
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// Create schedules a new activity. Status and priority default at the
// store when the request leaves them empty.
func (as *ActivityService) Create(userID string, req models.CreateActivityRequest) (*models.CropActivity, error) {
	scheduled, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	return as.store.CreateCropActivity(models.NewCropActivity{
		UserID:           userID,
		Crop:             req.Crop,
		Activity:         req.Activity,
		Description:      req.Description,
		ScheduledDate:    scheduled,
		Status:           models.ActivityStatus(req.Status),
		Priority:         models.Priority(req.Priority),
		WeatherDependent: req.WeatherDependent,
		Notes:            req.Notes,
	})
}

// List returns the user's calendar, soonest first. When status is
// non-empty the list is filtered to exact matches.
func (as *ActivityService) List(userID string, status models.ActivityStatus) ([]*models.CropActivity, error) {
	if status != "" {
		return as.store.GetUserCropActivitiesByStatus(userID, status)
	}
	return as.store.GetUserCropActivities(userID)
}

// UpdateStatus moves an activity to a new lifecycle state. The store
// records the completion time when the status becomes completed.
func (as *ActivityService) UpdateStatus(id string, status models.ActivityStatus) (*models.CropActivity, error) {
	updated, err := as.store.UpdateActivityStatus(id, status, nil)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrActivityNotFound
	}
	return updated, nil
}
