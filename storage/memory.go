package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"agrimind/models"

	"github.com/google/uuid"
)

// MemStore keeps all application records in process memory. Each
// collection is a map from id to record plus an append-only id slice, so
// iteration always runs in creation order. Records are never mutated in
// place: the one supported update (activity status) replaces the stored
// record with a modified copy.
//
// Fiber runs handlers on parallel goroutines, so every operation takes
// the store lock even though individual calls are short-lived.
type MemStore struct {
	mu sync.RWMutex

	users     map[string]*models.User
	userOrder []string

	diagnoses      map[string]*models.PlantDiagnosis
	diagnosisOrder []string

	conversations     map[string]*models.VoiceConversation
	conversationOrder []string

	activities    map[string]*models.CropActivity
	activityOrder []string

	weather      map[string]*models.WeatherData
	weatherOrder []string
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:         make(map[string]*models.User),
		diagnoses:     make(map[string]*models.PlantDiagnosis),
		conversations: make(map[string]*models.VoiceConversation),
		activities:    make(map[string]*models.CropActivity),
		weather:       make(map[string]*models.WeatherData),
	}
}

// normalizeList guarantees list fields are never nil. Callers that omit
// symptoms, recommendations or advice get an empty slice back, matching
// the create-boundary coercion policy: coerce, don't reject.
func normalizeList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// ==================== USERS ====================

func (s *MemStore) CreateUser(nu models.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  nu.Username,
		Password:  nu.Password,
		Location:  nu.Location,
		CreatedAt: time.Now(),
	}

	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user, nil
}

func (s *MemStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users[id], nil
}

// GetUserByUsername scans users in creation order and returns the first
// match. Duplicate usernames are not rejected at creation, so later
// duplicates are simply unreachable through this lookup.
func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			return s.users[id], nil
		}
	}
	return nil, nil
}

// ==================== PLANT DIAGNOSES ====================

func (s *MemStore) CreatePlantDiagnosis(nd models.NewPlantDiagnosis) (*models.PlantDiagnosis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	diagnosis := &models.PlantDiagnosis{
		ID:              uuid.New().String(),
		UserID:          nd.UserID,
		CropType:        nd.CropType,
		Condition:       nd.Condition,
		Diagnosis:       nd.Diagnosis,
		Confidence:      nd.Confidence,
		Symptoms:        normalizeList(nd.Symptoms),
		Recommendations: normalizeList(nd.Recommendations),
		TreatmentSteps:  normalizeList(nd.TreatmentSteps),
		NextCheckDate:   nd.NextCheckDate,
		ImageData:       nd.ImageData,
		Location:        nd.Location,
		CreatedAt:       time.Now(),
	}

	s.diagnoses[diagnosis.ID] = diagnosis
	s.diagnosisOrder = append(s.diagnosisOrder, diagnosis.ID)
	return diagnosis, nil
}

func (s *MemStore) GetPlantDiagnosis(id string) (*models.PlantDiagnosis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.diagnoses[id], nil
}

// GetUserPlantDiagnoses returns the user's diagnoses, most recent first.
func (s *MemStore) GetUserPlantDiagnoses(userID string) ([]*models.PlantDiagnosis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.PlantDiagnosis, 0)
	for _, id := range s.diagnosisOrder {
		if s.diagnoses[id].UserID == userID {
			results = append(results, s.diagnoses[id])
		}
	}
	sortByCreatedDesc(results)
	return results, nil
}

func (s *MemStore) GetPlantDiagnosesByCondition(userID string, condition models.Condition) ([]*models.PlantDiagnosis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.PlantDiagnosis, 0)
	for _, id := range s.diagnosisOrder {
		d := s.diagnoses[id]
		if d.UserID == userID && d.Condition == condition {
			results = append(results, d)
		}
	}
	sortByCreatedDesc(results)
	return results, nil
}

// ==================== VOICE CONVERSATIONS ====================

func (s *MemStore) CreateVoiceConversation(nc models.NewVoiceConversation) (*models.VoiceConversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	language := nc.Language
	if language == "" {
		language = "English"
	}

	conversation := &models.VoiceConversation{
		ID:        uuid.New().String(),
		UserID:    nc.UserID,
		Question:  nc.Question,
		Answer:    nc.Answer,
		Language:  language,
		AudioData: nc.AudioData,
		CreatedAt: time.Now(),
	}

	s.conversations[conversation.ID] = conversation
	s.conversationOrder = append(s.conversationOrder, conversation.ID)
	return conversation, nil
}

func (s *MemStore) GetUserVoiceConversations(userID string) ([]*models.VoiceConversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.VoiceConversation, 0)
	for _, id := range s.conversationOrder {
		if s.conversations[id].UserID == userID {
			results = append(results, s.conversations[id])
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

// ==================== CROP ACTIVITIES ====================

func (s *MemStore) CreateCropActivity(na models.NewCropActivity) (*models.CropActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := na.Status
	if status == "" {
		status = models.StatusPending
	}
	priority := na.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	activity := &models.CropActivity{
		ID:               uuid.New().String(),
		UserID:           na.UserID,
		Crop:             na.Crop,
		Activity:         na.Activity,
		Description:      na.Description,
		ScheduledDate:    na.ScheduledDate,
		CompletedDate:    na.CompletedDate,
		Status:           status,
		Priority:         priority,
		WeatherDependent: na.WeatherDependent,
		Notes:            na.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.activities[activity.ID] = activity
	s.activityOrder = append(s.activityOrder, activity.ID)
	return activity, nil
}

func (s *MemStore) GetCropActivity(id string) (*models.CropActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activities[id], nil
}

// GetUserCropActivities returns the user's activities soonest first.
// This is a forward-looking calendar, so the sort direction is the
// opposite of the diagnosis and conversation history lists.
func (s *MemStore) GetUserCropActivities(userID string) ([]*models.CropActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.CropActivity, 0)
	for _, id := range s.activityOrder {
		if s.activities[id].UserID == userID {
			results = append(results, s.activities[id])
		}
	}
	sortByScheduledAsc(results)
	return results, nil
}

func (s *MemStore) GetUserCropActivitiesByStatus(userID string, status models.ActivityStatus) ([]*models.CropActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.CropActivity, 0)
	for _, id := range s.activityOrder {
		a := s.activities[id]
		if a.UserID == userID && a.Status == status {
			results = append(results, a)
		}
	}
	sortByScheduledAsc(results)
	return results, nil
}

// UpdateActivityStatus replaces the stored activity with a copy carrying
// the new status. When the status becomes completed and no explicit
// completion date is given, the current time is recorded; for any other
// status the existing completion date is preserved. UpdatedAt is always
// refreshed. Returns nil when the id is unknown.
func (s *MemStore) UpdateActivityStatus(id string, status models.ActivityStatus, completedDate *time.Time) (*models.CropActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[id]
	if !ok {
		return nil, nil
	}

	updated := *activity
	updated.Status = status
	switch {
	case completedDate != nil:
		updated.CompletedDate = completedDate
	case status == models.StatusCompleted:
		now := time.Now()
		updated.CompletedDate = &now
	}
	updated.UpdatedAt = time.Now()

	s.activities[id] = &updated
	return &updated, nil
}

// ==================== WEATHER CACHE ====================

func (s *MemStore) CreateWeatherData(nw models.NewWeatherData) (*models.WeatherData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &models.WeatherData{
		ID:            uuid.New().String(),
		Location:      nw.Location,
		WeatherInfo:   nw.WeatherInfo,
		FarmingAdvice: normalizeList(nw.FarmingAdvice),
		CreatedAt:     time.Now(),
		ExpiresAt:     nw.ExpiresAt,
	}

	s.weather[entry.ID] = entry
	s.weatherOrder = append(s.weatherOrder, entry.ID)
	return entry, nil
}

// GetWeatherDataByLocation returns the first entry for the location,
// expired or not. Location matching is case-insensitive.
func (s *MemStore) GetWeatherDataByLocation(location string) (*models.WeatherData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.weatherOrder {
		if strings.EqualFold(s.weather[id].Location, location) {
			return s.weather[id], nil
		}
	}
	return nil, nil
}

// GetValidWeatherData returns the first unexpired entry for the location.
// Expiry is the cache's entire eviction policy: entries are skipped once
// stale but never deleted, and a miss tells the caller to fetch fresh
// data and insert a new entry.
func (s *MemStore) GetValidWeatherData(location string) (*models.WeatherData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	for _, id := range s.weatherOrder {
		w := s.weather[id]
		if strings.EqualFold(w.Location, location) && w.ExpiresAt.After(now) {
			return w, nil
		}
	}
	return nil, nil
}

// ==================== SORTING ====================

// Stable sorts keep creation order for equal timestamps. The zero
// time.Time naturally sorts as earliest, which is the documented
// treatment of records with a missing timestamp.

func sortByCreatedDesc(items []*models.PlantDiagnosis) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func sortByScheduledAsc(items []*models.CropActivity) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ScheduledDate.Before(items[j].ScheduledDate)
	})
}
