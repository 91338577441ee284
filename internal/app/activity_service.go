package app

import (
	"recipebox/internal/model"
)

type ActivityStore interface {
	ListByUserID(userID string, limit int) ([]model.Activity, error)
}

type ActivityService struct {
	activities ActivityStore
}

func NewActivityService(activities ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) ListForUser(userID string, limit int) ([]model.Activity, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	activities, err := s.activities.ListByUserID(userID, limit)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []model.Activity{}
	}
	return activities, nil
}
