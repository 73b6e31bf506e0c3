package service

import (
	"errors"

	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
)

var ErrActivityAccessDenied = errors.New("not allowed to view activities")

// Default cap on activity listings
const defaultActivityLimit = 200

type ActivityService interface {
	ListVisible(actor *model.User, limit int) ([]model.ActivityResponse, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// ListVisible returns the activity log scoped to what the actor may see:
// full-access users and team managers see the whole log, anyone else with
// the Activities read permission sees only their own entries.
func (s *activityService) ListVisible(actor *model.User, limit int) ([]model.ActivityResponse, error) {
	if !access.CanViewActivities(actor) {
		return nil, ErrActivityAccessDenied
	}

	if limit <= 0 || limit > defaultActivityLimit {
		limit = defaultActivityLimit
	}

	var (
		activities []model.Activity
		err        error
	)
	if access.HasFullAccess(actor) || access.IsTeamManager(actor) {
		activities, err = s.activityRepo.FindAll(limit)
	} else {
		activities, err = s.activityRepo.FindByUserID(actor.ID, limit)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]model.ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = activity.ToResponse()
	}
	return responses, nil
}
