package service

import (
	"errors"
	"fmt"

	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
	"go-dashboard-api/pkg/validator"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingsService interface {
	GetAll() ([]model.Setting, error)
	Get(key string) (*model.Setting, error)
	Put(key string, req *SettingRequest, actor *model.User) (*model.Setting, error)
}

type SettingRequest struct {
	Value    string `json:"value"`
	Category string `json:"category"`
}

type settingsService struct {
	settingRepo  repository.SettingRepository
	activityRepo repository.ActivityRepository
}

func NewSettingsService(settingRepo repository.SettingRepository, activityRepo repository.ActivityRepository) SettingsService {
	return &settingsService{
		settingRepo:  settingRepo,
		activityRepo: activityRepo,
	}
}

func (s *settingsService) GetAll() ([]model.Setting, error) {
	return s.settingRepo.FindAll()
}

func (s *settingsService) Get(key string) (*model.Setting, error) {
	setting, err := s.settingRepo.FindByKey(key)
	if err != nil {
		return nil, ErrSettingNotFound
	}
	return setting, nil
}

func (s *settingsService) Put(key string, req *SettingRequest, actor *model.User) (*model.Setting, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	setting := &model.Setting{
		Key:      key,
		Value:    req.Value,
		Category: req.Category,
	}
	setting.UpdatedBy = actorID(actor)

	if err := s.settingRepo.Upsert(setting); err != nil {
		return nil, err
	}

	if actor != nil {
		activity := &model.Activity{
			UserID:   actor.ID,
			UserName: actor.FullName,
			Module:   access.ModuleSettings,
			Action:   access.ActionUpdate,
			Detail:   "updated setting " + key,
		}
		activity.CreatedBy = actor.ID.String()
		s.activityRepo.Create(activity)
	}

	return s.settingRepo.FindByKey(key)
}
