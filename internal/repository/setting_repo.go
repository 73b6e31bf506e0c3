package repository

import (
	"go-dashboard-api/internal/model"

	"gorm.io/gorm"
)

type SettingRepository interface {
	FindAll() ([]model.Setting, error)
	FindByKey(key string) (*model.Setting, error)
	Upsert(setting *model.Setting) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db}
}

func (r *settingRepo) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order("category ASC, key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepo) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepo) Upsert(setting *model.Setting) error {
	var existing model.Setting
	err := r.db.Where("key = ?", setting.Key).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(setting).Error
	}
	if err != nil {
		return err
	}
	existing.Value = setting.Value
	existing.Category = setting.Category
	existing.UpdatedBy = setting.UpdatedBy
	return r.db.Save(&existing).Error
}
