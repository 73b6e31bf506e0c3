package repository

import (
	"time"

	"go-dashboard-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *model.Activity) error
	FindAll(limit int) ([]model.Activity, error)
	FindByUserID(userID uuid.UUID, limit int) ([]model.Activity, error)
	CountSince(since time.Time) (int64, error)
}

type activityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db}
}

func (r *activityRepo) Create(activity *model.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepo) FindAll(limit int) ([]model.Activity, error) {
	var activities []model.Activity
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepo) FindByUserID(userID uuid.UUID, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Activity{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
