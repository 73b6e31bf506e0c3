package repository

import (
	"go-dashboard-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomRoleRepository interface {
	FindAll() ([]model.CustomRole, error)
	FindByID(id uuid.UUID) (*model.CustomRole, error)
	FindByName(name string) (*model.CustomRole, error)
	Create(role *model.CustomRole) error
	Update(role *model.CustomRole) error
	Delete(id uuid.UUID) error
	CountUsers(roleID uuid.UUID) (int64, error)
}

type customRoleRepo struct {
	db *gorm.DB
}

func NewCustomRoleRepo(db *gorm.DB) CustomRoleRepository {
	return &customRoleRepo{db: db}
}

func (r *customRoleRepo) FindAll() ([]model.CustomRole, error) {
	var roles []model.CustomRole
	err := r.db.Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *customRoleRepo) FindByID(id uuid.UUID) (*model.CustomRole, error) {
	var role model.CustomRole
	if err := r.db.First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *customRoleRepo) FindByName(name string) (*model.CustomRole, error) {
	var role model.CustomRole
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *customRoleRepo) Create(role *model.CustomRole) error {
	return r.db.Create(role).Error
}

func (r *customRoleRepo) Update(role *model.CustomRole) error {
	return r.db.Save(role).Error
}

func (r *customRoleRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.CustomRole{}, "id = ?", id).Error
}

// CountUsers reports how many users still reference the role. Deleting a
// role that is still assigned would silently strip those users down to
// their legacy defaults, so the service refuses while this is non-zero.
func (r *customRoleRepo) CountUsers(roleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("custom_role_id = ?", roleID).Count(&count).Error
	return count, err
}
