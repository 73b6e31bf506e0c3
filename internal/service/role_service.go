package service

import (
	"errors"
	"fmt"

	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
	"go-dashboard-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrRoleNameExists     = errors.New("a role with this name already exists")
	ErrRoleInUse          = errors.New("role is still assigned to users")
	ErrInvalidPermissions = errors.New("invalid permissions payload")
)

type CustomRoleService interface {
	CreateRole(req *RoleRequest, actor *model.User) (*model.CustomRole, error)
	UpdateRole(roleID uuid.UUID, req *RoleRequest, actor *model.User) (*model.CustomRole, error)
	DeleteRole(roleID uuid.UUID, actor *model.User) error
	GetAllRoles() ([]model.CustomRole, error)
	GetRoleByID(id uuid.UUID) (*model.CustomRole, error)
}

type RoleRequest struct {
	Name          string         `json:"name" validate:"required"`
	Description   string         `json:"description"`
	FullAccess    bool           `json:"full_access"`
	IsTeamManager bool           `json:"is_team_manager"`
	Permissions   datatypes.JSON `json:"permissions"`
}

type customRoleService struct {
	roleRepo     repository.CustomRoleRepository
	activityRepo repository.ActivityRepository
}

func NewCustomRoleService(roleRepo repository.CustomRoleRepository, activityRepo repository.ActivityRepository) CustomRoleService {
	return &customRoleService{
		roleRepo:     roleRepo,
		activityRepo: activityRepo,
	}
}

func (s *customRoleService) CreateRole(req *RoleRequest, actor *model.User) (*model.CustomRole, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if module, ok := access.ValidatePermissions(req.Permissions); !ok {
		if module != "" {
			return nil, fmt.Errorf("%w: module %q", ErrInvalidPermissions, module)
		}
		return nil, ErrInvalidPermissions
	}

	existing, _ := s.roleRepo.FindByName(req.Name)
	if existing != nil {
		return nil, ErrRoleNameExists
	}

	role := &model.CustomRole{
		Name:          req.Name,
		Description:   req.Description,
		FullAccess:    req.FullAccess,
		IsTeamManager: req.IsTeamManager,
		Permissions:   req.Permissions,
	}
	role.CreatedBy = actorID(actor)
	role.UpdatedBy = actorID(actor)

	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}

	s.recordActivity(actor, "Create", "created role "+role.Name)
	return role, nil
}

func (s *customRoleService) UpdateRole(roleID uuid.UUID, req *RoleRequest, actor *model.User) (*model.CustomRole, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if module, ok := access.ValidatePermissions(req.Permissions); !ok {
		if module != "" {
			return nil, fmt.Errorf("%w: module %q", ErrInvalidPermissions, module)
		}
		return nil, ErrInvalidPermissions
	}

	role, err := s.roleRepo.FindByID(roleID)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	if req.Name != role.Name {
		existing, _ := s.roleRepo.FindByName(req.Name)
		if existing != nil {
			return nil, ErrRoleNameExists
		}
	}

	role.Name = req.Name
	role.Description = req.Description
	role.FullAccess = req.FullAccess
	role.IsTeamManager = req.IsTeamManager
	role.Permissions = req.Permissions
	role.UpdatedBy = actorID(actor)

	if err := s.roleRepo.Update(role); err != nil {
		return nil, err
	}

	s.recordActivity(actor, "Update", "updated role "+role.Name)
	return role, nil
}

func (s *customRoleService) DeleteRole(roleID uuid.UUID, actor *model.User) error {
	role, err := s.roleRepo.FindByID(roleID)
	if err != nil {
		return ErrRoleNotFound
	}

	count, err := s.roleRepo.CountUsers(roleID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoleInUse
	}

	if err := s.roleRepo.Delete(roleID); err != nil {
		return err
	}

	s.recordActivity(actor, "Delete", "deleted role "+role.Name)
	return nil
}

func (s *customRoleService) GetAllRoles() ([]model.CustomRole, error) {
	return s.roleRepo.FindAll()
}

func (s *customRoleService) GetRoleByID(id uuid.UUID) (*model.CustomRole, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

func (s *customRoleService) recordActivity(actor *model.User, action, detail string) {
	if actor == nil {
		return
	}
	activity := &model.Activity{
		UserID:   actor.ID,
		UserName: actor.FullName,
		Module:   "Roles",
		Action:   action,
		Detail:   detail,
	}
	activity.CreatedBy = actor.ID.String()
	s.activityRepo.Create(activity)
}
