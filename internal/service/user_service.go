package service

import (
	"errors"
	"fmt"

	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
	"go-dashboard-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrInvalidRole  = errors.New("invalid role")
	ErrRoleNotFound = errors.New("custom role not found")
	ErrSelfDeletion = errors.New("cannot delete your own account")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, actor *model.User) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor *model.User) (*model.User, error)
	DeleteUser(userID uuid.UUID, actor *model.User) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=6"`
	FullName     string  `json:"full_name" validate:"required"`
	PhoneNumber  string  `json:"phone_number"`
	Role         string  `json:"role" validate:"required"`
	CustomRoleID *string `json:"custom_role_id"` // Optional, UUID string
}

type UpdateUserRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	FullName     string  `json:"full_name" validate:"required"`
	PhoneNumber  string  `json:"phone_number"`
	Role         string  `json:"role" validate:"required"`
	CustomRoleID *string `json:"custom_role_id"` // nil or empty string clears the assignment
	IsActive     *bool   `json:"is_active"`
}

type userService struct {
	userRepo     repository.UserRepository
	roleRepo     repository.CustomRoleRepository
	activityRepo repository.ActivityRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.CustomRoleRepository, activityRepo repository.ActivityRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		activityRepo: activityRepo,
	}
}

// resolveCustomRole parses and verifies an optional custom role reference
func (s *userService) resolveCustomRole(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	roleID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrRoleNotFound
	}
	if _, err := s.roleRepo.FindByID(roleID); err != nil {
		return nil, ErrRoleNotFound
	}
	return &roleID, nil
}

func (s *userService) CreateUser(req *CreateUserRequest, actor *model.User) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if !model.IsValidLegacyRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// 2. Check if email already exists
	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	// 3. Resolve optional custom role
	customRoleID, err := s.resolveCustomRole(req.CustomRoleID)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &model.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		CustomRoleID: customRoleID,
		IsActive:     true,
	}
	user.CreatedBy = actorID(actor)
	user.UpdatedBy = actorID(actor)

	// 5. Set password
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	// 6. Save to database
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.recordActivity(actor, "Users", "Create", "created user "+user.Email)

	return s.userRepo.FindByID(user.ID)
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor *model.User) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if !model.IsValidLegacyRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// 2. Find existing user
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if email is being changed and already exists
	if req.Email != user.Email {
		existing, _ := s.userRepo.FindByEmail(req.Email)
		if existing != nil {
			return nil, ErrEmailExists
		}
	}

	// 4. Resolve optional custom role
	customRoleID, err := s.resolveCustomRole(req.CustomRoleID)
	if err != nil {
		return nil, err
	}

	// 5. Update user fields
	user.Email = req.Email
	user.FullName = req.FullName
	user.PhoneNumber = req.PhoneNumber
	user.Role = req.Role
	user.CustomRoleID = customRoleID
	user.CustomRole = nil // Force reload from the new assignment
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedBy = actorID(actor)

	// 6. Update password if provided
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	// 7. Save to database
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.recordActivity(actor, "Users", "Update", "updated user "+user.Email)

	// 8. Reload and return
	return s.userRepo.FindByID(userID)
}

func (s *userService) DeleteUser(userID uuid.UUID, actor *model.User) error {
	if actor != nil && actor.ID == userID {
		return ErrSelfDeletion
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}

	s.recordActivity(actor, "Users", "Delete", "deleted user "+user.Email)
	return nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) recordActivity(actor *model.User, module, action, detail string) {
	if actor == nil {
		return
	}
	activity := &model.Activity{
		UserID:   actor.ID,
		UserName: actor.FullName,
		Module:   module,
		Action:   action,
		Detail:   detail,
	}
	activity.CreatedBy = actor.ID.String()
	if err := s.activityRepo.Create(activity); err != nil {
		// Activity logging must never fail the operation itself
		return
	}
}

// actorID returns the audit identifier for an acting user
func actorID(actor *model.User) string {
	if actor == nil {
		return "system"
	}
	return actor.ID.String()
}
