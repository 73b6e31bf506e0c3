package service

import (
	"errors"
	"fmt"

	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
	"go-dashboard-api/internal/ws"
	"go-dashboard-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrClientEmailExists = errors.New("a client with this email already exists")
)

type ClientService interface {
	CreateClient(req *ClientRequest, actor *model.User) (*model.Client, error)
	UpdateClient(clientID uuid.UUID, req *ClientRequest, actor *model.User) (*model.Client, error)
	DeleteClient(clientID uuid.UUID, actor *model.User) error
	GetAllClients() ([]model.Client, error)
	GetClientByID(id uuid.UUID) (*model.Client, error)
}

type ClientRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    string  `json:"phone_number"`
	Company        string  `json:"company"`
	Status         string  `json:"status" validate:"omitempty,oneof=active paused churned"`
	Notes          string  `json:"notes"`
	AssignedUserID *string `json:"assigned_user_id"` // Optional, UUID string
}

type clientService struct {
	clientRepo       repository.ClientRepository
	activityRepo     repository.ActivityRepository
	notificationRepo repository.NotificationRepository
	wsHub            *ws.Hub
}

func NewClientService(clientRepo repository.ClientRepository, activityRepo repository.ActivityRepository, notificationRepo repository.NotificationRepository, hub *ws.Hub) ClientService {
	return &clientService{
		clientRepo:       clientRepo,
		activityRepo:     activityRepo,
		notificationRepo: notificationRepo,
		wsHub:            hub,
	}
}

func (s *clientService) CreateClient(req *ClientRequest, actor *model.User) (*model.Client, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.clientRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrClientEmailExists
	}

	assignedUserID, err := parseOptionalUUID(req.AssignedUserID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.ClientStatusActive
	}

	client := &model.Client{
		Name:           req.Name,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Company:        req.Company,
		Status:         status,
		Notes:          req.Notes,
		AssignedUserID: assignedUserID,
	}
	client.CreatedBy = actorID(actor)
	client.UpdatedBy = actorID(actor)

	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	s.recordAndNotify(actor, access.ActionCreate, client)
	return client, nil
}

func (s *clientService) UpdateClient(clientID uuid.UUID, req *ClientRequest, actor *model.User) (*model.Client, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	client, err := s.clientRepo.FindByID(clientID)
	if err != nil {
		return nil, ErrClientNotFound
	}

	if req.Email != client.Email {
		existing, _ := s.clientRepo.FindByEmail(req.Email)
		if existing != nil {
			return nil, ErrClientEmailExists
		}
	}

	assignedUserID, err := parseOptionalUUID(req.AssignedUserID)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Email = req.Email
	client.PhoneNumber = req.PhoneNumber
	client.Company = req.Company
	if req.Status != "" {
		client.Status = req.Status
	}
	client.Notes = req.Notes
	client.AssignedUserID = assignedUserID
	client.AssignedUser = nil // Force reload from the new assignment
	client.UpdatedBy = actorID(actor)

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}

	s.recordAndNotify(actor, access.ActionUpdate, client)
	return s.clientRepo.FindByID(clientID)
}

func (s *clientService) DeleteClient(clientID uuid.UUID, actor *model.User) error {
	client, err := s.clientRepo.FindByID(clientID)
	if err != nil {
		return ErrClientNotFound
	}

	if err := s.clientRepo.Delete(clientID); err != nil {
		return err
	}

	s.recordAndNotify(actor, access.ActionDelete, client)
	return nil
}

func (s *clientService) GetAllClients() ([]model.Client, error) {
	return s.clientRepo.FindAll()
}

func (s *clientService) GetClientByID(id uuid.UUID) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// recordAndNotify appends an activity entry and pushes a broadcast
// notification for a client mutation. Neither failure aborts the operation.
func (s *clientService) recordAndNotify(actor *model.User, action string, client *model.Client) {
	if actor == nil {
		return
	}

	detail := fmt.Sprintf("%s client %s", actionVerb(action), client.Name)

	activity := &model.Activity{
		UserID:   actor.ID,
		UserName: actor.FullName,
		Module:   access.ModuleClients,
		Action:   action,
		Detail:   detail,
	}
	activity.CreatedBy = actor.ID.String()
	s.activityRepo.Create(activity)

	notification := &model.Notification{
		Title:   "Client " + actionVerb(action),
		Message: fmt.Sprintf("%s %s", actor.FullName, detail),
	}
	notification.CreatedBy = actor.ID.String()
	if err := s.notificationRepo.Create(notification); err == nil {
		go s.wsHub.BroadcastEvent("notification", notification)
	}
}

func actionVerb(action string) string {
	switch action {
	case access.ActionCreate:
		return "created"
	case access.ActionUpdate:
		return "updated"
	case access.ActionDelete:
		return "deleted"
	default:
		return "changed"
	}
}

// parseOptionalUUID parses an optional UUID string, mapping nil/empty to nil
func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, errors.New("invalid uuid: " + *raw)
	}
	return &id, nil
}
