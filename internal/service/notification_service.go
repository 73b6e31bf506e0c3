package service

import (
	"errors"

	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
	"go-dashboard-api/internal/ws"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	Notify(userID *uuid.UUID, title, message string) (*model.Notification, error)
	ListForUser(userID uuid.UUID, limit int) ([]model.Notification, error)
	MarkRead(notificationID uuid.UUID, actor *model.User) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	wsHub            *ws.Hub
}

func NewNotificationService(notificationRepo repository.NotificationRepository, hub *ws.Hub) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		wsHub:            hub,
	}
}

// Notify stores a notification (nil userID = broadcast) and pushes it to
// connected dashboard sessions
func (s *notificationService) Notify(userID *uuid.UUID, title, message string) (*model.Notification, error) {
	notification := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	notification.CreatedBy = "system"

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent("notification", notification)
	return notification, nil
}

func (s *notificationService) ListForUser(userID uuid.UUID, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.notificationRepo.FindForUser(userID, limit)
}

// MarkRead marks a notification read. Only the addressee (or anyone, for a
// broadcast) may mark it.
func (s *notificationService) MarkRead(notificationID uuid.UUID, actor *model.User) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		return ErrNotificationNotFound
	}

	if notification.UserID != nil && (actor == nil || *notification.UserID != actor.ID) {
		return ErrNotificationNotFound
	}

	return s.notificationRepo.MarkRead(notificationID)
}
