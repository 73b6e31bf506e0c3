package service

import (
	"time"

	"go-dashboard-api/internal/repository"
)

type DashboardService interface {
	GetStats() (*DashboardStats, error)
}

// DashboardStats is the headline summary shown on the dashboard landing page
type DashboardStats struct {
	TotalClients    int64            `json:"total_clients"`
	ClientsByStatus map[string]int64 `json:"clients_by_status"`
	ActiveUsers     int64            `json:"active_users"`
	ActivitiesToday int64            `json:"activities_today"`
	ActivitiesWeek  int64            `json:"activities_week"`
}

type dashboardService struct {
	clientRepo   repository.ClientRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

func NewDashboardService(clientRepo repository.ClientRepository, userRepo repository.UserRepository, activityRepo repository.ActivityRepository) DashboardService {
	return &dashboardService{
		clientRepo:   clientRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	byStatus, err := s.clientRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range byStatus {
		total += count
	}

	activeUsers, err := s.userRepo.CountActive()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.activityRepo.CountSince(startOfDay)
	if err != nil {
		return nil, err
	}

	week, err := s.activityRepo.CountSince(startOfDay.AddDate(0, 0, -6))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalClients:    total,
		ClientsByStatus: byStatus,
		ActiveUsers:     activeUsers,
		ActivitiesToday: today,
		ActivitiesWeek:  week,
	}, nil
}
