package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"go-dashboard-api/internal/model"
)

type mockActivityRepo struct {
	activities []model.Activity
}

func (m *mockActivityRepo) Create(activity *model.Activity) error {
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *mockActivityRepo) FindAll(limit int) ([]model.Activity, error) {
	if limit > 0 && limit < len(m.activities) {
		return m.activities[:limit], nil
	}
	return m.activities, nil
}

func (m *mockActivityRepo) FindByUserID(userID uuid.UUID, limit int) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range m.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockActivityRepo) CountSince(since time.Time) (int64, error) {
	return int64(len(m.activities)), nil
}

func seedActivities(repo *mockActivityRepo, managerID, employeeID uuid.UUID) {
	entries := []model.Activity{
		{UserID: managerID, UserName: "Manager", Module: "Clients", Action: "Create"},
		{UserID: employeeID, UserName: "Employee", Module: "Clients", Action: "Update"},
		{UserID: employeeID, UserName: "Employee", Module: "Clients", Action: "Update"},
	}
	for i := range entries {
		repo.Create(&entries[i])
	}
}

func TestListVisibleDeniesWithoutReadPermission(t *testing.T) {
	svc := NewActivityService(&mockActivityRepo{})

	employee := &model.User{Role: model.RoleEmployee, IsActive: true}
	if _, err := svc.ListVisible(employee, 10); !errors.Is(err, ErrActivityAccessDenied) {
		t.Fatalf("expected ErrActivityAccessDenied, got %v", err)
	}

	if _, err := svc.ListVisible(nil, 10); !errors.Is(err, ErrActivityAccessDenied) {
		t.Fatalf("expected ErrActivityAccessDenied for nil user, got %v", err)
	}
}

func TestListVisibleFullAccessSeesAll(t *testing.T) {
	repo := &mockActivityRepo{}
	managerID, employeeID := uuid.New(), uuid.New()
	seedActivities(repo, managerID, employeeID)
	svc := NewActivityService(repo)

	admin := &model.User{Role: model.RoleAdmin, IsActive: true}
	activities, err := svc.ListVisible(admin, 10)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}
	if len(activities) != 3 {
		t.Errorf("admin should see all 3 activities, got %d", len(activities))
	}
}

func TestListVisibleTeamManagerSeesAll(t *testing.T) {
	repo := &mockActivityRepo{}
	managerID, employeeID := uuid.New(), uuid.New()
	seedActivities(repo, managerID, employeeID)
	svc := NewActivityService(repo)

	manager := &model.User{Role: model.RoleManager, IsActive: true}
	manager.ID = managerID

	activities, err := svc.ListVisible(manager, 10)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}
	if len(activities) != 3 {
		t.Errorf("team manager should see all 3 activities, got %d", len(activities))
	}
}

func TestListVisibleScopesToOwnEntries(t *testing.T) {
	repo := &mockActivityRepo{}
	managerID, employeeID := uuid.New(), uuid.New()
	seedActivities(repo, managerID, employeeID)
	svc := NewActivityService(repo)

	// Custom role with Activities:Read but no team-manager flag: the user
	// sees only their own entries.
	roleID := uuid.New()
	viewer := &model.User{Role: model.RoleEmployee, IsActive: true}
	viewer.ID = employeeID
	viewer.CustomRoleID = &roleID
	viewer.CustomRole = &model.CustomRole{
		Permissions: []byte(`{"Activities": ["Read"]}`),
	}
	viewer.CustomRole.ID = roleID

	activities, err := svc.ListVisible(viewer, 10)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("viewer should see only their 2 entries, got %d", len(activities))
	}
	for _, a := range activities {
		if a.UserID != employeeID {
			t.Errorf("viewer saw someone else's activity: %+v", a)
		}
	}
}
