package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"go-dashboard-api/internal/model"
)

type mockCustomRoleRepo struct {
	roles     map[uuid.UUID]*model.CustomRole
	userCount map[uuid.UUID]int64
}

func newMockCustomRoleRepo() *mockCustomRoleRepo {
	return &mockCustomRoleRepo{
		roles:     map[uuid.UUID]*model.CustomRole{},
		userCount: map[uuid.UUID]int64{},
	}
}

func (m *mockCustomRoleRepo) FindAll() ([]model.CustomRole, error) {
	var out []model.CustomRole
	for _, r := range m.roles {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockCustomRoleRepo) FindByID(id uuid.UUID) (*model.CustomRole, error) {
	if r, ok := m.roles[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomRoleRepo) FindByName(name string) (*model.CustomRole, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomRoleRepo) Create(role *model.CustomRole) error {
	role.ID = uuid.New()
	m.roles[role.ID] = role
	return nil
}

func (m *mockCustomRoleRepo) Update(role *model.CustomRole) error {
	m.roles[role.ID] = role
	return nil
}

func (m *mockCustomRoleRepo) Delete(id uuid.UUID) error {
	delete(m.roles, id)
	return nil
}

func (m *mockCustomRoleRepo) CountUsers(roleID uuid.UUID) (int64, error) {
	return m.userCount[roleID], nil
}

func testActor() *model.User {
	actor := &model.User{Role: model.RoleSuperadmin, FullName: "Root", IsActive: true}
	actor.ID = uuid.New()
	return actor
}

func TestCreateRoleValidPayloads(t *testing.T) {
	svc := NewCustomRoleService(newMockCustomRoleRepo(), &mockActivityRepo{})

	tests := []struct {
		name        string
		permissions string
	}{
		{"list form", `{"Clients": ["Read", "Update"]}`},
		{"flag form", `{"Users": {"Read": true, "Delete": false}}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := svc.CreateRole(&RoleRequest{
				Name:        "role-" + tt.name,
				Permissions: datatypes.JSON(tt.permissions),
			}, testActor())
			if err != nil {
				t.Fatalf("CreateRole failed: %v", err)
			}
			if role.ID == uuid.Nil {
				t.Error("role should have an ID after create")
			}
		})
	}
}

func TestCreateRoleRejectsInvalidPermissions(t *testing.T) {
	svc := NewCustomRoleService(newMockCustomRoleRepo(), &mockActivityRepo{})

	tests := []struct {
		name        string
		permissions string
	}{
		{"unknown action", `{"Clients": ["Approve"]}`},
		{"scalar module value", `{"Clients": 5}`},
		{"top level array", `["Clients"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRole(&RoleRequest{
				Name:        "bad-" + tt.name,
				Permissions: datatypes.JSON(tt.permissions),
			}, testActor())
			if !errors.Is(err, ErrInvalidPermissions) {
				t.Fatalf("expected ErrInvalidPermissions, got %v", err)
			}
		})
	}
}

func TestCreateRoleRejectsDuplicateName(t *testing.T) {
	repo := newMockCustomRoleRepo()
	svc := NewCustomRoleService(repo, &mockActivityRepo{})

	if _, err := svc.CreateRole(&RoleRequest{Name: "Analysts"}, testActor()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateRole(&RoleRequest{Name: "Analysts"}, testActor()); !errors.Is(err, ErrRoleNameExists) {
		t.Fatalf("expected ErrRoleNameExists, got %v", err)
	}
}

func TestDeleteRoleRefusesWhileAssigned(t *testing.T) {
	repo := newMockCustomRoleRepo()
	svc := NewCustomRoleService(repo, &mockActivityRepo{})

	role, err := svc.CreateRole(&RoleRequest{Name: "Support"}, testActor())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	repo.userCount[role.ID] = 2
	if err := svc.DeleteRole(role.ID, testActor()); !errors.Is(err, ErrRoleInUse) {
		t.Fatalf("expected ErrRoleInUse, got %v", err)
	}

	repo.userCount[role.ID] = 0
	if err := svc.DeleteRole(role.ID, testActor()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(role.ID); err == nil {
		t.Error("role should be gone after delete")
	}
}
