package access

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"go-dashboard-api/internal/model"
)

func userWithRole(role string) *model.User {
	return &model.User{Role: role, IsActive: true}
}

func userWithCustomRole(role string, cr *model.CustomRole) *model.User {
	u := userWithRole(role)
	id := uuid.New()
	cr.ID = id
	u.CustomRoleID = &id
	u.CustomRole = cr
	return u
}

func TestHasFullAccess(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		want bool
	}{
		{"nil user", nil, false},
		{"superadmin without custom role", userWithRole(model.RoleSuperadmin), true},
		{"admin without custom role", userWithRole(model.RoleAdmin), true},
		{"manager without custom role", userWithRole(model.RoleManager), false},
		{"employee without custom role", userWithRole(model.RoleEmployee), false},
		{"telecaller without custom role", userWithRole(model.RoleTelecaller), false},
		{"custom role with full access", userWithCustomRole(model.RoleUser, &model.CustomRole{FullAccess: true}), true},
		{"admin with restrictive custom role", userWithCustomRole(model.RoleAdmin, &model.CustomRole{FullAccess: false}), false},
		{"superadmin with restrictive custom role", userWithCustomRole(model.RoleSuperadmin, &model.CustomRole{FullAccess: false}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFullAccess(tt.user); got != tt.want {
				t.Errorf("HasFullAccess = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasFullAccessUnloadedCustomRole(t *testing.T) {
	// Custom role assigned but not preloaded: deny instead of falling back
	// to the legacy admin default.
	id := uuid.New()
	u := userWithRole(model.RoleAdmin)
	u.CustomRoleID = &id

	if HasFullAccess(u) {
		t.Error("expected deny when assigned custom role is not loaded")
	}
	if HasPermission(u, ModuleClients, ActionRead) {
		t.Error("expected permission deny when assigned custom role is not loaded")
	}
}

func TestFullAccessGrantsEverything(t *testing.T) {
	u := userWithCustomRole(model.RoleTelecaller, &model.CustomRole{
		FullAccess:  true,
		Permissions: datatypes.JSON(`{"Clients": []}`),
	})

	for _, module := range Modules {
		for _, action := range Actions {
			if !HasPermission(u, module, action) {
				t.Errorf("full access user denied %s:%s", module, action)
			}
		}
	}

	caps := CapabilitiesFor(u)
	if !caps.FullAccess || !caps.TeamManager || !caps.DeleteUsers || !caps.EditSettings {
		t.Errorf("full access capabilities incomplete: %+v", caps)
	}
}

func TestHasPermissionCustomRoleList(t *testing.T) {
	u := userWithCustomRole(model.RoleManager, &model.CustomRole{
		Permissions: datatypes.JSON(`{"Clients": ["Read"]}`),
	})

	if !HasPermission(u, ModuleClients, ActionRead) {
		t.Error("Clients:Read should be granted by the list form")
	}
	if HasPermission(u, ModuleClients, ActionDelete) {
		t.Error("Clients:Delete should be denied")
	}
	// Custom role overrides the legacy manager default even for modules the
	// role omits entirely.
	if HasPermission(u, ModuleUsers, ActionCreate) {
		t.Error("Users:Create should not leak in from the manager defaults")
	}
	if HasPermission(u, ModuleActivities, ActionRead) {
		t.Error("Activities:Read should not leak in from the manager defaults")
	}
}

func TestHasPermissionCustomRoleFlags(t *testing.T) {
	u := userWithCustomRole(model.RoleUser, &model.CustomRole{
		Permissions: datatypes.JSON(`{"Clients": {"Read": true, "Update": true, "Delete": false}}`),
	})

	if !HasPermission(u, ModuleClients, ActionRead) {
		t.Error("Clients:Read should be granted by the flag form")
	}
	if !HasPermission(u, ModuleClients, ActionUpdate) {
		t.Error("Clients:Update should be granted by the flag form")
	}
	if HasPermission(u, ModuleClients, ActionDelete) {
		t.Error("Clients:Delete is explicitly false")
	}
	if HasPermission(u, ModuleClients, ActionCreate) {
		t.Error("Clients:Create is absent and must deny")
	}
}

func TestPermissionFormsAreEquivalent(t *testing.T) {
	listUser := userWithCustomRole(model.RoleUser, &model.CustomRole{
		Permissions: datatypes.JSON(`{"Clients": ["Read", "Update"]}`),
	})
	flagUser := userWithCustomRole(model.RoleUser, &model.CustomRole{
		Permissions: datatypes.JSON(`{"Clients": {"Read": true, "Update": true, "Delete": false}}`),
	})

	for _, action := range Actions {
		got := HasPermission(listUser, ModuleClients, action)
		want := HasPermission(flagUser, ModuleClients, action)
		if got != want {
			t.Errorf("Clients:%s: list form = %v, flag form = %v", action, got, want)
		}
	}
}

func TestLegacyManagerDefaults(t *testing.T) {
	manager := userWithRole(model.RoleManager)

	tests := []struct {
		module, action string
		want           bool
	}{
		{ModuleUsers, ActionCreate, true},
		{ModuleUsers, ActionRead, true},
		{ModuleUsers, ActionUpdate, true},
		{ModuleUsers, ActionDelete, false},
		{ModuleClients, ActionCreate, true},
		{ModuleClients, ActionRead, true},
		{ModuleClients, ActionUpdate, true},
		{ModuleClients, ActionDelete, true},
		{ModuleActivities, ActionRead, true},
		{ModuleActivities, ActionUpdate, false},
		{ModuleSettings, ActionRead, false},
		{ModuleSettings, ActionUpdate, false},
	}

	for _, tt := range tests {
		if got := HasPermission(manager, tt.module, tt.action); got != tt.want {
			t.Errorf("manager %s:%s = %v, want %v", tt.module, tt.action, got, tt.want)
		}
	}
}

func TestEmployeeHasNoDefaults(t *testing.T) {
	employee := userWithRole(model.RoleEmployee)

	for _, module := range Modules {
		for _, action := range Actions {
			if HasPermission(employee, module, action) {
				t.Errorf("employee granted %s:%s", module, action)
			}
		}
	}

	caps := CapabilitiesFor(employee)
	if caps != (Capabilities{}) {
		t.Errorf("employee capabilities should be all false: %+v", caps)
	}
}

func TestIsTeamManager(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		want bool
	}{
		{"nil user", nil, false},
		{"legacy manager", userWithRole(model.RoleManager), true},
		{"legacy employee", userWithRole(model.RoleEmployee), false},
		{"legacy admin via full access", userWithRole(model.RoleAdmin), true},
		{"custom role flag set", userWithCustomRole(model.RoleEmployee, &model.CustomRole{IsTeamManager: true}), true},
		{"custom role flag unset on manager", userWithCustomRole(model.RoleManager, &model.CustomRole{}), false},
		{"custom role full access", userWithCustomRole(model.RoleUser, &model.CustomRole{FullAccess: true}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTeamManager(tt.user); got != tt.want {
				t.Errorf("IsTeamManager = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDerivedPredicates(t *testing.T) {
	u := userWithCustomRole(model.RoleUser, &model.CustomRole{
		Permissions: datatypes.JSON(`{"Clients": ["Read", "Create"], "Settings": {"Read": true}}`),
	})

	if !CanViewClients(u) || !CanCreateClients(u) {
		t.Error("client view/create predicates should be granted")
	}
	if CanEditClients(u) || CanDeleteClients(u) {
		t.Error("client edit/delete predicates should be denied")
	}
	if !CanViewSettings(u) || CanEditSettings(u) {
		t.Error("settings predicates mismatch")
	}
	if CanViewUsers(u) || CanViewActivities(u) {
		t.Error("user/activity predicates should be denied")
	}
}

func TestMalformedPermissionsDeny(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not an object", `["Clients"]`},
		{"module value is a string", `{"Clients": "Read"}`},
		{"module value is a number map", `{"Clients": {"Read": 1}}`},
		{"invalid json", `{"Clients": `},
		{"empty payload", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := userWithCustomRole(model.RoleUser, &model.CustomRole{
				Permissions: datatypes.JSON(tt.payload),
			})
			for _, module := range Modules {
				for _, action := range Actions {
					if HasPermission(u, module, action) {
						t.Errorf("malformed payload granted %s:%s", module, action)
					}
				}
			}
		})
	}
}
