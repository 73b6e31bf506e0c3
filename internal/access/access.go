// Package access answers authorization queries from a user snapshot.
//
// Every function is a pure predicate over the snapshot passed in: no I/O,
// no caching, no mutation, safe to call from any number of request handlers
// concurrently. Missing or malformed data always resolves to deny; nothing
// here ever returns an error or panics.
//
// Evaluation order is fixed and significant: full-access short-circuit,
// then the explicit custom-role permission, then the legacy role default,
// then deny. A custom role, once assigned, replaces the legacy defaults
// entirely; the legacy branch only fires when no custom role is assigned.
package access

import "go-dashboard-api/internal/model"

// Module names used as the first half of a permission key
const (
	ModuleUsers      = "Users"
	ModuleClients    = "Clients"
	ModuleActivities = "Activities"
	ModuleSettings   = "Settings"
)

// Action names used as the second half of a permission key
const (
	ActionCreate = "Create"
	ActionRead   = "Read"
	ActionUpdate = "Update"
	ActionDelete = "Delete"
)

// Modules lists every known permission module
var Modules = []string{ModuleUsers, ModuleClients, ModuleActivities, ModuleSettings}

// Actions lists every known permission action
var Actions = []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

// managerDefaults is the fixed permission set granted to legacy manager
// accounts that have no custom role assigned. Preserved verbatim from the
// pre-custom-role behavior; note it deliberately omits Users:Delete,
// Settings and Activities write actions.
var managerDefaults = PermissionSet{
	ModuleUsers:      {ActionCreate: true, ActionRead: true, ActionUpdate: true},
	ModuleClients:    {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true},
	ModuleActivities: {ActionRead: true},
}

// HasFullAccess reports whether the user is granted every permission
// unconditionally: either their custom role has the full-access flag, or
// they have no custom role assigned and carry a legacy superadmin/admin
// role. A user whose custom role is assigned but not loaded is denied
// rather than falling back to the legacy role.
func HasFullAccess(u *model.User) bool {
	if u == nil {
		return false
	}
	if u.CustomRoleID != nil {
		return u.CustomRole != nil && u.CustomRole.FullAccess
	}
	return u.Role == model.RoleSuperadmin || u.Role == model.RoleAdmin
}

// HasPermission reports whether the user may perform action on module
func HasPermission(u *model.User, module, action string) bool {
	if HasFullAccess(u) {
		return true
	}
	if u == nil {
		return false
	}
	if u.CustomRoleID != nil {
		if u.CustomRole == nil {
			return false
		}
		return Normalize(u.CustomRole.Permissions).Allows(module, action)
	}
	if u.Role == model.RoleManager {
		return managerDefaults.Allows(module, action)
	}
	return false
}

// IsTeamManager reports whether the user manages a team: full access implies
// it, the custom role can grant it explicitly, and legacy manager accounts
// without a custom role keep it for backward compatibility.
func IsTeamManager(u *model.User) bool {
	if HasFullAccess(u) {
		return true
	}
	if u == nil {
		return false
	}
	if u.CustomRoleID != nil {
		return u.CustomRole != nil && u.CustomRole.IsTeamManager
	}
	return u.Role == model.RoleManager
}

func CanViewClients(u *model.User) bool   { return HasPermission(u, ModuleClients, ActionRead) }
func CanCreateClients(u *model.User) bool { return HasPermission(u, ModuleClients, ActionCreate) }
func CanEditClients(u *model.User) bool   { return HasPermission(u, ModuleClients, ActionUpdate) }
func CanDeleteClients(u *model.User) bool { return HasPermission(u, ModuleClients, ActionDelete) }

func CanViewUsers(u *model.User) bool   { return HasPermission(u, ModuleUsers, ActionRead) }
func CanCreateUsers(u *model.User) bool { return HasPermission(u, ModuleUsers, ActionCreate) }
func CanEditUsers(u *model.User) bool   { return HasPermission(u, ModuleUsers, ActionUpdate) }
func CanDeleteUsers(u *model.User) bool { return HasPermission(u, ModuleUsers, ActionDelete) }

func CanViewActivities(u *model.User) bool { return HasPermission(u, ModuleActivities, ActionRead) }
func CanViewSettings(u *model.User) bool   { return HasPermission(u, ModuleSettings, ActionRead) }
func CanEditSettings(u *model.User) bool   { return HasPermission(u, ModuleSettings, ActionUpdate) }

// Capabilities bundles the derived predicates for one user. Returned by the
// login and token-validation endpoints so the frontend can hide controls the
// user cannot use without re-deriving the rules client side.
type Capabilities struct {
	FullAccess     bool `json:"full_access"`
	TeamManager    bool `json:"team_manager"`
	ViewClients    bool `json:"view_clients"`
	CreateClients  bool `json:"create_clients"`
	EditClients    bool `json:"edit_clients"`
	DeleteClients  bool `json:"delete_clients"`
	ViewUsers      bool `json:"view_users"`
	CreateUsers    bool `json:"create_users"`
	EditUsers      bool `json:"edit_users"`
	DeleteUsers    bool `json:"delete_users"`
	ViewActivities bool `json:"view_activities"`
	ViewSettings   bool `json:"view_settings"`
	EditSettings   bool `json:"edit_settings"`
}

// CapabilitiesFor derives the full capability set for a user snapshot
func CapabilitiesFor(u *model.User) Capabilities {
	return Capabilities{
		FullAccess:     HasFullAccess(u),
		TeamManager:    IsTeamManager(u),
		ViewClients:    CanViewClients(u),
		CreateClients:  CanCreateClients(u),
		EditClients:    CanEditClients(u),
		DeleteClients:  CanDeleteClients(u),
		ViewUsers:      CanViewUsers(u),
		CreateUsers:    CanCreateUsers(u),
		EditUsers:      CanEditUsers(u),
		DeleteUsers:    CanDeleteUsers(u),
		ViewActivities: CanViewActivities(u),
		ViewSettings:   CanViewSettings(u),
		EditSettings:   CanEditSettings(u),
	}
}
