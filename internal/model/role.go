package model

import "gorm.io/datatypes"

// Legacy role codes as constants. Accounts created before custom roles
// existed carry one of these; accounts with a CustomRole assigned ignore
// the legacy code except for the manager compatibility rule.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleEmployee   = "employee"
	RoleTelecaller = "telecaller"
	RoleUser       = "user"
)

// LegacyRoles lists every accepted legacy role code
var LegacyRoles = []string{
	RoleSuperadmin,
	RoleAdmin,
	RoleManager,
	RoleEmployee,
	RoleTelecaller,
	RoleUser,
}

// CustomRole is an administrator-defined named permission set. Once assigned
// to a user it replaces the legacy role defaults entirely.
//
// Permissions is stored as JSONB and is polymorphic per module: the value for
// a module is either an array of granted action names or an object mapping
// action name to a boolean flag. Both forms are accepted, e.g.
//
//	{"Clients": ["Read", "Update"]}
//	{"Clients": {"Read": true, "Update": true, "Delete": false}}
type CustomRole struct {
	BaseModel
	Name          string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description   string         `gorm:"type:text" json:"description"`
	FullAccess    bool           `gorm:"default:false" json:"full_access"`
	IsTeamManager bool           `gorm:"default:false" json:"is_team_manager"`
	Permissions   datatypes.JSON `gorm:"type:jsonb" json:"permissions"`
}

// TableName specifies the table name for GORM
func (CustomRole) TableName() string {
	return "custom_roles"
}
