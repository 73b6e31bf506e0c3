package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/model"
)

// injectUser stands in for RequireAuth in tests: it places a prebuilt user
// snapshot into locals so the guards under test see a realistic context.
func injectUser(user *model.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(UserKey, user)
		}
		return c.Next()
	}
}

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(200)
}

func requestStatus(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestRequirePermission(t *testing.T) {
	roleID := uuid.New()
	restricted := &model.User{Role: model.RoleEmployee, IsActive: true}
	restricted.CustomRoleID = &roleID
	restricted.CustomRole = &model.CustomRole{
		Permissions: datatypes.JSON(`{"Clients": ["Read"]}`),
	}
	restricted.CustomRole.ID = roleID

	tests := []struct {
		name   string
		user   *model.User
		module string
		action string
		want   int
	}{
		{"granted by custom role", restricted, access.ModuleClients, access.ActionRead, 200},
		{"denied by custom role", restricted, access.ModuleClients, access.ActionDelete, 403},
		{"full access passes", &model.User{Role: model.RoleAdmin, IsActive: true}, access.ModuleSettings, access.ActionUpdate, 200},
		{"no user denied", nil, access.ModuleClients, access.ActionRead, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", injectUser(tt.user), RequirePermission(tt.module, tt.action), okHandler)

			if got := requestStatus(t, app); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireFullAccess(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		want int
	}{
		{"superadmin passes", &model.User{Role: model.RoleSuperadmin, IsActive: true}, 200},
		{"manager denied", &model.User{Role: model.RoleManager, IsActive: true}, 403},
		{"no user denied", nil, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", injectUser(tt.user), RequireFullAccess(), okHandler)

			if got := requestStatus(t, app); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireTeamManager(t *testing.T) {
	roleID := uuid.New()
	teamLead := &model.User{Role: model.RoleEmployee, IsActive: true}
	teamLead.CustomRoleID = &roleID
	teamLead.CustomRole = &model.CustomRole{IsTeamManager: true}
	teamLead.CustomRole.ID = roleID

	tests := []struct {
		name string
		user *model.User
		want int
	}{
		{"legacy manager passes", &model.User{Role: model.RoleManager, IsActive: true}, 200},
		{"custom role team manager passes", teamLead, 200},
		{"employee denied", &model.User{Role: model.RoleEmployee, IsActive: true}, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", injectUser(tt.user), RequireTeamManager(), okHandler)

			if got := requestStatus(t, app); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}
