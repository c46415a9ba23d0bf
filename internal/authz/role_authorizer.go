package authz

import "strings"

// level is the privilege tier of a role.
type level int

const (
	levelMember level = iota
	levelAdmin
)

// actionLevels maps actions to the lowest tier allowed to perform them.
var actionLevels = map[string]level{
	ActionProfileView:   levelMember,
	ActionDisposalUse:   levelMember,
	ActionDashboardView: levelAdmin,
	ActionUsersManage:   levelAdmin,
	ActionBinsManage:    levelAdmin,
}

// RoleAuthorizer implements Authorizer from the backend role label. Roles
// listed as admin roles are administrators, every other role is a member.
type RoleAuthorizer struct {
	adminRoles map[string]struct{}
}

// NewRoleAuthorizer creates a RoleAuthorizer. Role labels compare case
// insensitively.
func NewRoleAuthorizer(adminRoles []string) *RoleAuthorizer {
	set := make(map[string]struct{}, len(adminRoles))
	for _, r := range adminRoles {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			set[r] = struct{}{}
		}
	}
	return &RoleAuthorizer{adminRoles: set}
}

// IsAdmin reports whether role is an administrator role.
func (a *RoleAuthorizer) IsAdmin(role string) bool {
	_, ok := a.adminRoles[strings.ToLower(strings.TrimSpace(role))]
	return ok
}

// CanPerform checks if role may perform action. Unknown actions are denied.
func (a *RoleAuthorizer) CanPerform(role, action string) bool {
	required, exists := actionLevels[action]
	if !exists {
		return false
	}
	if a.IsAdmin(role) {
		return true
	}
	return required == levelMember
}
