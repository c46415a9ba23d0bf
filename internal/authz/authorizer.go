// Package authz decides what a session's role may do.
package authz

// Action constants define the authorization actions.
const (
	ActionProfileView   = "profile:view"
	ActionDisposalUse   = "disposal:use"
	ActionDashboardView = "dashboard:view"
	ActionUsersManage   = "users:manage"
	ActionBinsManage    = "bins:manage"
)

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform checks if role may perform action.
	CanPerform(role, action string) bool

	// IsAdmin reports whether role is an administrator role.
	IsAdmin(role string) bool
}
