package engine

import "eduverse/models"

// Capability names an action a user may be allowed to perform. Role checks
// live here, at the engine boundary, instead of being duplicated across
// every handler.
type Capability string

const (
	CapEnroll        Capability = "enroll"
	CapManageCourses Capability = "manage_courses"
	CapManageUsers   Capability = "manage_users"
)

// Can reports whether the user with the given id holds the capability.
// Unknown users hold nothing.
func (e *Engine) Can(userID string, capability Capability) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.userByID(userID)
	if !ok {
		return false
	}
	switch capability {
	case CapEnroll:
		return user.Role == models.RoleStudent
	case CapManageCourses:
		return user.Role == models.RoleInstructor || user.Role == models.RoleAdmin
	case CapManageUsers:
		return user.Role == models.RoleAdmin
	}
	return false
}
