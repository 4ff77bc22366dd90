// Package policy is the single place deciding who may see what content.
// Controllers load the rows, policy answers the question; a failed check
// here is a forbidden condition, distinct from an unknown id.
package policy

import (
	courseModels "lms/models/course"
)

// Roles recognized by the access policy.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// CanSeeCourse reports whether a viewer with the given role may see the
// course. Admins see private and public courses; everyone else, including
// guests (empty role), sees public only.
func CanSeeCourse(role string, c *courseModels.Course) bool {
	if role == RoleAdmin {
		return true
	}
	return c.Status == courseModels.StatusPublic
}

// ListPublicOnly reports whether course listings for the role must be
// restricted to public courses.
func ListPublicOnly(role string) bool {
	return role != RoleAdmin
}

// CanAccessModule reports whether an enrolled-content read is allowed:
// the module must be public and the viewer must be in the parent course's
// learner set. Enrollment only counts while the course itself is public.
func CanAccessModule(c *courseModels.Course, m *courseModels.Module, enrolled bool) bool {
	if m.Status != courseModels.StatusPublic {
		return false
	}
	return c.Status == courseModels.StatusPublic && enrolled
}

// CanBrowseModule reports whether a guest-facing read may show the module.
// Browsing bypasses enrollment but never shows private content.
func CanBrowseModule(c *courseModels.Course, m *courseModels.Module) bool {
	return c.Status == courseModels.StatusPublic && m.Status == courseModels.StatusPublic
}
