package middleware

import "scholarship_portal_backend/internal/model"

// Action names a privileged capability. Role checks happen only here and in
// the route guards; the core services never branch on role.
type Action string

const (
	ActionViewApplications    Action = "applications:view"
	ActionReviewApplications  Action = "applications:review"
	ActionDeleteApplications  Action = "applications:delete"
	ActionViewUsers           Action = "users:view"
	ActionManageUsers         Action = "users:manage"
	ActionViewProfiles        Action = "profiles:view"
	ActionManageDisbursements Action = "disbursements:manage"
)

var policy = map[Action][]model.UserRole{
	ActionViewApplications:    {model.Admin, model.Manager, model.Viewer},
	ActionReviewApplications:  {model.Admin, model.Manager},
	ActionDeleteApplications:  {model.Admin},
	ActionViewUsers:           {model.Admin, model.Manager, model.Viewer},
	ActionManageUsers:         {model.Admin},
	ActionViewProfiles:        {model.Admin, model.Manager, model.Viewer},
	ActionManageDisbursements: {model.Admin, model.Manager},
}

// CanPerform is the single policy-evaluation point for role-based access.
func CanPerform(role model.UserRole, action Action) bool {
	for _, allowed := range policy[action] {
		if role == allowed {
			return true
		}
	}
	return false
}
