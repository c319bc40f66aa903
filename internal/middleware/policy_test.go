package middleware

import (
	"testing"

	"scholarship_portal_backend/internal/model"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		role   model.UserRole
		action Action
		want   bool
	}{
		{model.Admin, ActionViewApplications, true},
		{model.Admin, ActionDeleteApplications, true},
		{model.Admin, ActionManageUsers, true},
		{model.Manager, ActionViewApplications, true},
		{model.Manager, ActionReviewApplications, true},
		{model.Manager, ActionManageDisbursements, true},
		{model.Manager, ActionDeleteApplications, false},
		{model.Manager, ActionManageUsers, false},
		{model.Viewer, ActionViewApplications, true},
		{model.Viewer, ActionViewUsers, true},
		{model.Viewer, ActionReviewApplications, false},
		{model.Viewer, ActionManageDisbursements, false},
		{model.Student, ActionViewApplications, false},
		{model.Student, ActionViewProfiles, false},
	}

	for _, tt := range tests {
		if got := CanPerform(tt.role, tt.action); got != tt.want {
			t.Errorf("CanPerform(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestCanPerformUnknownInputs(t *testing.T) {
	if CanPerform("ghost", ActionViewApplications) {
		t.Error("unknown role must never be allowed")
	}
	if CanPerform(model.Admin, "applications:teleport") {
		t.Error("unknown action must never be allowed")
	}
}
