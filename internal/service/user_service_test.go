package service

import (
	"errors"
	"testing"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/util"
)

func seedUser(t *testing.T, store repository.UserStore, name, email string, role model.UserRole) *model.User {
	t.Helper()
	now := time.Now()
	user := &model.User{
		Name:             name,
		Email:            email,
		Role:             role,
		Status:           model.UserActive,
		RegistrationDate: now,
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := store.Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserListFilters(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewUserService(store)

	seedUser(t, store, "Ada Admin", "ada@example.com", model.Admin)
	seedUser(t, store, "Musa Manager", "musa@example.com", model.Manager)
	seedUser(t, store, "Vera Viewer", "vera@example.com", model.Viewer)

	byRole, err := svc.GetUsers(repository.UserFilter{Role: "manager"})
	if err != nil {
		t.Fatalf("GetUsers(role) unexpected error: %v", err)
	}
	if len(byRole) != 1 || byRole[0].Name != "Musa Manager" {
		t.Errorf("GetUsers(role=manager) = %v, want only the manager", byRole)
	}

	bySearch, err := svc.GetUsers(repository.UserFilter{Search: "vera"})
	if err != nil {
		t.Fatalf("GetUsers(search) unexpected error: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Name != "Vera Viewer" {
		t.Errorf("GetUsers(search=vera) = %v, want only Vera", bySearch)
	}

	all, err := svc.GetUsers(repository.UserFilter{})
	if err != nil {
		t.Fatalf("GetUsers() unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("GetUsers() returned %d users, want 3", len(all))
	}
}

func TestUserUpdate(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewUserService(store)

	user := seedUser(t, store, "Promotee", "promotee@example.com", model.Viewer)

	newRole := "manager"
	newStatus := "suspended"
	updated, err := svc.UpdateUser(user.ID, &UserUpdate{Role: &newRole, Status: &newStatus})
	if err != nil {
		t.Fatalf("UpdateUser() unexpected error: %v", err)
	}
	if updated.Role != model.Manager || updated.Status != model.UserSuspended {
		t.Errorf("UpdateUser() = role %q status %q, want manager/suspended", updated.Role, updated.Status)
	}
	if updated.Name != user.Name {
		t.Errorf("Name changed to %q on a role update", updated.Name)
	}

	badRole := "superuser"
	if _, err := svc.UpdateUser(user.ID, &UserUpdate{Role: &badRole}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("UpdateUser(superuser) error = %v, want ErrValidation", err)
	}
	got, _ := svc.GetUserByID(user.ID)
	if got.Role != model.Manager {
		t.Errorf("rejected update still changed role to %q", got.Role)
	}

	if _, err := svc.UpdateUser(9999, &UserUpdate{Role: &newRole}); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("UpdateUser(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestUserDelete(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewUserService(store)

	user := seedUser(t, store, "Leaver", "leaver@example.com", model.Viewer)

	if err := svc.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser() unexpected error: %v", err)
	}
	if _, err := svc.GetUserByID(user.ID); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("GetUserByID(deleted) error = %v, want ErrUserNotFound", err)
	}
	if err := svc.DeleteUser(user.ID); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("DeleteUser(deleted) error = %v, want ErrUserNotFound", err)
	}
}
