package service

import (
	"fmt"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/util"
)

// UserService backs the admin user-management screens.
type UserService struct {
	Users repository.UserStore
}

func NewUserService(users repository.UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) GetUsers(filter repository.UserFilter) ([]model.User, error) {
	return s.Users.List(filter)
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	return s.Users.FindByID(id)
}

// UserUpdate is a partial edit of an account; nil leaves a field as is.
type UserUpdate struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

func (s *UserService) UpdateUser(id uint, update *UserUpdate) (*model.User, error) {
	user, err := s.Users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.Role != nil && !model.ValidRole(model.UserRole(*update.Role)) {
		return nil, fmt.Errorf("%w: unknown role %q", util.ErrValidation, *update.Role)
	}
	if update.Status != nil && !model.ValidUserStatus(model.UserStatus(*update.Status)) {
		return nil, fmt.Errorf("%w: unknown status %q", util.ErrValidation, *update.Status)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Role != nil {
		user.Role = model.UserRole(*update.Role)
	}
	if update.Status != nil {
		user.Status = model.UserStatus(*update.Status)
	}

	user.UpdatedAt = time.Now()
	if err := s.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	return s.Users.Delete(id)
}
