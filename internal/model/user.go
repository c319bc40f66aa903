package model

import (
	"time"
)

type UserRole string

const (
	Admin   UserRole = "admin"
	Manager UserRole = "manager"
	Viewer  UserRole = "viewer"
	Student UserRole = "student"
)

func ValidRole(r UserRole) bool {
	switch r {
	case Admin, Manager, Viewer, Student:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserActive, UserInactive, UserSuspended:
		return true
	}
	return false
}

// User is a credential-store entry. Password holds the bcrypt digest and is
// never serialized; accounts provisioned through Google OAuth have no digest.
// Email is normalized to lower case before persist and lookup.
// swagger:model User
type User struct {
	BaseModel
	Name             string     `gorm:"size:100;not null" json:"name"`
	Email            string     `gorm:"size:100;unique;not null" json:"email"`
	Password         string     `gorm:"size:100" json:"-"`
	Role             UserRole   `gorm:"type:enum('admin','manager','viewer','student');default:'student'" json:"role"`
	GoogleID         string     `gorm:"size:100;index" json:"-"`
	Status           UserStatus `gorm:"type:enum('active','inactive','suspended');default:'active'" json:"status"`
	RegistrationDate time.Time  `json:"registrationDate"`
}

func (User) TableName() string {
	return "users"
}
