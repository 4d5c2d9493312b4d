package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "Customer"
	RoleEmployee UserRole = "Employee"
	RoleManager  UserRole = "Manager"
)

// ValidRole reports whether r is one of the three known role tiers.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleEmployee, RoleManager:
		return true
	}
	return false
}

type User struct {
	Login         string    `json:"login" gorm:"column:login;primaryKey"`
	PasswordHash  string    `json:"-" gorm:"column:password;not null"`
	Phone         string    `json:"phone" gorm:"column:phonenum"`
	FavoriteItems string    `json:"favorite_items" gorm:"column:favitems"`
	Role          UserRole  `json:"role" gorm:"column:type;not null;default:'Customer'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
