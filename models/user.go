package models

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"unique"`
	Password     string    `json:"password,omitempty"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role" gorm:"default:customer"`
	BookingCount int       `json:"booking_count"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsStaff reports whether the user appears on the bookable roster.
func (u *User) IsStaff() bool {
	return u.Role == RoleEmployee
}
