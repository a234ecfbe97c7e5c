package models

import (
	"time"
)

// User represents the users table
type User struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	TenantID       uint      `json:"tenant_id" gorm:"column:tenant_id;index;not null"`
	Email          string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"column:hashed_password;not null"`
	IsAdmin        bool      `json:"is_admin" gorm:"column:is_admin;default:false"`
	Role           string    `json:"role" gorm:"column:role;default:employee"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
