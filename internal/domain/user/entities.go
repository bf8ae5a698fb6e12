package user

import (
	"errors"
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:128;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null" json:"role"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
