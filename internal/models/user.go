package models

import (
	"time"
)

// UnlimitedGenerations is stored as the remaining count of premium users.
const UnlimitedGenerations = -1

type User struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	Username             string    `json:"username" gorm:"uniqueIndex;not null"`
	Password             string    `json:"-" gorm:"not null"`
	Email                string    `json:"email" gorm:"not null"`
	IsPremium            bool      `json:"isPremium" gorm:"not null"`
	GenerationsRemaining int       `json:"generationsRemaining" gorm:"not null"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"-"`
}

// HasQuota reports whether the user may start another generation.
func (u *User) HasQuota() bool {
	return u.IsPremium || u.GenerationsRemaining > 0
}

type UserResponse struct {
	ID                   uint   `json:"id"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	IsPremium            bool   `json:"isPremium"`
	GenerationsRemaining int    `json:"generationsRemaining"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                   u.ID,
		Username:             u.Username,
		Email:                u.Email,
		IsPremium:            u.IsPremium,
		GenerationsRemaining: u.GenerationsRemaining,
	}
}
