package model

import (
	"time"

	user "freelance-job-tracker/internal/user/model"
)

// Account represents an external platform identity owned by exactly one user.
type Account struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	Email  string `json:"email" gorm:"not null"`
	UserID uint   `json:"user_id" gorm:"not null;index"`

	User *user.User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
