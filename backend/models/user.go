package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username         string `gorm:"unique;not null"`
	Email            string `gorm:"unique;not null"`
	PasswordHash     string `gorm:"not null"`
	Verified         bool   `gorm:"default:false"`
	VerificationCode string `gorm:"index"`
	NativeLanguage   string
	TargetLanguage   string
}

type PasswordReset struct {
	gorm.Model
	UserID    uint   `gorm:"index"`
	Code      string `gorm:"index"`
	ExpiresAt time.Time
	Used      bool `gorm:"default:false"`
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}
