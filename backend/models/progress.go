package models

import "gorm.io/gorm"

// UserProgress holds the last-viewed state per user. One row per user;
// both fields are independently nullable and stored as opaque strings.
type UserProgress struct {
	gorm.Model
	UserID          uint    `gorm:"uniqueIndex;not null"`
	LastLessonID    *string `json:"lastLessonId"`
	LastFlashcardID *string `json:"lastFlashcardId"`
}
