package store

import (
	"errors"

	"gorm.io/gorm"

	"lingua/backend/models"
)

// ProgressStore is the durable record of last-viewed state, one row per
// user. Updates are partial: a field left nil is never touched, so lesson
// and flashcard writes for the same user cannot clobber each other.
type ProgressStore struct {
	DB *gorm.DB
}

func NewProgressStore(db *gorm.DB) *ProgressStore {
	return &ProgressStore{DB: db}
}

// Get returns the user's progress row, or an empty record with nil fields
// when the user has never reported progress.
func (s *ProgressStore) Get(userID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := s.DB.Where("user_id = ?", userID).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserProgress{UserID: userID}, nil
		}
		return nil, err
	}
	return &progress, nil
}

// Upsert creates the row on first write and updates only the fields
// provided. Last-write-wins per field.
func (s *ProgressStore) Upsert(userID uint, lessonID, flashcardID *string) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := s.DB.Where(models.UserProgress{UserID: userID}).
		FirstOrCreate(&progress).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if lessonID != nil {
		updates["last_lesson_id"] = *lessonID
	}
	if flashcardID != nil {
		updates["last_flashcard_id"] = *flashcardID
	}
	if len(updates) == 0 {
		return &progress, nil
	}

	if err := s.DB.Model(&progress).Updates(updates).Error; err != nil {
		return nil, err
	}
	if lessonID != nil {
		progress.LastLessonID = lessonID
	}
	if flashcardID != nil {
		progress.LastFlashcardID = flashcardID
	}
	return &progress, nil
}
