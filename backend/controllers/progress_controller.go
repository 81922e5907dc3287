package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingua/backend/config"
	"lingua/backend/store"
	"lingua/backend/utils"
)

type ProgressController struct {
	Store *store.ProgressStore
	Cfg   *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: store.NewProgressStore(db), Cfg: cfg}
}

type progressResponse struct {
	UserID          string  `json:"userId"`
	LastLessonID    *string `json:"lastLessonId"`
	LastFlashcardID *string `json:"lastFlashcardId"`
}

// GetProgress godoc
// @Summary Get learning progress
// @Description Returns the user's last-viewed lesson and flashcard
// @Tags progress
// @Router /progress/{userId} [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userIDParam := c.Params("userId")
	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	progress, err := pc.Store.Get(uint(userID))
	if err != nil {
		return utils.InternalServerError(c, "Could not query progress")
	}

	// Progress is user-specific but cheap to refetch; clients may cache
	// briefly.
	c.Set("Cache-Control", "private, max-age=300")

	return c.JSON(progressResponse{
		UserID:          userIDParam,
		LastLessonID:    progress.LastLessonID,
		LastFlashcardID: progress.LastFlashcardID,
	})
}

// UpdateLastLearning godoc
// @Summary Update last-viewed lesson or flashcard
// @Description Upserts the provided fields, leaving the other untouched
// @Tags progress
// @Router /progress/update-last-learning [post]
func (pc *ProgressController) UpdateLastLearning(c *fiber.Ctx) error {
	type UpdateInput struct {
		UserID      string  `json:"userId"`
		LessonID    *string `json:"lessonId"`
		FlashcardID *string `json:"flashcardId"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.UserID == "" {
		return utils.BadRequest(c, "userId is required")
	}
	if input.LessonID == nil && input.FlashcardID == nil {
		return utils.BadRequest(c, "lessonId or flashcardId is required")
	}

	userID, err := strconv.ParseUint(input.UserID, 10, 64)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	progress, err := pc.Store.Upsert(uint(userID), input.LessonID, input.FlashcardID)
	if err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"lastLessonId":    progress.LastLessonID,
		"lastFlashcardId": progress.LastFlashcardID,
	})
}
