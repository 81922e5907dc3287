package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingua/backend/config"
	"lingua/backend/models"
	"lingua/backend/utils"
)

type LessonsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLessonsController(db *gorm.DB, cfg *config.Config) *LessonsController {
	return &LessonsController{DB: db, Cfg: cfg}
}

// GetLessons godoc
// @Summary List lessons
// @Tags lessons
// @Router /lessons [get]
func (lc *LessonsController) GetLessons(c *fiber.Ctx) error {
	query := lc.DB.Model(&models.Lesson{}).Order("sequence_order")

	if topic := c.Query("topic"); topic != "" {
		query = query.Where("topic = ?", topic)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}

	var lessons []models.Lesson
	if err := query.Find(&lessons).Error; err != nil {
		return utils.InternalServerError(c, "Could not query lessons")
	}

	result := make([]fiber.Map, 0, len(lessons))
	for _, lesson := range lessons {
		result = append(result, fiber.Map{
			"id":             lesson.ID,
			"title":          lesson.Title,
			"topic":          lesson.Topic,
			"level":          lesson.Level,
			"sequence_order": lesson.SequenceOrder,
		})
	}

	// Lesson lists change rarely; the etag middleware handles revalidation.
	c.Set("Cache-Control", "public, max-age=3600")

	return c.JSON(result)
}

func (lc *LessonsController) GetLesson(c *fiber.Ctx) error {
	var lesson models.Lesson
	if err := lc.DB.First(&lesson, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Could not query lessons")
	}

	c.Set("Cache-Control", "public, max-age=86400")

	return c.JSON(fiber.Map{
		"id":             lesson.ID,
		"title":          lesson.Title,
		"topic":          lesson.Topic,
		"level":          lesson.Level,
		"content":        lesson.Content,
		"sequence_order": lesson.SequenceOrder,
	})
}
