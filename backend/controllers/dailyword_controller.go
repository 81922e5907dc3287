package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lingua/backend/config"
	"lingua/backend/scheduler"
	"lingua/backend/utils"
)

type DailyWordController struct {
	Picker *scheduler.DailyWordPicker
	Cfg    *config.Config
}

func NewDailyWordController(picker *scheduler.DailyWordPicker, cfg *config.Config) *DailyWordController {
	return &DailyWordController{Picker: picker, Cfg: cfg}
}

// GetDailyWord godoc
// @Summary Word of the day
// @Tags words
// @Router /words/daily [get]
func (dw *DailyWordController) GetDailyWord(c *fiber.Ctx) error {
	word := dw.Picker.WordOfDay()
	if word == nil {
		return utils.NotFound(c, "No daily word available")
	}

	// Valid until the next midnight rotation at the longest.
	c.Set("Cache-Control", "public, max-age=3600")

	return c.JSON(fiber.Map{
		"word":           word.Word,
		"translation":    word.Translation,
		"part_of_speech": word.PartOfSpeech,
		"example":        word.Example,
		"language":       word.Language,
	})
}
