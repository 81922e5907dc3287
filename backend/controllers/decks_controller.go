package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingua/backend/config"
	"lingua/backend/models"
	"lingua/backend/utils"
)

type DecksController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDecksController(db *gorm.DB, cfg *config.Config) *DecksController {
	return &DecksController{DB: db, Cfg: cfg}
}

// GetDecks godoc
// @Summary List flashcard decks
// @Tags decks
// @Router /decks [get]
func (dc *DecksController) GetDecks(c *fiber.Ctx) error {
	query := dc.DB.Model(&models.Deck{})

	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}

	var decks []models.Deck
	if err := query.Find(&decks).Error; err != nil {
		return utils.InternalServerError(c, "Could not query decks")
	}

	result := make([]fiber.Map, 0, len(decks))
	for _, deck := range decks {
		var cardCount int64
		dc.DB.Model(&models.Flashcard{}).Where("deck_id = ?", deck.ID).Count(&cardCount)

		result = append(result, fiber.Map{
			"id":          deck.ID,
			"title":       deck.Title,
			"description": deck.Description,
			"level":       deck.Level,
			"cards":       cardCount,
		})
	}

	c.Set("Cache-Control", "public, max-age=3600")

	return c.JSON(result)
}

// GetDeck returns a deck with its cards in study order.
func (dc *DecksController) GetDeck(c *fiber.Ctx) error {
	var deck models.Deck
	err := dc.DB.Preload("Cards", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order")
	}).First(&deck, c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Deck not found")
		}
		return utils.InternalServerError(c, "Could not query decks")
	}

	cards := make([]fiber.Map, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		cards = append(cards, fiber.Map{
			"id":      card.CardID,
			"front":   card.Front,
			"back":    card.Back,
			"example": card.Example,
		})
	}

	c.Set("Cache-Control", "public, max-age=86400")

	return c.JSON(fiber.Map{
		"id":          deck.ID,
		"title":       deck.Title,
		"description": deck.Description,
		"level":       deck.Level,
		"cards":       cards,
	})
}
