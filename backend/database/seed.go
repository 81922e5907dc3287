package database

import (
	"gorm.io/gorm"

	"lingua/backend/models"
)

// Seed inserts demo content so a fresh install has something to serve.
// FirstOrCreate keeps it idempotent across restarts.
func Seed(db *gorm.DB) error {
	lessons := []models.Lesson{
		{Title: "Greetings and Introductions", Topic: "basics", Level: "beginner", Content: "Hola, buenos días...", SequenceOrder: 1},
		{Title: "Ordering Food", Topic: "restaurant", Level: "beginner", Content: "Una mesa para dos, por favor...", SequenceOrder: 2},
		{Title: "Asking for Directions", Topic: "travel", Level: "intermediate", Content: "¿Dónde está la estación?...", SequenceOrder: 3},
	}
	for i := range lessons {
		if err := db.FirstOrCreate(&lessons[i], models.Lesson{Title: lessons[i].Title}).Error; err != nil {
			return err
		}
	}

	decks := []models.Deck{
		{Title: "Essential Verbs", Description: "The 50 most common verbs", Level: "beginner"},
		{Title: "Food and Drink", Description: "Restaurant vocabulary", Level: "beginner"},
	}
	for i := range decks {
		if err := db.FirstOrCreate(&decks[i], models.Deck{Title: decks[i].Title}).Error; err != nil {
			return err
		}
	}

	cards := []models.Flashcard{
		{DeckID: decks[0].ID, CardID: "0001", Front: "ser", Back: "to be", Example: "Soy estudiante.", SequenceOrder: 1},
		{DeckID: decks[0].ID, CardID: "0002", Front: "tener", Back: "to have", Example: "Tengo dos hermanos.", SequenceOrder: 2},
		{DeckID: decks[0].ID, CardID: "0003", Front: "hacer", Back: "to do, to make", Example: "Hago la tarea.", SequenceOrder: 3},
		{DeckID: decks[1].ID, CardID: "0001", Front: "la manzana", Back: "apple", Example: "Como una manzana.", SequenceOrder: 1},
		{DeckID: decks[1].ID, CardID: "0002", Front: "el pan", Back: "bread", Example: "El pan está fresco.", SequenceOrder: 2},
	}
	for i := range cards {
		cond := models.Flashcard{DeckID: cards[i].DeckID, CardID: cards[i].CardID}
		if err := db.FirstOrCreate(&cards[i], cond).Error; err != nil {
			return err
		}
	}

	words := []models.DailyWord{
		{Word: "la ventana", Translation: "window", PartOfSpeech: "noun", Example: "Abre la ventana, por favor.", Language: "es"},
		{Word: "correr", Translation: "to run", PartOfSpeech: "verb", Example: "Me gusta correr por la mañana.", Language: "es"},
		{Word: "feliz", Translation: "happy", PartOfSpeech: "adjective", Example: "Estoy muy feliz hoy.", Language: "es"},
	}
	for i := range words {
		if err := db.FirstOrCreate(&words[i], models.DailyWord{Word: words[i].Word}).Error; err != nil {
			return err
		}
	}

	return nil
}
