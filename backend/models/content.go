package models

import "gorm.io/gorm"

type Lesson struct {
	gorm.Model
	Title         string
	Topic         string
	Level         string // beginner, intermediate, advanced
	Content       string
	SequenceOrder int
}

type Deck struct {
	gorm.Model
	Title       string
	Description string
	Level       string // beginner, intermediate, advanced
	Cards       []Flashcard
}

type Flashcard struct {
	gorm.Model
	DeckID        uint
	CardID        string `gorm:"index"` // external id, unique within a deck
	Front         string
	Back          string
	Example       string
	SequenceOrder int
}

type DailyWord struct {
	gorm.Model
	Word         string
	Translation  string
	PartOfSpeech string
	Example      string
	Language     string
}
