package models

import (
	"time"
)

// Flashcard represents a single study card
type Flashcard struct {
	ID         int64     `json:"id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	Category   string    `json:"category"`
	Difficulty int       `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FlashcardInput carries the user-submitted fields for create and update
type FlashcardInput struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// FlashcardFilter represents query parameters for listing flashcards
type FlashcardFilter struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

// DefaultPageSize is the fixed number of cards shown per list page
const DefaultPageSize = 12

// AllCategories is the sentinel category label meaning "no filter"
const AllCategories = "All"
