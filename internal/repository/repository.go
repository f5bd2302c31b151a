package repository

import (
	"context"

	"github.com/lehmann314159/flashdeck/internal/models"
)

// FlashcardRepository defines the interface for flashcard persistence operations
type FlashcardRepository interface {
	// Create inserts a new flashcard and returns it with its assigned ID
	Create(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error)

	// GetByID retrieves a flashcard by its ID
	GetByID(ctx context.Context, id int64) (*models.Flashcard, error)

	// List retrieves a filtered, paginated page of flashcards, newest first
	List(ctx context.Context, filter models.FlashcardFilter) ([]*models.Flashcard, error)

	// Count returns the total number of flashcards matching the filter
	Count(ctx context.Context, filter models.FlashcardFilter) (int64, error)

	// Update modifies an existing flashcard; updating a missing ID is a no-op
	Update(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error)

	// Delete removes a flashcard by ID; deleting a missing ID is a no-op
	Delete(ctx context.Context, id int64) error

	// FetchForStudy retrieves all matching flashcards in randomized order
	FetchForStudy(ctx context.Context, category string) ([]*models.Flashcard, error)
}
