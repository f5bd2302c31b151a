package services

import (
	"context"
	"strings"

	"github.com/lehmann314159/flashdeck/internal/models"
	"github.com/lehmann314159/flashdeck/internal/repository"
)

const (
	minDifficulty = 1
	maxDifficulty = 5
)

// FlashcardService provides business logic for flashcard operations
type FlashcardService struct {
	repo repository.FlashcardRepository
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(repo repository.FlashcardRepository) *FlashcardService {
	return &FlashcardService{repo: repo}
}

// Create stores a new flashcard from user input. Input is expected to
// have passed ValidateFlashcard already; difficulty outside 1-5 falls
// back to 1.
func (s *FlashcardService) Create(ctx context.Context, input *models.FlashcardInput) (*models.Flashcard, error) {
	card := &models.Flashcard{
		Front:      strings.TrimSpace(input.Front),
		Back:       strings.TrimSpace(input.Back),
		Category:   strings.TrimSpace(input.Category),
		Difficulty: clampDifficulty(input.Difficulty),
	}

	return s.repo.Create(ctx, card)
}

// GetByID retrieves a flashcard by ID
func (s *FlashcardService) GetByID(ctx context.Context, id int64) (*models.Flashcard, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves a page of flashcards matching the filter
func (s *FlashcardService) List(ctx context.Context, filter models.FlashcardFilter) ([]*models.Flashcard, error) {
	return s.repo.List(ctx, filter)
}

// Count returns the total number of flashcards matching the filter
func (s *FlashcardService) Count(ctx context.Context, filter models.FlashcardFilter) (int64, error) {
	return s.repo.Count(ctx, filter)
}

// Update replaces the stored fields of a flashcard and refreshes its
// update timestamp. Updating a missing ID is a silent no-op.
func (s *FlashcardService) Update(ctx context.Context, id int64, input *models.FlashcardInput) (*models.Flashcard, error) {
	card := &models.Flashcard{
		ID:         id,
		Front:      strings.TrimSpace(input.Front),
		Back:       strings.TrimSpace(input.Back),
		Category:   strings.TrimSpace(input.Category),
		Difficulty: clampDifficulty(input.Difficulty),
	}

	return s.repo.Update(ctx, card)
}

// Delete removes a flashcard by ID; deleting a missing ID succeeds
func (s *FlashcardService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// StudyDeck returns all flashcards in the category in randomized order.
// The deck is re-fetched and re-shuffled on every call.
func (s *FlashcardService) StudyDeck(ctx context.Context, category string) ([]*models.Flashcard, error) {
	return s.repo.FetchForStudy(ctx, category)
}

func clampDifficulty(d int) int {
	if d < minDifficulty || d > maxDifficulty {
		return minDifficulty
	}
	return d
}
