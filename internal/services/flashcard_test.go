package services

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lehmann314159/flashdeck/internal/models"
	"github.com/lehmann314159/flashdeck/internal/repository"
)

func setupTestService(t *testing.T) *FlashcardService {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE flashcards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			front TEXT NOT NULL,
			back TEXT NOT NULL,
			category TEXT,
			difficulty INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	return NewFlashcardService(repository.NewSQLiteRepository(db))
}

func TestFlashcardService_CreateAndList(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.FlashcardInput{
		Front:      "Capital of France",
		Back:       "Paris",
		Category:   "Geography",
		Difficulty: 3,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("Create() returned flashcard with ID = 0")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Create() returned flashcard with zero CreatedAt")
	}

	cards, err := svc.List(ctx, models.FlashcardFilter{Page: 1, PageSize: models.DefaultPageSize})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("List() returned %d cards, want 1", len(cards))
	}

	got := cards[0]
	if got.Front != "Capital of France" || got.Back != "Paris" ||
		got.Category != "Geography" || got.Difficulty != 3 {
		t.Errorf("List() round-trip = %+v, want the created values", got)
	}
}

func TestFlashcardService_Create_DifficultyDefaults(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		difficulty int
		want       int
	}{
		{name: "zero defaults to 1", difficulty: 0, want: 1},
		{name: "negative defaults to 1", difficulty: -2, want: 1},
		{name: "above range defaults to 1", difficulty: 9, want: 1},
		{name: "in-range value kept", difficulty: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.Create(ctx, &models.FlashcardInput{
				Front:      "some question",
				Back:       "some answer",
				Category:   "General",
				Difficulty: tt.difficulty,
			})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if created.Difficulty != tt.want {
				t.Errorf("Create() difficulty = %d, want %d", created.Difficulty, tt.want)
			}
		})
	}
}

func TestFlashcardService_Update(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.FlashcardInput{
		Front:      "Capital of France",
		Back:       "Paris",
		Category:   "Geography",
		Difficulty: 3,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &models.FlashcardInput{
		Front:      "  Capital of France  ",
		Back:       "Paris, on the Seine",
		Category:   "Geography",
		Difficulty: 4,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Front != "Capital of France" {
		t.Errorf("Update() front = %q, want trimmed value", updated.Front)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Back != "Paris, on the Seine" || got.Difficulty != 4 {
		t.Errorf("GetByID() after update = %+v", got)
	}
}

func TestFlashcardService_Delete_Idempotent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, 42); err != nil {
		t.Errorf("Delete() of missing ID error = %v, want nil", err)
	}
	if err := svc.Delete(ctx, 42); err != nil {
		t.Errorf("repeated Delete() error = %v, want nil", err)
	}
}

func TestFlashcardService_StudyDeck(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	deck, err := svc.StudyDeck(ctx, "All")
	if err != nil {
		t.Fatalf("StudyDeck() error = %v", err)
	}
	if len(deck) != 0 {
		t.Errorf("StudyDeck() on empty store = %d cards, want 0", len(deck))
	}

	inputs := []*models.FlashcardInput{
		{Front: "Capital of France", Back: "Paris", Category: "Geography", Difficulty: 3},
		{Front: "Largest ocean", Back: "The Pacific", Category: "Geography", Difficulty: 2},
		{Front: "HTTP status for created", Back: "201", Category: "Computing", Difficulty: 1},
	}
	for _, in := range inputs {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	deck, err = svc.StudyDeck(ctx, "Geography")
	if err != nil {
		t.Fatalf("StudyDeck() error = %v", err)
	}
	if len(deck) != 2 {
		t.Errorf("StudyDeck() = %d cards, want 2", len(deck))
	}
	for _, card := range deck {
		if card.Category != "Geography" {
			t.Errorf("StudyDeck() leaked category %q", card.Category)
		}
	}
}
