package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lehmann314159/flashdeck/internal/models"
)

// SQLiteRepository implements FlashcardRepository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new flashcard and returns the created card with ID.
// Front and back are stored trimmed; an empty-after-trim category is
// stored as NULL. Validation is the caller's responsibility.
func (r *SQLiteRepository) Create(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error) {
	now := time.Now()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO flashcards (front, back, category, difficulty, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(card.Front), strings.TrimSpace(card.Back),
		nullableText(card.Category), card.Difficulty, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert flashcard: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	card.ID = id
	card.Front = strings.TrimSpace(card.Front)
	card.Back = strings.TrimSpace(card.Back)
	card.Category = strings.TrimSpace(card.Category)
	card.CreatedAt = now
	card.UpdatedAt = now
	return card, nil
}

// GetByID retrieves a flashcard by its ID
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Flashcard, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, front, back, category, difficulty, created_at, updated_at
		 FROM flashcards WHERE id = ?`, id,
	)
	return scanFlashcard(row)
}

// List retrieves a filtered, paginated page of flashcards, newest first
func (r *SQLiteRepository) List(ctx context.Context, filter models.FlashcardFilter) ([]*models.Flashcard, error) {
	query, args := buildListQuery(filter, false)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flashcards: %w", err)
	}
	defer rows.Close()

	var cards []*models.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cards, nil
}

// Count returns the total number of flashcards matching the filter
func (r *SQLiteRepository) Count(ctx context.Context, filter models.FlashcardFilter) (int64, error) {
	query, args := buildListQuery(filter, true)
	var count int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count flashcards: %w", err)
	}
	return count, nil
}

// Update modifies an existing flashcard and refreshes its update
// timestamp. An ID that matches no row is a silent no-op.
func (r *SQLiteRepository) Update(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error) {
	now := time.Now()
	_, err := r.db.ExecContext(ctx,
		`UPDATE flashcards SET front = ?, back = ?, category = ?, difficulty = ?, updated_at = ?
		 WHERE id = ?`,
		strings.TrimSpace(card.Front), strings.TrimSpace(card.Back),
		nullableText(card.Category), card.Difficulty, now, card.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update flashcard: %w", err)
	}

	card.Front = strings.TrimSpace(card.Front)
	card.Back = strings.TrimSpace(card.Back)
	card.Category = strings.TrimSpace(card.Category)
	card.UpdatedAt = now
	return card, nil
}

// Delete removes a flashcard by ID. Deleting a missing ID is a no-op,
// so the operation is idempotent.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete flashcard: %w", err)
	}
	return nil
}

// FetchForStudy retrieves all flashcards in the category in randomized
// order. The order is not stable across calls.
func (r *SQLiteRepository) FetchForStudy(ctx context.Context, category string) ([]*models.Flashcard, error) {
	query := `SELECT id, front, back, category, difficulty, created_at, updated_at FROM flashcards`
	var args []interface{}

	if hasCategoryFilter(category) {
		query += " WHERE category = ?"
		args = append(args, category)
	}

	query += " ORDER BY RANDOM()"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query study flashcards: %w", err)
	}
	defer rows.Close()

	var cards []*models.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cards, nil
}

// buildListQuery constructs the SQL for listing or counting flashcards.
// Every user-supplied value, pagination included, is a bound parameter.
func buildListQuery(filter models.FlashcardFilter, countOnly bool) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if search := strings.TrimSpace(filter.Search); search != "" {
		// SQLite LIKE is case-insensitive for ASCII
		conditions = append(conditions, "(front LIKE ? OR back LIKE ?)")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}

	if hasCategoryFilter(filter.Category) {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}

	var query string
	if countOnly {
		query = "SELECT COUNT(*) FROM flashcards"
	} else {
		query = `SELECT id, front, back, category, difficulty, created_at, updated_at FROM flashcards`
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if !countOnly {
		query += " ORDER BY created_at DESC, id DESC"

		page := filter.Page
		if page < 1 {
			page = 1
		}
		pageSize := filter.PageSize
		if pageSize < 1 {
			pageSize = models.DefaultPageSize
		}

		query += " LIMIT ? OFFSET ?"
		args = append(args, pageSize, (page-1)*pageSize)
	}

	return query, args
}

// hasCategoryFilter reports whether a category value narrows the result
// set. Empty and "All" (any case) mean unfiltered.
func hasCategoryFilter(category string) bool {
	return category != "" && !strings.EqualFold(category, models.AllCategories)
}

// nullableText stores an empty-after-trim string as NULL
func nullableText(s string) sql.NullString {
	trimmed := strings.TrimSpace(s)
	return sql.NullString{String: trimmed, Valid: trimmed != ""}
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanFlashcard scans a row into a Flashcard struct
func scanFlashcard(row rowScanner) (*models.Flashcard, error) {
	var card models.Flashcard
	var category sql.NullString

	err := row.Scan(
		&card.ID, &card.Front, &card.Back, &category,
		&card.Difficulty, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan flashcard: %w", err)
	}

	if category.Valid {
		card.Category = category.String
	}

	return &card, nil
}
