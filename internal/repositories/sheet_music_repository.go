package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
)

// sheetMusicRepository implements data access for the sheet_music table
type sheetMusicRepository struct {
	db *sql.DB
}

// NewSheetMusicRepository creates a new sheet music repository
func NewSheetMusicRepository(db *sql.DB) *sheetMusicRepository {
	return &sheetMusicRepository{
		db: db,
	}
}

const sheetMusicColumns = `id, title, composer, genre, difficulty_level, description,
			pdf_url, audio_url, thumbnail_url, owner_id, tags, is_published, created_at`

// Create inserts a new sheet music entry
func (r *sheetMusicRepository) Create(ctx context.Context, sheet *models.SheetMusic) error {
	tags, err := json.Marshal(sheet.Tags)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to marshal tags: %w", err))
	}

	query := `
		INSERT INTO sheet_music (id, title, composer, genre, difficulty_level, description,
			pdf_url, audio_url, thumbnail_url, owner_id, tags, is_published, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		sheet.ID,
		sheet.Title,
		sheet.Composer,
		sheet.Genre,
		sheet.Difficulty,
		sheet.Description,
		sheet.PDFURL,
		sheet.AudioURL,
		sheet.ThumbnailURL,
		sheet.OwnerID,
		tags,
		sheet.IsPublished,
		sheet.CreatedAt,
	)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to create sheet music: %w", err))
	}

	return nil
}

// GetByID retrieves a sheet music entry by ID
func (r *sheetMusicRepository) GetByID(ctx context.Context, id string) (*models.SheetMusic, error) {
	query := fmt.Sprintf(`SELECT %s FROM sheet_music WHERE id = ? LIMIT 1`, sheetMusicColumns)

	row := r.db.QueryRowContext(ctx, query, id)
	sheet, err := scanSheetMusic(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("sheet music not found")
	}
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to get sheet music: %w", err))
	}

	return sheet, nil
}

// List retrieves sheet music entries with filtering and pagination
func (r *sheetMusicRepository) List(ctx context.Context, filter ContentFilter) ([]models.SheetMusic, error) {
	var whereClauses []string
	var args []any

	if filter.PublishedOnly {
		whereClauses = append(whereClauses, "is_published = TRUE")
	}
	if filter.OwnerID != "" {
		whereClauses = append(whereClauses, "owner_id = ?")
		args = append(args, filter.OwnerID)
	}
	if filter.GenreOrCategory != "" {
		whereClauses = append(whereClauses, "genre = ?")
		args = append(args, filter.GenreOrCategory)
	}
	if filter.Difficulty != "" {
		whereClauses = append(whereClauses, "difficulty_level = ?")
		args = append(args, filter.Difficulty)
	}
	if filter.Search != "" {
		whereClauses = append(whereClauses, "(LOWER(title) LIKE ? OR LOWER(composer) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM sheet_music
		%s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, sheetMusicColumns, whereClause)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to list sheet music: %w", err))
	}
	defer rows.Close()

	sheets := []models.SheetMusic{}
	for rows.Next() {
		sheet, err := scanSheetMusic(rows.Scan)
		if err != nil {
			return nil, apperrors.Upstream(fmt.Errorf("failed to scan sheet music: %w", err))
		}
		sheets = append(sheets, *sheet)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to iterate sheet music: %w", err))
	}

	return sheets, nil
}

// Update replaces the mutable fields of a sheet music entry
func (r *sheetMusicRepository) Update(ctx context.Context, sheet *models.SheetMusic) error {
	tags, err := json.Marshal(sheet.Tags)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to marshal tags: %w", err))
	}

	query := `
		UPDATE sheet_music
		SET title = ?, composer = ?, genre = ?, difficulty_level = ?, description = ?,
			pdf_url = ?, audio_url = ?, thumbnail_url = ?, tags = ?, is_published = ?
		WHERE id = ?
	`

	_, err = r.db.ExecContext(ctx, query,
		sheet.Title,
		sheet.Composer,
		sheet.Genre,
		sheet.Difficulty,
		sheet.Description,
		sheet.PDFURL,
		sheet.AudioURL,
		sheet.ThumbnailURL,
		tags,
		sheet.IsPublished,
		sheet.ID,
	)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to update sheet music: %w", err))
	}

	return nil
}

// RecentPublished retrieves the most recently created published entries, newest first
func (r *sheetMusicRepository) RecentPublished(ctx context.Context, count int) ([]models.SheetMusic, error) {
	return r.List(ctx, ContentFilter{PublishedOnly: true, Limit: count})
}

// scanSheetMusic scans a row into a SheetMusic, decoding the tags JSON
func scanSheetMusic(scan func(dest ...any) error) (*models.SheetMusic, error) {
	sheet := &models.SheetMusic{}
	var tags []byte

	err := scan(
		&sheet.ID,
		&sheet.Title,
		&sheet.Composer,
		&sheet.Genre,
		&sheet.Difficulty,
		&sheet.Description,
		&sheet.PDFURL,
		&sheet.AudioURL,
		&sheet.ThumbnailURL,
		&sheet.OwnerID,
		&tags,
		&sheet.IsPublished,
		&sheet.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &sheet.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	if sheet.Tags == nil {
		sheet.Tags = []string{}
	}

	return sheet, nil
}
