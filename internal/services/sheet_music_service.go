package services

import (
	"context"
	"strings"
	"time"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/policy"
	"github.com/abcmusiclibrary/backend/internal/repositories"
	"github.com/google/uuid"
)

// SheetMusicRepository is the interface that wraps methods for sheet_music table data access
type SheetMusicRepository interface {
	Create(ctx context.Context, sheet *models.SheetMusic) error
	GetByID(ctx context.Context, id string) (*models.SheetMusic, error)
	List(ctx context.Context, filter repositories.ContentFilter) ([]models.SheetMusic, error)
	Update(ctx context.Context, sheet *models.SheetMusic) error
	RecentPublished(ctx context.Context, count int) ([]models.SheetMusic, error)
}

// sheetMusicService implements the sheet music catalog
type sheetMusicService struct {
	sheetRepo SheetMusicRepository
}

// NewSheetMusicService creates a new sheet music service
func NewSheetMusicService(sheetRepo SheetMusicRepository) *sheetMusicService {
	return &sheetMusicService{
		sheetRepo: sheetRepo,
	}
}

// Create adds a new sheet music entry owned by the actor.
// New entries always start unpublished; publishing is an explicit update.
func (s *sheetMusicService) Create(ctx context.Context, actor *models.User, req *models.CreateSheetMusicRequest) (*models.SheetMusic, error) {
	if err := policy.Authorize(actor.Role, policy.OpCreateContent, actor.ID, ""); err != nil {
		return nil, err
	}
	if err := validateSheetMusicFields(req.Title, req.Composer, req.Difficulty); err != nil {
		return nil, err
	}

	sheet := &models.SheetMusic{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(req.Title),
		Composer:     strings.TrimSpace(req.Composer),
		Genre:        req.Genre,
		Difficulty:   req.Difficulty,
		Description:  req.Description,
		PDFURL:       req.PDFURL,
		AudioURL:     req.AudioURL,
		ThumbnailURL: req.ThumbnailURL,
		OwnerID:      actor.ID,
		Tags:         dedupeTags(req.Tags),
		IsPublished:  false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.sheetRepo.Create(ctx, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

// Get retrieves a single entry. Published entries are readable by any
// authenticated user; unpublished entries only by their owner or an admin.
func (s *sheetMusicService) Get(ctx context.Context, actor *models.User, id string) (*models.SheetMusic, error) {
	sheet, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	op := policy.OpReadPublishedContent
	if !sheet.IsPublished {
		op = policy.OpReadUnpublishedContent
	}
	if err := policy.Authorize(actor.Role, op, actor.ID, sheet.OwnerID); err != nil {
		return nil, err
	}

	return sheet, nil
}

// List retrieves entries matching the filter. The default scope is
// published entries only; mine narrows to the actor's own entries,
// published or not, which students cannot request.
func (s *sheetMusicService) List(ctx context.Context, actor *models.User, params ListParams) ([]models.SheetMusic, error) {
	if params.Mine {
		if err := policy.Authorize(actor.Role, policy.OpReadUnpublishedContent, actor.ID, actor.ID); err != nil {
			return nil, err
		}
	}
	if params.Difficulty != "" && !params.Difficulty.Valid() {
		return nil, apperrors.Validationf("invalid difficulty %q", params.Difficulty)
	}

	return s.sheetRepo.List(ctx, contentFilter(actor, params))
}

// Update replaces the mutable fields of an entry, including its publish flag
func (s *sheetMusicService) Update(ctx context.Context, actor *models.User, id string, req *models.UpdateSheetMusicRequest) (*models.SheetMusic, error) {
	sheet, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor.Role, policy.OpUpdateContent, actor.ID, sheet.OwnerID); err != nil {
		return nil, err
	}
	if err := validateSheetMusicFields(req.Title, req.Composer, req.Difficulty); err != nil {
		return nil, err
	}

	sheet.Title = strings.TrimSpace(req.Title)
	sheet.Composer = strings.TrimSpace(req.Composer)
	sheet.Genre = req.Genre
	sheet.Difficulty = req.Difficulty
	sheet.Description = req.Description
	sheet.PDFURL = req.PDFURL
	sheet.AudioURL = req.AudioURL
	sheet.ThumbnailURL = req.ThumbnailURL
	sheet.Tags = dedupeTags(req.Tags)
	sheet.IsPublished = req.IsPublished

	if err := s.sheetRepo.Update(ctx, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func validateSheetMusicFields(title, composer string, difficulty models.Difficulty) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.Validationf("title cannot be empty")
	}
	if strings.TrimSpace(composer) == "" {
		return apperrors.Validationf("composer cannot be empty")
	}
	if !difficulty.Valid() {
		return apperrors.Validationf("invalid difficulty %q", difficulty)
	}
	return nil
}
