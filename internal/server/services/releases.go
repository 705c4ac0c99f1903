package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/finances/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxReleaseValue is the first value that no longer fits NUMERIC(14,2).
var maxReleaseValue = decimal.New(1, 12)

type ReleaseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReleaseService(db *sql.DB, m repomanager.RepositoryManager) *ReleaseService {
	return &ReleaseService{db: db, repomanager: m}
}

func validateRelease(r *models.Release) error {
	switch {
	case !r.Value.IsPositive():
		return validation.FieldError{Field: "value", Message: "value must be greater than zero"}
	case !r.Value.Round(2).Equal(r.Value):
		return validation.FieldError{Field: "value", Message: "value must have at most two decimal places"}
	case r.Value.GreaterThanOrEqual(maxReleaseValue):
		return validation.FieldError{Field: "value", Message: "value is too large"}
	case !r.Type.Valid():
		return validation.FieldError{Field: "type", Message: "type must be INCOME or EXPENSE"}
	case !r.Status.Valid():
		return validation.FieldError{Field: "status", Message: "status must be PENDING or PAID"}
	case r.DueDate.IsZero():
		return validation.FieldError{Field: "due_date", Message: "due date is required"}
	}
	return nil
}

// Create stores a release in one of the user's categories.
func (s *ReleaseService) Create(ctx context.Context, userID string, draft models.Release) (*models.Release, error) {
	draft.Description = strings.TrimSpace(draft.Description)
	if err := validateRelease(&draft); err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(draft.CategoryID); err != nil {
		return nil, common.ErrCategoryNotFound
	}
	if _, err := s.repomanager.Categories(s.db).FindForUser(ctx, draft.CategoryID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error searching category: %w", err)
	}

	draft.UserID = userID
	r, err := s.repomanager.Releases(s.db).Create(ctx, &draft)
	if err != nil {
		return nil, fmt.Errorf("error creating release: %w", err)
	}
	return r, nil
}

func (s *ReleaseService) List(ctx context.Context, userID string) ([]*models.Release, error) {
	list, err := s.repomanager.Releases(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing releases: %w", err)
	}
	return list, nil
}
