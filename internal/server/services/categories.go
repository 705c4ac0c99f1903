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
)

type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) Create(ctx context.Context, userID, description string) (*models.Category, error) {
	description = strings.TrimSpace(description)
	if err := validation.ValidateDescription(description); err != nil {
		return nil, err
	}

	if _, err := s.repomanager.Users(s.db).FindActiveByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	c, err := s.repomanager.Categories(s.db).Create(ctx, &models.Category{UserID: userID, Description: description})
	if err != nil {
		return nil, fmt.Errorf("error creating category: %w", err)
	}
	return c, nil
}

// List returns the user's categories whose description contains filter,
// ignoring case.
func (s *CategoryService) List(ctx context.Context, userID, filter string) ([]*models.Category, error) {
	list, err := s.repomanager.Categories(s.db).List(ctx, userID, strings.TrimSpace(filter))
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return list, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID, description string) (*models.Category, error) {
	description = strings.TrimSpace(description)
	if err := validation.ValidateDescription(description); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(categoryID); err != nil {
		return nil, common.ErrCategoryNotFound
	}

	c := &models.Category{ID: categoryID, UserID: userID, Description: description}
	if err := s.repomanager.Categories(s.db).Update(ctx, c); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error updating category: %w", err)
	}

	return s.repomanager.Categories(s.db).FindForUser(ctx, categoryID, userID)
}
