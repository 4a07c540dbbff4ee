package service

import (
	"context"
	"errors"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"
	"github.com/engrjeff/kapenatinph/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService interface {
	Create(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.CategoryResponse, error)
	List(ctx context.Context, userID string) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	// Case-insensitive pre-check so "coffee beans" vs "Coffee Beans"
	// conflicts surface as a clean 409 rather than a DB error.
	if _, err := s.repo.FindByName(ctx, userID, req.Name); err == nil {
		return nil, apierror.Duplicate("A category with this name already exists", "name")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.FromDB(err, "category", "name")
	}

	c := &model.ProductCategory{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apierror.FromDB(err, "category", "name")
	}
	return categoryToResponse(c), nil
}

func (s *categoryService) GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "category", "")
	}
	return categoryToResponse(c), nil
}

func (s *categoryService) List(ctx context.Context, userID string) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apierror.FromDB(err, "category", "")
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *categoryToResponse(&categories[i]))
	}
	return out, nil
}

func (s *categoryService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "category", "")
	}

	if req.Name != nil && *req.Name != c.Name {
		if existing, err := s.repo.FindByName(ctx, userID, *req.Name); err == nil && existing.ID != id {
			return nil, apierror.Duplicate("A category with this name already exists", "name")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.FromDB(err, "category", "name")
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apierror.FromDB(err, "category", "name")
	}
	return categoryToResponse(c), nil
}

func (s *categoryService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return apierror.FromDB(err, "category", "")
	}
	return nil
}

func categoryToResponse(c *model.ProductCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
	}
}
