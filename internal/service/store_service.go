package service

import (
	"context"
	"errors"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"
	"github.com/engrjeff/kapenatinph/internal/repository"

	"gorm.io/gorm"
)

// DefaultCategories is the category set seeded for every new store during
// onboarding.
var DefaultCategories = []string{
	"Uncategorized",
	"Coffee Beans",
	"Ice & Cooling",
	"Powdered Products",
	"Milk & Cream",
	"Syrups & Sweeteners",
	"Pastries & Bread",
	"Cups & Lids",
	"Cleaning Supplies",
	"Cutlery",
}

// StoreService manages the per-user store profile. Onboarding creates the
// store and seeds the default categories in one transaction.
type StoreService interface {
	Onboard(ctx context.Context, userID string, req dto.OnboardRequest) (*dto.StoreResponse, error)
	Get(ctx context.Context, userID string) (*dto.StoreResponse, error)
	Update(ctx context.Context, userID string, req dto.UpdateStoreRequest) (*dto.StoreResponse, error)
}

type storeService struct {
	repo         repository.StoreRepository
	categoryRepo repository.CategoryRepository
}

func NewStoreService(repo repository.StoreRepository, categoryRepo repository.CategoryRepository) StoreService {
	return &storeService{repo: repo, categoryRepo: categoryRepo}
}

func (s *storeService) Onboard(ctx context.Context, userID string, req dto.OnboardRequest) (*dto.StoreResponse, error) {
	if _, err := s.repo.FindByUser(ctx, userID); err == nil {
		return nil, apierror.Duplicate("This account already has a store", "name")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.FromDB(err, "store", "")
	}

	currency := req.Currency
	if currency == "" {
		currency = "PHP"
	}
	store := &model.Store{
		UserID:   userID,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Currency: currency,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, store); err != nil {
			return err
		}
		categories := make([]model.ProductCategory, 0, len(DefaultCategories))
		for _, name := range DefaultCategories {
			categories = append(categories, model.ProductCategory{UserID: userID, Name: name})
		}
		return s.categoryRepo.CreateManyTx(tx, categories)
	})
	if txErr != nil {
		return nil, apierror.FromDB(txErr, "store", "name")
	}

	return storeToResponse(store), nil
}

func (s *storeService) Get(ctx context.Context, userID string) (*dto.StoreResponse, error) {
	store, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apierror.FromDB(err, "store", "")
	}
	return storeToResponse(store), nil
}

func (s *storeService) Update(ctx context.Context, userID string, req dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apierror.FromDB(err, "store", "")
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Address != nil {
		store.Address = req.Address
	}
	if req.Phone != nil {
		store.Phone = req.Phone
	}
	if req.Currency != nil {
		store.Currency = *req.Currency
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, apierror.FromDB(err, "store", "")
	}
	return storeToResponse(store), nil
}

func storeToResponse(store *model.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:       store.ID.String(),
		Name:     store.Name,
		Address:  store.Address,
		Phone:    store.Phone,
		Currency: store.Currency,
	}
}
