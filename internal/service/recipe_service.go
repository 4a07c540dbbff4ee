package service

import (
	"context"
	"errors"
	"strings"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"
	"github.com/engrjeff/kapenatinph/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecipeService manages recipes and their ingredient cost rollups. Ingredient
// writes and the total cost update always commit in the same transaction.
type RecipeService interface {
	Create(ctx context.Context, userID string, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.RecipeResponse, error)
	List(ctx context.Context, userID string, filter dto.RecipeFilter) (*dto.RecipeListResponse, error)
	ListByProduct(ctx context.Context, userID string, productID uuid.UUID) ([]dto.RecipeResponse, error)
	ListByVariant(ctx context.Context, userID string, variantID uuid.UUID) ([]dto.RecipeResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type recipeService struct {
	repo          repository.RecipeRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

func NewRecipeService(repo repository.RecipeRepository, productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository) RecipeService {
	return &recipeService{repo: repo, productRepo: productRepo, inventoryRepo: inventoryRepo}
}

// IngredientCost prorates an inventory item's purchase price to the amount a
// recipe uses: (unitPrice / amountPerUnit) * quantity.
func IngredientCost(unitPrice, amountPerUnit, quantity decimal.Decimal) decimal.Decimal {
	if amountPerUnit.IsZero() {
		return decimal.Zero
	}
	return unitPrice.Div(amountPerUnit).Mul(quantity)
}

func checkIngredientUniqueness(ingredients []dto.RecipeIngredientInput) error {
	seen := make(map[string]bool, len(ingredients))
	for _, ing := range ingredients {
		key := strings.ToLower(ing.InventoryID)
		if seen[key] {
			return apierror.Duplicate("The same inventory item appears more than once", "inventoryId")
		}
		seen[key] = true
	}
	return nil
}

func (s *recipeService) validateTarget(ctx context.Context, userID string, req dto.CreateRecipeRequest) (uuid.UUID, *uuid.UUID, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return uuid.Nil, nil, apierror.NewField(apierror.CodeValidation, "Invalid product id", 422, "productId")
	}
	product, err := s.productRepo.FindByID(ctx, userID, productID)
	if err != nil {
		return uuid.Nil, nil, apierror.NewField(apierror.CodeRelatedRecordMissing, "Product not found", 404, "productId")
	}

	var variantID *uuid.UUID
	if req.VariantID != nil && *req.VariantID != "" {
		parsed, err := uuid.Parse(*req.VariantID)
		if err != nil {
			return uuid.Nil, nil, apierror.NewField(apierror.CodeValidation, "Invalid variant id", 422, "variantId")
		}
		found := false
		for _, v := range product.Variants {
			if v.ID == parsed {
				found = true
				break
			}
		}
		if !found {
			return uuid.Nil, nil, apierror.NewField(apierror.CodeRelatedRecordMissing,
				"Variant does not belong to this product", 404, "variantId")
		}
		variantID = &parsed
	}
	return productID, variantID, nil
}

func (s *recipeService) Create(ctx context.Context, userID string, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if err := checkIngredientUniqueness(req.Ingredients); err != nil {
		return nil, err
	}
	productID, variantID, err := s.validateTarget(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	rec := &model.Recipe{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		ProductID:       productID,
		VariantID:       variantID,
		IsActive:        req.IsActive,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, rec); err != nil {
			return err
		}
		return s.writeIngredients(tx, userID, rec.ID, req.Ingredients)
	})
	if txErr != nil {
		var apiErr *apierror.APIError
		if errors.As(txErr, &apiErr) {
			return nil, apiErr
		}
		return nil, apierror.FromDB(txErr, "recipe", "name")
	}

	return s.GetByID(ctx, userID, rec.ID)
}

func (s *recipeService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	if _, err := s.repo.FindByID(ctx, userID, id); err != nil {
		return nil, apierror.FromDB(err, "recipe", "")
	}
	if err := checkIngredientUniqueness(req.Ingredients); err != nil {
		return nil, err
	}
	productID, variantID, err := s.validateTarget(ctx, userID, req.CreateRecipeRequest)
	if err != nil {
		return nil, err
	}

	rec := &model.Recipe{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		ProductID:       productID,
		VariantID:       variantID,
		IsActive:        req.IsActive,
	}

	// Ingredients are replaced wholesale; only the recipe row keeps its
	// identity across updates.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, rec); err != nil {
			return err
		}
		if err := s.repo.DeleteIngredientsTx(tx, id); err != nil {
			return err
		}
		return s.writeIngredients(tx, userID, id, req.Ingredients)
	})
	if txErr != nil {
		var apiErr *apierror.APIError
		if errors.As(txErr, &apiErr) {
			return nil, apiErr
		}
		return nil, apierror.FromDB(txErr, "recipe", "name")
	}

	return s.GetByID(ctx, userID, id)
}

// writeIngredients creates the ingredient rows and stores the summed cost.
// Each referenced inventory item is loaded inside the transaction; a missing
// one aborts the whole write.
func (s *recipeService) writeIngredients(tx *gorm.DB, userID string, recipeID uuid.UUID, ingredients []dto.RecipeIngredientInput) error {
	total := decimal.Zero
	for _, ing := range ingredients {
		invID, err := uuid.Parse(ing.InventoryID)
		if err != nil {
			return apierror.NewField(apierror.CodeValidation, "Invalid inventory id", 422, "inventoryId")
		}
		item, err := s.inventoryRepo.FindByIDTx(tx, userID, invID)
		if err != nil {
			return apierror.NewField(apierror.CodeRelatedRecordMissing,
				"Inventory item not found", 404, "inventoryId")
		}

		unit := ing.Unit
		if unit == "" {
			unit = item.Unit
		}
		if err := s.repo.CreateIngredientTx(tx, &model.RecipeIngredient{
			RecipeID:    recipeID,
			InventoryID: invID,
			Quantity:    ing.Quantity,
			Unit:        unit,
			Notes:       ing.Notes,
		}); err != nil {
			return err
		}
		total = total.Add(IngredientCost(item.UnitPrice, item.AmountPerUnit, ing.Quantity))
	}
	return s.repo.SetTotalCostTx(tx, recipeID, total)
}

func (s *recipeService) GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.RecipeResponse, error) {
	rec, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "recipe", "")
	}
	return recipeToResponse(rec), nil
}

func (s *recipeService) List(ctx context.Context, userID string, filter dto.RecipeFilter) (*dto.RecipeListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	recipes, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, apierror.FromDB(err, "recipe", "")
	}
	data := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		data = append(data, *recipeToResponse(&recipes[i]))
	}
	return &dto.RecipeListResponse{
		PageInfo: dto.PageInfo{Total: total, Page: filter.Page, Limit: filter.Limit},
		Data:     data,
	}, nil
}

// ListByProduct returns the active recipes attached to a product, used by
// the product detail page to show what the kitchen can make from it.
func (s *recipeService) ListByProduct(ctx context.Context, userID string, productID uuid.UUID) ([]dto.RecipeResponse, error) {
	recipes, err := s.repo.ListByProduct(ctx, userID, productID)
	if err != nil {
		return nil, apierror.FromDB(err, "recipe", "")
	}
	data := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		data = append(data, *recipeToResponse(&recipes[i]))
	}
	return data, nil
}

func (s *recipeService) ListByVariant(ctx context.Context, userID string, variantID uuid.UUID) ([]dto.RecipeResponse, error) {
	recipes, err := s.repo.ListByVariant(ctx, userID, variantID)
	if err != nil {
		return nil, apierror.FromDB(err, "recipe", "")
	}
	data := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		data = append(data, *recipeToResponse(&recipes[i]))
	}
	return data, nil
}

func (s *recipeService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return apierror.FromDB(err, "recipe", "")
	}
	return nil
}

func recipeToResponse(rec *model.Recipe) *dto.RecipeResponse {
	ingredients := make([]dto.RecipeIngredientResponse, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		resp := dto.RecipeIngredientResponse{
			ID:          ing.ID.String(),
			InventoryID: ing.InventoryID.String(),
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Notes:       ing.Notes,
		}
		if ing.Inventory != nil {
			resp.InventoryName = ing.Inventory.Name
			resp.Cost = IngredientCost(ing.Inventory.UnitPrice, ing.Inventory.AmountPerUnit, ing.Quantity)
		}
		ingredients = append(ingredients, resp)
	}

	resp := &dto.RecipeResponse{
		ID:              rec.ID.String(),
		Name:            rec.Name,
		Description:     rec.Description,
		Instructions:    rec.Instructions,
		PrepTimeMinutes: rec.PrepTimeMinutes,
		ProductID:       rec.ProductID.String(),
		IsActive:        rec.IsActive,
		TotalCost:       rec.TotalCost,
		Ingredients:     ingredients,
	}
	if rec.Product != nil {
		resp.ProductName = rec.Product.Name
	}
	if rec.VariantID != nil {
		id := rec.VariantID.String()
		resp.VariantID = &id
	}
	if rec.Variant != nil {
		resp.VariantTitle = rec.Variant.Title
	}
	return resp
}
