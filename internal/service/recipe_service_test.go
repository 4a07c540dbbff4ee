package service

import (
	"context"
	"testing"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeFixture struct {
	svc        RecipeService
	inventory  *stubInventoryRepo
	products   *stubProductRepo
	productID  uuid.UUID
	beansID    uuid.UUID
	milkID     uuid.UUID
	categoryID uuid.UUID
}

func newRecipeFixture(t *testing.T) *recipeFixture {
	t.Helper()
	categoryRepo := newStubCategoryRepo()
	categoryID := categoryRepo.seed(testUser, "Coffee")

	productRepo := newStubProductRepo()
	product := &model.Product{UserID: testUser, Name: "Latte", CategoryID: categoryID, SKU: "LAT", IsActive: true}
	require.NoError(t, productRepo.Create(context.Background(), product))

	inventoryRepo := newStubInventoryRepo()
	beans := &model.Inventory{
		UserID: testUser, SKU: "BEAN", Name: "Arabica Beans",
		CategoryID: categoryID, OrderUnit: "bag", Unit: "g",
		Quantity: 10, UnitPrice: decimal.NewFromInt(100), AmountPerUnit: decimal.NewFromInt(10),
		Status: model.StatusInStock,
	}
	milk := &model.Inventory{
		UserID: testUser, SKU: "MILK", Name: "Fresh Milk",
		CategoryID: categoryID, OrderUnit: "carton", Unit: "ml",
		Quantity: 10, UnitPrice: decimal.NewFromInt(95), AmountPerUnit: decimal.NewFromInt(1000),
		Status: model.StatusInStock,
	}
	require.NoError(t, inventoryRepo.Create(context.Background(), beans))
	require.NoError(t, inventoryRepo.Create(context.Background(), milk))

	recipeRepo := newStubRecipeRepo(inventoryRepo)
	return &recipeFixture{
		svc:        NewRecipeService(recipeRepo, productRepo, inventoryRepo),
		inventory:  inventoryRepo,
		products:   productRepo,
		productID:  product.ID,
		beansID:    beans.ID,
		milkID:     milk.ID,
		categoryID: categoryID,
	}
}

func (f *recipeFixture) request(ingredients ...dto.RecipeIngredientInput) dto.CreateRecipeRequest {
	return dto.CreateRecipeRequest{
		Name:        "House Latte",
		ProductID:   f.productID.String(),
		IsActive:    true,
		Ingredients: ingredients,
	}
}

func TestRecipeCreateRollsUpCost(t *testing.T) {
	f := newRecipeFixture(t)

	// beans: 100/10 * 2 = 20; milk: 95/1000 * 200 = 19
	resp, err := f.svc.Create(context.Background(), testUser, f.request(
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(2)},
		dto.RecipeIngredientInput{InventoryID: f.milkID.String(), Quantity: decimal.NewFromInt(200)},
	))
	require.NoError(t, err)

	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(39)),
		"expected 39, got %s", resp.TotalCost)
	require.Len(t, resp.Ingredients, 2)
	assert.True(t, resp.Ingredients[0].Cost.Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.Ingredients[1].Cost.Equal(decimal.NewFromInt(19)))

	// Unit defaults to the inventory item's usage unit when omitted
	assert.Equal(t, "g", resp.Ingredients[0].Unit)
}

func TestRecipeCreateMissingInventory(t *testing.T) {
	f := newRecipeFixture(t)

	_, err := f.svc.Create(context.Background(), testUser, f.request(
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(1)},
		dto.RecipeIngredientInput{InventoryID: uuid.NewString(), Quantity: decimal.NewFromInt(1)},
	))
	require.Error(t, err)
	apiErr := apierror.AsAPIError(err)
	assert.Equal(t, apierror.CodeRelatedRecordMissing, apiErr.Code)
	assert.Equal(t, "inventoryId", apiErr.Field)
}

func TestRecipeCreateDuplicateIngredient(t *testing.T) {
	f := newRecipeFixture(t)

	_, err := f.svc.Create(context.Background(), testUser, f.request(
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(1)},
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(2)},
	))
	require.Error(t, err)
	assert.Equal(t, apierror.CodeUniqueConstraint, apierror.AsAPIError(err).Code)
}

func TestRecipeCreateUnknownProduct(t *testing.T) {
	f := newRecipeFixture(t)

	req := f.request(
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(1)},
		dto.RecipeIngredientInput{InventoryID: f.milkID.String(), Quantity: decimal.NewFromInt(1)},
	)
	req.ProductID = uuid.NewString()

	_, err := f.svc.Create(context.Background(), testUser, req)
	require.Error(t, err)
	assert.Equal(t, apierror.CodeRelatedRecordMissing, apierror.AsAPIError(err).Code)
}

func TestRecipeUpdateReplacesIngredientsAndRecost(t *testing.T) {
	f := newRecipeFixture(t)

	created, err := f.svc.Create(context.Background(), testUser, f.request(
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(2)},
		dto.RecipeIngredientInput{InventoryID: f.milkID.String(), Quantity: decimal.NewFromInt(200)},
	))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// Double the beans, drop the milk, keep a second ingredient for the
	// minimum count.
	updated, err := f.svc.Update(context.Background(), testUser, id, dto.UpdateRecipeRequest{
		CreateRecipeRequest: f.request(
			dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(4)},
			dto.RecipeIngredientInput{InventoryID: f.milkID.String(), Quantity: decimal.NewFromInt(100)},
		),
	})
	require.NoError(t, err)

	// beans: 100/10*4 = 40; milk: 95/1000*100 = 9.5
	assert.True(t, updated.TotalCost.Equal(decimal.RequireFromString("49.5")),
		"expected 49.5, got %s", updated.TotalCost)
	assert.Equal(t, created.ID, updated.ID)
}

func TestRecipeListByProductAndVariant(t *testing.T) {
	f := newRecipeFixture(t)

	iced := &model.Product{
		UserID: testUser, Name: "Iced Latte", CategoryID: f.categoryID,
		SKU: "ILAT", IsActive: true, HasVariants: true,
		Variants: []model.ProductVariant{{Title: "16oz", SKU: "ILAT-16O", IsAvailable: true}},
	}
	require.NoError(t, f.products.Create(context.Background(), iced))
	variantID := iced.Variants[0].ID.String()

	_, err := f.svc.Create(context.Background(), testUser, f.request(
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(2)},
		dto.RecipeIngredientInput{InventoryID: f.milkID.String(), Quantity: decimal.NewFromInt(200)},
	))
	require.NoError(t, err)

	icedReq := f.request(
		dto.RecipeIngredientInput{InventoryID: f.beansID.String(), Quantity: decimal.NewFromInt(2)},
		dto.RecipeIngredientInput{InventoryID: f.milkID.String(), Quantity: decimal.NewFromInt(250)},
	)
	icedReq.Name = "Iced House Latte"
	icedReq.ProductID = iced.ID.String()
	icedReq.VariantID = &variantID
	icedRecipe, err := f.svc.Create(context.Background(), testUser, icedReq)
	require.NoError(t, err)

	byProduct, err := f.svc.ListByProduct(context.Background(), testUser, f.productID)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, "House Latte", byProduct[0].Name)

	byVariant, err := f.svc.ListByVariant(context.Background(), testUser, iced.Variants[0].ID)
	require.NoError(t, err)
	require.Len(t, byVariant, 1)
	assert.Equal(t, icedRecipe.ID, byVariant[0].ID)

	otherUser, err := f.svc.ListByProduct(context.Background(), "someone-else", f.productID)
	require.NoError(t, err)
	assert.Empty(t, otherUser)
}

func TestIngredientCostZeroDivisorGuard(t *testing.T) {
	cost := IngredientCost(decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(5))
	assert.True(t, cost.IsZero())
}
